package validate

import (
	"sort"

	"github.com/pokeghosst/neovalidate/pkg/is"
)

func registerBuiltinFormatters(r *Registry) {
	r.RegisterFormatter("detailed", formatDetailed)
	r.RegisterFormatter("flat", formatFlat)
	r.RegisterFormatter("grouped", formatGrouped)
	r.RegisterFormatter("constraint", formatConstraint)
}

// formatDetailed returns the canonical record list unchanged.
func formatDetailed(details []ErrorDetail) any {
	return details
}

// formatFlat projects records to their error values, de-duplicated by deep
// equality while preserving first-occurrence order.
func formatFlat(details []ErrorDetail) any {
	return flatten(details)
}

// formatGrouped groups error values by attribute, each group flattened and
// de-duplicated. Attributes with no surviving errors are absent.
func formatGrouped(details []ErrorDetail) any {
	grouped := make(map[string][]any)
	for _, attr := range attributeOrder(details) {
		var group []ErrorDetail
		for _, d := range details {
			if d.Attribute == attr {
				group = append(group, d)
			}
		}
		grouped[attr] = flatten(group)
	}
	return grouped
}

// formatConstraint groups the validator names that failed per attribute,
// sorted lexicographically. A validator whose error expanded into several
// records contributes its name once per record.
func formatConstraint(details []ErrorDetail) any {
	grouped := make(map[string][]string)
	for _, d := range details {
		grouped[d.Attribute] = append(grouped[d.Attribute], d.Validator)
	}
	for attr := range grouped {
		sort.Strings(grouped[attr])
	}
	return grouped
}

func flatten(details []ErrorDetail) []any {
	var errors []any
	for _, d := range details {
		duplicate := false
		for _, seen := range errors {
			if is.DeepEqual(seen, d.Error) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			errors = append(errors, d.Error)
		}
	}
	return errors
}

func attributeOrder(details []ErrorDetail) []string {
	var order []string
	seen := make(map[string]bool)
	for _, d := range details {
		if !seen[d.Attribute] {
			order = append(order, d.Attribute)
			seen[d.Attribute] = true
		}
	}
	return order
}
