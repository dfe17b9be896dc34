package validate

import (
	"strings"

	"github.com/pokeghosst/neovalidate/pkg/format"
	"github.com/pokeghosst/neovalidate/pkg/is"
)

// normalize turns raw results into the canonical error-record list through
// three fixed stages: prune empty signals, expand multi-message signals into
// one record each, then convert messages (deferred calls, literal-marker
// handling, attribute prefixing and template substitution).
func normalize(results []result, opts *Options) []ErrorDetail {
	var details []ErrorDetail

	for _, res := range expand(prune(results)) {
		details = append(details, ErrorDetail{
			Attribute:     res.attribute,
			Value:         res.value,
			Validator:     res.name,
			Options:       res.options,
			Attributes:    res.attributes,
			GlobalOptions: opts,
			Error:         convertError(res, opts),
		})
	}

	return details
}

// prune drops every record whose signal is empty: nil signals,
// whitespace-only messages, zero-length message lists and empty opaque
// values. Deferred functions are never empty.
func prune(results []result) []result {
	pruned := results[:0:0]

	for _, res := range results {
		switch sig := res.signal.(type) {
		case nil:
		case Message:
			if !is.WhitespaceOnly(string(sig)) {
				pruned = append(pruned, res)
			}
		case Messages:
			if len(sig) > 0 {
				pruned = append(pruned, res)
			}
		case Opaque:
			if !is.Empty(sig.Value) {
				pruned = append(pruned, res)
			}
		default:
			pruned = append(pruned, res)
		}
	}

	return pruned
}

// expand splits every multi-message record into one record per message, all
// other fields copied.
func expand(results []result) []result {
	expanded := results[:0:0]

	for _, res := range results {
		msgs, ok := res.signal.(Messages)
		if !ok {
			expanded = append(expanded, res)
			continue
		}
		for _, msg := range msgs {
			single := res
			single.signal = Message(msg)
			expanded = append(expanded, single)
		}
	}

	return expanded
}

// convertError resolves one record's signal into its final error value.
// Deferred functions are called first; string results then get the literal
// marker treatment, the attribute-name prefix and template substitution.
// Non-string results pass through untouched for detailed consumption.
func convertError(res result, opts *Options) any {
	var raw any
	switch sig := res.signal.(type) {
	case Message:
		raw = string(sig)
	case Deferred:
		raw = sig(res.value, res.attribute, res.options, res.attributes, opts)
	case Opaque:
		raw = sig.Value
	default:
		raw = sig
	}

	msg, ok := raw.(string)
	if !ok {
		return raw
	}
	return convertMessage(msg, res.attribute, res.value, opts)
}

func convertMessage(msg, attribute string, value any, opts *Options) string {
	if strings.HasPrefix(msg, "^") {
		msg = msg[1:]
	} else if opts.fullMessages() {
		msg = format.Capitalize(opts.prettify(attribute)) + " " + msg
	}

	msg = strings.ReplaceAll(msg, `\^`, "^")

	return format.Sprintf(msg, map[string]string{"value": opts.prettify(value)})
}
