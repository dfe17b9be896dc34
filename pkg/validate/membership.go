package validate

import (
	"reflect"

	"github.com/pokeghosst/neovalidate/pkg/is"
)

// inclusionValidator checks that the value is a member of the configured
// set: the "within" option, or the options value itself when given as a
// slice shorthand. A slice matches by deep equality of elements, a map by
// its key set.
func inclusionValidator() *Validator {
	return membershipValidator("inclusion", "^%{value} is not included in the list", true)
}

// exclusionValidator is the negation of inclusion: membership is the
// failure.
func exclusionValidator() *Validator {
	return membershipValidator("exclusion", "^%{value} must not be included in the list", false)
}

func membershipValidator(name, fallback string, wantMember bool) *Validator {
	v := &Validator{
		Messages: map[string]string{
			"message": fallback,
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		merged := v.mergeOptions(options)

		within := merged["within"]
		if is.Array(options) {
			within = options
		}
		if within == nil {
			return nil, &ConfigError{
				Attribute: attribute,
				Validator: name,
				Detail:    `the "within" option must be a sequence or a mapping`,
				Err:       ErrMissingOption,
			}
		}

		if !is.Defined(value) {
			return nil, nil
		}

		member, ok := contains(within, value)
		if !ok {
			return nil, &ConfigError{
				Attribute: attribute,
				Validator: name,
				Detail:    `the "within" option must be a sequence or a mapping`,
				Err:       ErrMissingOption,
			}
		}

		if member == wantMember {
			return nil, nil
		}
		return signalOf(v.message(merged, "message", fallback)), nil
	}
	return v
}

// contains reports set membership: element equality for sequences, key
// membership for mappings. The second return is false when the collection
// is neither.
func contains(collection, value any) (member, ok bool) {
	rv := reflect.ValueOf(collection)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if is.DeepEqual(rv.Index(i).Interface(), value) {
				return true, true
			}
		}
		return false, true
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			if is.DeepEqual(key.Interface(), value) {
				return true, true
			}
		}
		return false, true
	default:
		return false, false
	}
}
