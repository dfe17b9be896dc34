package validate

import (
	"github.com/pokeghosst/neovalidate/pkg/format"
	"github.com/pokeghosst/neovalidate/pkg/is"
	"github.com/pokeghosst/neovalidate/pkg/keypath"
)

// equalityValidator checks the value against the one found at another
// attribute's keypath. The "attribute" option is mandatory; a bare string
// option is shorthand for it. Comparison defaults to deep equality and can
// be replaced with a comparator function.
func equalityValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"message": "is not equal to %{attribute}",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		merged := v.mergeOptions(options)

		other, _ := options.(string)
		if other == "" {
			other, _ = merged["attribute"].(string)
		}
		if other == "" {
			return nil, &ConfigError{
				Attribute: attribute,
				Validator: "equality",
				Detail:    `the "attribute" option must be a non-empty string`,
				Err:       ErrMissingOption,
			}
		}

		if !is.Defined(value) {
			return nil, nil
		}

		comparator := is.DeepEqual
		if cmp, ok := merged["comparator"].(func(a, b any) bool); ok {
			comparator = cmp
		}

		otherValue, _ := keypath.Get(attributes, other)
		if comparator(value, otherValue) {
			return nil, nil
		}

		msg := v.message(merged, "message", "is not equal to %{attribute}")
		if s, ok := msg.(string); ok {
			return Message(format.Sprintf(s, map[string]string{"attribute": format.Prettify(other)})), nil
		}
		return signalOf(msg), nil
	}
	return v
}
