package validate

import (
	"fmt"

	"github.com/pokeghosst/neovalidate/pkg/format"
	"github.com/pokeghosst/neovalidate/pkg/is"
)

// TypePredicate decides whether a value satisfies a custom type for the
// type validator.
type TypePredicate func(value any) bool

var typePredicates = map[string]TypePredicate{
	"string":  is.String,
	"array":   is.Array,
	"integer": is.Integer,
	"number":  is.Number,
	"boolean": is.Bool,
	"date":    is.Date,
	"hash":    is.Hash,
	"object":  is.Hash,
}

// typeValidator checks the value against a named or custom type predicate.
// A bare string option is shorthand for the "type" option; an unknown or
// missing type is a configuration error. Messages can be overridden per
// type name on the bundle.
func typeValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		merged := v.mergeOptions(options)

		raw := merged["type"]
		if s, ok := options.(string); ok {
			raw = s
		}

		var name string
		var predicate TypePredicate
		switch t := raw.(type) {
		case string:
			name = t
			predicate = typePredicates[t]
			if predicate == nil {
				return nil, &ConfigError{
					Attribute: attribute,
					Validator: "type",
					Detail:    fmt.Sprintf("unknown type %q", t),
					Err:       ErrMissingOption,
				}
			}
		case TypePredicate:
			predicate = t
		case func(any) bool:
			predicate = t
		default:
			return nil, &ConfigError{
				Attribute: attribute,
				Validator: "type",
				Detail:    `the "type" option must be a type name or a predicate function`,
				Err:       ErrMissingOption,
			}
		}

		if !is.Defined(value) {
			return nil, nil
		}
		if predicate(value) {
			return nil, nil
		}

		fallback := "must be of the correct type"
		if name != "" {
			fallback = "must be of type %{type}"
		}
		msg := v.message(merged, name, fallback)
		if s, ok := msg.(string); ok {
			return Message(format.Sprintf(s, map[string]string{"type": name})), nil
		}
		return signalOf(msg), nil
	}
	return v
}
