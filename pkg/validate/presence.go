package validate

import (
	"github.com/pokeghosst/neovalidate/pkg/is"
)

// presenceValidator checks that a value is there at all. By default any
// defined value passes, so 0, false and empty collections count as present;
// with allowEmpty:false the shared emptiness rule applies instead.
func presenceValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"message": "can't be blank",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		merged := v.mergeOptions(options)

		missing := !is.Defined(value)
		if allow, ok := merged["allowEmpty"].(bool); ok && !allow {
			missing = is.Empty(value)
		}
		if !missing {
			return nil, nil
		}

		return signalOf(v.message(merged, "message", "can't be blank")), nil
	}
	return v
}
