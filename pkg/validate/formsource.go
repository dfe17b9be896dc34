package validate

import (
	"net/url"

	"github.com/pokeghosst/neovalidate/pkg/keypath"
)

// AttributeSource lets form-like objects supply their own attributes map.
// When the attributes argument of an entry point implements it, the
// collected map is validated in its place.
type AttributeSource interface {
	ValidationAttributes() map[string]any
}

// FromURLValues collects submitted form values into an attributes map. Keys
// are treated as keypaths, so a field named "address.city" lands nested.
// Single values collapse to the string itself, repeated fields become a
// slice. With nullify, empty strings become nil so presence checks treat
// untouched fields as absent.
func FromURLValues(values url.Values, nullify bool) map[string]any {
	attributes := make(map[string]any, len(values))

	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			keypath.Set(attributes, key, nullified(vals[0], nullify))
		default:
			collected := make([]any, len(vals))
			for i, v := range vals {
				collected[i] = nullified(v, nullify)
			}
			keypath.Set(attributes, key, collected)
		}
	}

	return attributes
}

func nullified(v string, nullify bool) any {
	if nullify && v == "" {
		return nil
	}
	return v
}

// collectAttributes widens the attributes argument into the map the
// pipeline works on, invoking form collection when the argument is a form
// source rather than a plain map.
func (r *Registry) collectAttributes(attributes any, opts *Options) (map[string]any, error) {
	switch a := attributes.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return a, nil
	case url.Values:
		r.logger.Debug("collecting form values", "fields", len(a))
		return FromURLValues(a, opts.nullify()), nil
	case AttributeSource:
		r.logger.Debug("collecting attributes from source")
		return a.ValidationAttributes(), nil
	default:
		return nil, &ConfigError{Err: ErrBadAttributes}
	}
}
