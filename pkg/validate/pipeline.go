package validate

import (
	"reflect"
	"sort"

	"github.com/pokeghosst/neovalidate/pkg/async"
	"github.com/pokeghosst/neovalidate/pkg/keypath"
)

// Constraints maps attribute keypaths to their rules. Each value is either a
// Constraint (validator name -> raw options) or a ConstraintFunc computing
// one at validation time.
type Constraints map[string]any

// Constraint maps validator names to their raw options: true, an options
// map, a shorthand slice (inclusion/exclusion), or an OptionsFunc. A rule
// resolving to nil or false skips that validator.
type Constraint map[string]any

// ConstraintFunc computes an attribute's validator map dynamically.
type ConstraintFunc func(value any, attributes map[string]any, attribute string, opts *Options, constraints Constraints) Constraint

// OptionsFunc computes a single validator's options dynamically.
type OptionsFunc func(value any, attributes map[string]any, attribute string, opts *Options, constraints Constraints) any

// ErrorDetail is the canonical per-(attribute, validator) outcome record,
// the unit the "detailed" format exposes unchanged.
type ErrorDetail struct {
	Attribute     string
	Value         any
	Validator     string
	Options       any
	Attributes    map[string]any
	GlobalOptions *Options
	Error         any
}

// result is an ErrorDetail still carrying its raw signal, before
// normalization turns signals into error values.
type result struct {
	attribute  string
	value      any
	name       string
	validator  *Validator
	options    any
	attributes map[string]any
	signal     Signal
}

// runValidations dispatches every requested validator against every
// constrained attribute and collects the raw results. Attribute keys and
// validator names are visited in lexicographic order so aggregation is
// deterministic. An unknown validator name aborts the whole run.
func (r *Registry) runValidations(attributes map[string]any, constraints Constraints, opts *Options) ([]result, error) {
	var results []result

	for _, attr := range sortedKeys(constraints) {
		value, _ := keypath.Get(attributes, attr)

		constraint, err := resolveConstraint(constraints[attr], value, attributes, attr, opts, constraints)
		if err != nil {
			return nil, err
		}

		for _, name := range sortedKeys(constraint) {
			validator, ok := r.Validator(name)
			if !ok {
				return nil, &ConfigError{Attribute: attr, Validator: name, Err: ErrUnknownValidator}
			}

			options := resolveOptions(constraint[name], value, attributes, attr, opts, constraints)
			if !enabled(options) {
				continue
			}

			r.logger.Debug("running validator", "attribute", attr, "validator", name)

			signal, err := validator.Fn(validator, value, options, attr, attributes, opts)
			if err != nil {
				return nil, err
			}

			results = append(results, result{
				attribute:  attr,
				value:      value,
				name:       name,
				validator:  validator,
				options:    options,
				attributes: attributes,
				signal:     signal,
			})
		}
	}

	return results, nil
}

// awaitPending joins every pending signal in place, replacing futures with
// their settled values. The first future error (in record order) becomes the
// coordinator's own error; every future is still joined.
func awaitPending(results []result) error {
	var futures []*async.Future[Signal]
	var indices []int

	for i := range results {
		if p, ok := results[i].signal.(Pending); ok {
			futures = append(futures, p.Future)
			indices = append(indices, i)
		}
	}
	if len(futures) == 0 {
		return nil
	}

	settled, err := async.WaitAll(futures...)
	for j, i := range indices {
		results[i].signal = settled[j]
	}
	return err
}

func resolveConstraint(raw any, value any, attributes map[string]any, attribute string, opts *Options, constraints Constraints) (Constraint, error) {
	switch c := raw.(type) {
	case Constraint:
		return c, nil
	case map[string]any:
		return Constraint(c), nil
	case ConstraintFunc:
		return c(value, attributes, attribute, opts, constraints), nil
	case func(value any, attributes map[string]any, attribute string, opts *Options, constraints Constraints) Constraint:
		return c(value, attributes, attribute, opts, constraints), nil
	case nil:
		return nil, nil
	default:
		return nil, &ConfigError{Attribute: attribute, Err: ErrBadConstraint}
	}
}

func resolveOptions(raw any, value any, attributes map[string]any, attribute string, opts *Options, constraints Constraints) any {
	switch o := raw.(type) {
	case OptionsFunc:
		return o(value, attributes, attribute, opts, constraints)
	case func(value any, attributes map[string]any, attribute string, opts *Options, constraints Constraints) any:
		return o(value, attributes, attribute, opts, constraints)
	default:
		return raw
	}
}

// enabled reports whether resolved options request the validator at all:
// nil and false mean skip.
func enabled(options any) bool {
	if options == nil {
		return false
	}
	if b, ok := options.(bool); ok {
		return b
	}

	rv := reflect.ValueOf(options)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CleanAttributes returns a deep copy of attributes containing only the keys
// (including nested dotted paths) named by the constraint set. It backs the
// asynchronous entry point's cleaning pass and stands on its own as a
// whitelist filter.
func CleanAttributes(attributes map[string]any, constraints Constraints) map[string]any {
	whitelist := make(map[string]any, len(constraints))
	for attr := range constraints {
		keypath.Set(whitelist, attr, true)
	}
	return cleanCopy(attributes, whitelist)
}

func cleanCopy(attributes map[string]any, whitelist map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range attributes {
		switch w := whitelist[key].(type) {
		case bool:
			out[key] = deepCopy(value)
		case map[string]any:
			if nested, ok := value.(map[string]any); ok {
				out[key] = cleanCopy(nested, w)
			}
		}
	}
	return out
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
