package ruleset

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"

	"github.com/pokeghosst/neovalidate/pkg/validate"
)

// Reserved keys recognized inside rule documents.
const (
	whenKey = "$when"
	exprKey = "$expr"
)

var (
	// ErrBadDocument is returned when the document is not a mapping of
	// attribute names to rules.
	ErrBadDocument = errors.New("ruleset: document must map attributes to rules")

	// ErrBadRule is returned when an attribute's rule is not a mapping of
	// validator names to options.
	ErrBadRule = errors.New("ruleset: rule must map validator names to options")

	// ErrBadExpression is returned when a $when or $expr expression does
	// not compile.
	ErrBadExpression = errors.New("ruleset: invalid expression")
)

// Parse turns a YAML rule document into a constraint set ready for the
// validation engine.
func Parse(data []byte) (validate.Constraints, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	constraints := make(validate.Constraints, len(doc))
	for attribute, raw := range doc {
		rule, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: attribute %q", ErrBadRule, attribute)
		}

		constraint := make(validate.Constraint, len(rule))
		var when *vm.Program

		for name, options := range rule {
			if name == whenKey {
				source, ok := options.(string)
				if !ok {
					return nil, fmt.Errorf("%w: %s for attribute %q must be a string", ErrBadExpression, whenKey, attribute)
				}
				program, err := expr.Compile(source, expr.AllowUndefinedVariables(), expr.AsBool())
				if err != nil {
					return nil, fmt.Errorf("%w: attribute %q: %v", ErrBadExpression, attribute, err)
				}
				when = program
				continue
			}

			converted, err := convertOptions(options, attribute)
			if err != nil {
				return nil, err
			}
			constraint[name] = converted
		}

		if when != nil {
			constraints[attribute] = conditionalRule(when, constraint)
		} else {
			constraints[attribute] = constraint
		}
	}

	return constraints, nil
}

// MustParse is Parse for rule documents compiled into the program, where a
// malformed document is a programming error.
func MustParse(data []byte) validate.Constraints {
	constraints, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return constraints
}

// conditionalRule wraps a validator map in a constraint function applying
// it only while the $when expression holds.
func conditionalRule(when *vm.Program, constraint validate.Constraint) validate.ConstraintFunc {
	return func(value any, attributes map[string]any, attribute string, opts *validate.Options, constraints validate.Constraints) validate.Constraint {
		out, err := vm.Run(when, exprEnv(value, attributes, attribute))
		if err != nil {
			return nil
		}
		if applies, ok := out.(bool); ok && applies {
			return constraint
		}
		return nil
	}
}

// computed marks a compiled $expr leaf inside an options tree.
type computed struct {
	program *vm.Program
}

// convertOptions compiles every {$expr: "..."} mapping in an options value.
// The engine resolves dynamic options only at the whole-options level, so a
// tree containing computed leaves is folded into a single options function
// that evaluates them per call and hands the engine plain data.
func convertOptions(raw any, attribute string) (any, error) {
	tree, dynamic, err := compileTree(raw, attribute)
	if err != nil {
		return nil, err
	}
	if !dynamic {
		return raw, nil
	}

	return validate.OptionsFunc(func(value any, attributes map[string]any, attribute string, opts *validate.Options, constraints validate.Constraints) any {
		return evaluateTree(tree, exprEnv(value, attributes, attribute))
	}), nil
}

func compileTree(raw any, attribute string) (any, bool, error) {
	switch o := raw.(type) {
	case map[string]any:
		if source, ok := o[exprKey].(string); ok && len(o) == 1 {
			program, err := expr.Compile(source, expr.AllowUndefinedVariables())
			if err != nil {
				return nil, false, fmt.Errorf("%w: attribute %q: %v", ErrBadExpression, attribute, err)
			}
			return computed{program: program}, true, nil
		}

		out := make(map[string]any, len(o))
		dynamic := false
		for key, value := range o {
			converted, d, err := compileTree(value, attribute)
			if err != nil {
				return nil, false, err
			}
			out[key] = converted
			dynamic = dynamic || d
		}
		return out, dynamic, nil
	case []any:
		out := make([]any, len(o))
		dynamic := false
		for i, value := range o {
			converted, d, err := compileTree(value, attribute)
			if err != nil {
				return nil, false, err
			}
			out[i] = converted
			dynamic = dynamic || d
		}
		return out, dynamic, nil
	default:
		return raw, false, nil
	}
}

func evaluateTree(tree any, env map[string]any) any {
	switch t := tree.(type) {
	case computed:
		out, err := vm.Run(t.program, env)
		if err != nil {
			return nil
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[key] = evaluateTree(value, env)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, value := range t {
			out[i] = evaluateTree(value, env)
		}
		return out
	default:
		return tree
	}
}

func exprEnv(value any, attributes map[string]any, attribute string) map[string]any {
	return map[string]any{
		"value":      value,
		"attribute":  attribute,
		"attributes": attributes,
	}
}
