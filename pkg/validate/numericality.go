package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pokeghosst/neovalidate/pkg/is"
)

var (
	strictNumberRegex  = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?$`)
	strictIntegerRegex = regexp.MustCompile(`^-?(0|[1-9]\d*)$`)
)

type numericCheck struct {
	option   string
	kind     string
	fallback string
	holds    func(value, bound float64) bool
}

// Comparison order is fixed so a value violating several bounds always
// reports them in the same order.
var numericChecks = []numericCheck{
	{"greaterThan", "notGreaterThan", "must be greater than %{count}", func(v, b float64) bool { return v > b }},
	{"greaterThanOrEqualTo", "notGreaterThanOrEqualTo", "must be greater than or equal to %{count}", func(v, b float64) bool { return v >= b }},
	{"equalTo", "notEqualTo", "must be equal to %{count}", func(v, b float64) bool { return v == b }},
	{"lessThan", "notLessThan", "must be less than %{count}", func(v, b float64) bool { return v < b }},
	{"lessThanOrEqualTo", "notLessThanOrEqualTo", "must be less than or equal to %{count}", func(v, b float64) bool { return v <= b }},
	{"divisibleBy", "notDivisibleBy", "must be divisible by %{count}", func(v, b float64) bool { return math.Mod(v, b) == 0 }},
}

// numericalityValidator checks that the value is numeric, optionally
// coerced from a numeric string, and satisfies every configured comparison.
// Each failed comparison contributes its own message.
func numericalityValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"notValid":   "is not a number",
			"notInteger": "must be an integer",
			"notOdd":     "must be odd",
			"notEven":    "must be even",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		if !is.Defined(value) {
			return nil, nil
		}

		merged := v.mergeOptions(options)
		notValid := func() Signal {
			return signalOf(v.message(merged, "notValid", "is not a number"))
		}

		resolved := value
		if s, ok := value.(string); ok {
			if boolOption(merged, "strict") {
				pattern := strictNumberRegex
				if boolOption(merged, "onlyInteger") {
					pattern = strictIntegerRegex
				}
				if !pattern.MatchString(s) {
					return notValid(), nil
				}
			}
			if !boolOption(merged, "noStrings") && strings.TrimSpace(s) != "" {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return notValid(), nil
				}
				resolved = f
			}
		}

		f, numeric := is.Float(resolved)
		if !numeric || math.IsNaN(f) {
			return notValid(), nil
		}

		if boolOption(merged, "onlyInteger") && f != math.Trunc(f) {
			return signalOf(v.message(merged, "notInteger", "must be an integer")), nil
		}

		var errs []string
		appendKind := func(kind, fallback string) {
			if msg, ok := v.message(merged, kind, fallback).(string); ok {
				errs = append(errs, msg)
			}
		}

		for _, check := range numericChecks {
			bound, ok := numOption(merged, check.option)
			if !ok {
				continue
			}
			if !check.holds(f, bound) {
				if msg, ok := v.message(merged, check.kind, check.fallback).(string); ok {
					errs = append(errs, bindCount(msg, bound))
				}
			}
		}

		if boolOption(merged, "odd") && math.Mod(f, 2) != 1 {
			appendKind("notOdd", "must be odd")
		}
		if boolOption(merged, "even") && math.Mod(f, 2) != 0 {
			appendKind("notEven", "must be even")
		}

		if len(errs) == 0 {
			return nil, nil
		}
		if override, ok := merged["message"]; ok && override != nil {
			return signalOf(override), nil
		}
		return Messages(errs), nil
	}
	return v
}
