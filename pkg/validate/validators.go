package validate

import (
	"reflect"
	"unicode/utf8"

	"github.com/pokeghosst/neovalidate/pkg/format"
	"github.com/pokeghosst/neovalidate/pkg/is"
)

func registerBuiltinValidators(r *Registry) {
	datetime := datetimeValidator()

	r.RegisterValidator("presence", presenceValidator())
	r.RegisterValidator("length", lengthValidator())
	r.RegisterValidator("numericality", numericalityValidator())
	r.RegisterValidator("datetime", datetime)
	r.RegisterValidator("date", dateValidator(datetime))
	r.RegisterValidator("equality", equalityValidator())
	r.RegisterValidator("inclusion", inclusionValidator())
	r.RegisterValidator("exclusion", exclusionValidator())
	r.RegisterValidator("type", typeValidator())
	r.RegisterValidator("format", formatValidator())
	r.RegisterValidator("email", emailValidator())
	r.RegisterValidator("url", urlValidator())
	r.RegisterValidator("uuid", uuidValidator())
}

// numOption fetches a numeric option, widening any integer or float type.
func numOption(options map[string]any, key string) (float64, bool) {
	raw, ok := options[key]
	if !ok {
		return 0, false
	}
	return is.Float(raw)
}

// boolOption reports whether the option is present and true.
func boolOption(options map[string]any, key string) bool {
	b, ok := options[key].(bool)
	return ok && b
}

// valueLength measures a value the way the length validator counts:
// strings by rune, collections by element. The second return is false for
// values with no meaningful length.
func valueLength(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// bindCount substitutes the %{count} placeholder a range-style message
// documents.
func bindCount(msg string, count float64) string {
	return format.Sprintf(msg, map[string]string{"count": format.Prettify(count)})
}
