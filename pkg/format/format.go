package format

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	placeholderRegex = regexp.MustCompile(`(%?)%\{([^}]+)\}`)
	camelBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
	innerDot         = regexp.MustCompile(`([^\s])\.([^\s])`)
	backslashes      = regexp.MustCompile(`\\+`)
	wordSeparators   = regexp.MustCompile(`[_-]`)
)

var upperFirst = cases.Upper(language.English)

// Sprintf substitutes %{name} placeholders in tmpl from params. "%%{name}"
// escapes to a literal "%{name}"; unbound placeholders are left as-is.
func Sprintf(tmpl string, params map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		groups := placeholderRegex.FindStringSubmatch(match)
		if groups[1] == "%" {
			return "%{" + groups[2] + "}"
		}
		if val, ok := params[groups[2]]; ok {
			return val
		}
		return match
	})
}

// Capitalize upper-cases the first letter of s, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upperFirst.String(s[:size]) + s[size:]
}

// Prettify renders v for display in a message. Attribute-style strings are
// broken into lower-case words; fractional numbers are rounded to two
// decimals; sequences are joined with ", "; maps fall back to their JSON
// form.
func Prettify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return prettifyString(val)
	case fmt.Stringer:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return prettifyFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Prettify(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Map:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}

	return fmt.Sprintf("%v", v)
}

func prettifyFloat(f float64) string {
	if f == math.Trunc(f*100)/100 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', 2, 64)
}

func prettifyString(s string) string {
	s = innerDot.ReplaceAllString(s, "$1 $2")
	s = backslashes.ReplaceAllString(s, "")
	s = wordSeparators.ReplaceAllString(s, " ")
	s = camelBoundary.ReplaceAllStringFunc(s, func(m string) string {
		return m[:1] + " " + strings.ToLower(m[1:])
	})
	return s
}
