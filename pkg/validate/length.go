package validate

import (
	"github.com/pokeghosst/neovalidate/pkg/is"
)

// lengthValidator checks the tokenized value's length against is, minimum
// and maximum. A value with no meaningful length yields the single
// "incorrect length" error and skips the range checks; several violated
// bounds each contribute their own message unless a single message override
// collapses them.
func lengthValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"notValid":    "has an incorrect length",
			"wrongLength": "is the wrong length (should be %{count} characters)",
			"tooShort":    "is too short (minimum is %{count} characters)",
			"tooLong":     "is too long (maximum is %{count} characters)",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		if !is.Defined(value) {
			return nil, nil
		}

		merged := v.mergeOptions(options)

		tokenized := value
		if tokenizer, ok := merged["tokenizer"].(func(any) any); ok {
			tokenized = tokenizer(value)
		}

		length, measurable := valueLength(tokenized)
		if !measurable {
			return signalOf(v.message(merged, "notValid", "has an incorrect length")), nil
		}

		var errs []string
		appendBound := func(kind, fallback string, count float64) {
			if msg, ok := v.message(merged, kind, fallback).(string); ok {
				errs = append(errs, bindCount(msg, count))
			}
		}

		if exact, ok := numOption(merged, "is"); ok && float64(length) != exact {
			appendBound("wrongLength", "is the wrong length (should be %{count} characters)", exact)
		}
		if minimum, ok := numOption(merged, "minimum"); ok && float64(length) < minimum {
			appendBound("tooShort", "is too short (minimum is %{count} characters)", minimum)
		}
		if maximum, ok := numOption(merged, "maximum"); ok && float64(length) > maximum {
			appendBound("tooLong", "is too long (maximum is %{count} characters)", maximum)
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
