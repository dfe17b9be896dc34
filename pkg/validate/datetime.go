package validate

import (
	"fmt"
	"slices"
	"time"

	"github.com/pokeghosst/neovalidate/pkg/format"
	"github.com/pokeghosst/neovalidate/pkg/is"
)

// datetimeValidator checks that the parsed value lies within [earliest,
// latest]. The bundle must carry Parse and Format hooks before it can run;
// TimeParse and TimeFormat are ready-made hooks built on the time package.
// An unparseable value yields the single "must be a valid date" message and
// skips the range checks.
func datetimeValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"notValid": "must be a valid date",
			"tooEarly": "must be no earlier than %{date}",
			"tooLate":  "must be no later than %{date}",
		},
	}
	v.Fn = datetimeFn
	return v
}

// dateValidator is datetime with dateOnly forced true, sharing the datetime
// bundle's hooks and message defaults.
func dateValidator(datetime *Validator) *Validator {
	v := &Validator{}
	v.Fn = func(_ *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		forced := datetime.mergeOptions(options)
		forced["dateOnly"] = true
		return datetime.Fn(datetime, value, forced, attribute, attributes, opts)
	}
	return v
}

func datetimeFn(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
	if v.Parse == nil || v.Format == nil {
		return nil, &ConfigError{
			Attribute: attribute,
			Validator: "datetime",
			Detail:    "parse and format hooks must be configured",
			Err:       ErrMissingOption,
		}
	}
	if !is.Defined(value) {
		return nil, nil
	}

	merged := v.mergeOptions(options)

	t, err := v.Parse(value, merged)
	if err != nil {
		return signalOf(v.message(merged, "notValid", "must be a valid date")), nil
	}

	var errs []string
	appendBound := func(kind, fallback string, bound time.Time) {
		msg, ok := v.message(merged, kind, fallback).(string)
		if !ok {
			return
		}
		msg = sprintfDate(msg, v.Format(bound, merged))
		if !slices.Contains(errs, msg) {
			errs = append(errs, msg)
		}
	}

	if raw, ok := merged["earliest"]; ok && raw != nil {
		if earliest, err := v.Parse(raw, merged); err == nil && t.Before(earliest) {
			appendBound("tooEarly", "must be no earlier than %{date}", earliest)
		}
	}
	if raw, ok := merged["latest"]; ok && raw != nil {
		if latest, err := v.Parse(raw, merged); err == nil && t.After(latest) {
			appendBound("tooLate", "must be no later than %{date}", latest)
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	if override, ok := merged["message"]; ok && override != nil {
		return signalOf(override), nil
	}
	return Messages(errs), nil
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeParse is a ready-made ParseFunc accepting time.Time values, common
// layout strings and numeric Unix timestamps. With dateOnly the result is
// truncated to midnight UTC.
func TimeParse(value any, options map[string]any) (time.Time, error) {
	var t time.Time

	switch val := value.(type) {
	case time.Time:
		t = val
	case *time.Time:
		if val == nil {
			return time.Time{}, fmt.Errorf("validate: nil time")
		}
		t = *val
	case string:
		var err error
		for _, layout := range datetimeLayouts {
			if t, err = time.Parse(layout, val); err == nil {
				break
			}
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("validate: unparseable date %q", val)
		}
	default:
		if epoch, ok := is.Float(value); ok {
			t = time.Unix(int64(epoch), 0).UTC()
		} else {
			return time.Time{}, fmt.Errorf("validate: unparseable date value of type %T", value)
		}
	}

	if boolOption(options, "dateOnly") {
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return t, nil
}

// TimeFormat is a ready-made FormatFunc matching TimeParse.
func TimeFormat(t time.Time, options map[string]any) string {
	if boolOption(options, "dateOnly") {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

func sprintfDate(msg, date string) string {
	return format.Sprintf(msg, map[string]string{"date": date})
}
