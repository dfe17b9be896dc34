package validate

import (
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/pokeghosst/neovalidate/pkg/is"
)

// formatValidator checks string values against a regular expression given
// as the "pattern" option, a bare string option or a pre-compiled
// *regexp.Regexp. The whole value must match.
func formatValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"message": "is invalid",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		merged := v.mergeOptions(options)

		raw := merged["pattern"]
		switch o := options.(type) {
		case string:
			raw = o
		case *regexp.Regexp:
			raw = o
		}

		var pattern *regexp.Regexp
		switch p := raw.(type) {
		case *regexp.Regexp:
			pattern = p
		case string:
			compiled, err := regexp.Compile(p)
			if err != nil {
				return nil, &ConfigError{
					Attribute: attribute,
					Validator: "format",
					Detail:    err.Error(),
					Err:       ErrMissingOption,
				}
			}
			pattern = compiled
		default:
			return nil, &ConfigError{
				Attribute: attribute,
				Validator: "format",
				Detail:    `the "pattern" option must be a string or a *regexp.Regexp`,
				Err:       ErrMissingOption,
			}
		}

		if !is.Defined(value) {
			return nil, nil
		}

		fail := func() Signal { return signalOf(v.message(merged, "message", "is invalid")) }

		s, ok := value.(string)
		if !ok {
			return fail(), nil
		}
		if loc := pattern.FindStringIndex(s); loc == nil || loc[0] != 0 || loc[1] != len(s) {
			return fail(), nil
		}
		return nil, nil
	}
	return v
}

// emailValidator checks for a parseable address with a dotted, non-empty
// domain, which rejects the bare-host addresses mail.ParseAddress accepts
// but no public mail system uses.
func emailValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"message": "is not a valid email",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		if !is.Defined(value) {
			return nil, nil
		}

		merged := v.mergeOptions(options)
		fail := func() Signal { return signalOf(v.message(merged, "message", "is not a valid email")) }

		s, ok := value.(string)
		if !ok || !validEmail(s) {
			return fail(), nil
		}
		return nil, nil
	}
	return v
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	domain := parts[1]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// urlValidator checks for an absolute URL with an allowed scheme. Hosts
// without a dot (localhost, bare machine names) only pass with
// allowLocal:true.
func urlValidator() *Validator {
	v := &Validator{
		Options: map[string]any{
			"schemes": []string{"http", "https"},
		},
		Messages: map[string]string{
			"message": "is not a valid url",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		if !is.Defined(value) {
			return nil, nil
		}

		merged := v.mergeOptions(options)
		fail := func() Signal { return signalOf(v.message(merged, "message", "is not a valid url")) }

		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return fail(), nil
		}

		u, err := url.ParseRequestURI(s)
		if err != nil || u.Host == "" {
			return fail(), nil
		}

		if schemes, ok := merged["schemes"].([]string); ok && !slices.Contains(schemes, u.Scheme) {
			return fail(), nil
		}
		if !boolOption(merged, "allowLocal") && !strings.Contains(u.Hostname(), ".") {
			return fail(), nil
		}
		return nil, nil
	}
	return v
}

// uuidValidator checks for a canonical 36-character UUID, with cheap
// length/hyphen rejection before parsing.
func uuidValidator() *Validator {
	v := &Validator{
		Messages: map[string]string{
			"message": "is not a valid UUID",
		},
	}
	v.Fn = func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error) {
		if !is.Defined(value) {
			return nil, nil
		}

		merged := v.mergeOptions(options)
		fail := func() Signal { return signalOf(v.message(merged, "message", "is not a valid UUID")) }

		s, ok := value.(string)
		if !ok || !validUUID(s) {
			return fail(), nil
		}
		return nil, nil
	}
	return v
}

func validUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
