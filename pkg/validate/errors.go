package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel configuration errors. They abort a validation call outright and
// are never part of a rendered result.
var (
	// ErrUnknownValidator is returned when a constraint names a validator
	// absent from the catalogue.
	ErrUnknownValidator = errors.New("validate: unknown validator")

	// ErrUnknownFormat is returned when options select an unregistered
	// formatter.
	ErrUnknownFormat = errors.New("validate: unknown format")

	// ErrAsyncValidator is returned by the synchronous entry point when a
	// validator hands back a pending future.
	ErrAsyncValidator = errors.New("validate: validator returned a pending result from synchronous validation")

	// ErrMissingOption is returned when a validator mandates an option the
	// constraint did not supply, or supplied malformed.
	ErrMissingOption = errors.New("validate: required validator option missing or invalid")

	// ErrBadConstraint is returned when a constraint entry is neither a
	// validator map nor a constraint function.
	ErrBadConstraint = errors.New("validate: constraint must be a validator map or a constraint function")

	// ErrBadAttributes is returned when the attributes argument is not a
	// string-keyed map and implements no collection interface.
	ErrBadAttributes = errors.New("validate: attributes must be a string-keyed map, url.Values or an AttributeSource")
)

// ConfigError describes a configuration problem: what went wrong, and which
// attribute/validator the pipeline was working on when it did. It wraps one
// of the sentinel errors above, so errors.Is works.
type ConfigError struct {
	Attribute string
	Validator string
	Format    string
	Detail    string
	Err       error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Validator != "" {
		fmt.Fprintf(&b, ": %q", e.Validator)
	}
	if e.Format != "" {
		fmt.Fprintf(&b, ": %q", e.Format)
	}
	if e.Attribute != "" {
		fmt.Fprintf(&b, " (attribute %q)", e.Attribute)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Errors carries a failed validation run: the result rendered in the
// selected format plus the canonical records behind it. ValidateAsync fails
// with an *Errors (optionally passed through Options.WrapErrors) so callers
// can tell data-driven failure from configuration errors with errors.As.
type Errors struct {
	Rendered any
	Details  []ErrorDetail
}

func (e *Errors) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		if msg, ok := d.Error.(string); ok {
			parts = append(parts, msg)
		} else {
			parts = append(parts, fmt.Sprintf("%s is invalid", d.Attribute))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ExtractErrors pulls the validation failure out of an error returned by
// ValidateAsync, or nil when err is not one (configuration errors are not).
func ExtractErrors(err error) *Errors {
	if err == nil {
		return nil
	}
	var verr *Errors
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
