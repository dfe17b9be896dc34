package validate

import (
	"github.com/pokeghosst/neovalidate/pkg/format"
)

// Options configures a single validation run. The zero value (and nil) means
// grouped format, full messages, attribute cleaning before asynchronous
// validation and empty form values nullified.
type Options struct {
	// Format selects the registered formatter rendering the final result.
	// Defaults to "grouped".
	Format string

	// FullMessages controls prefixing each message with the capitalized,
	// prettified attribute name. Only an explicit false suppresses the
	// prefix; messages marked literal with a leading '^' are never prefixed.
	FullMessages *bool

	// CleanAttributes controls whether attributes not named by the
	// constraint set are stripped before asynchronous validation. Defaults
	// to true; the synchronous entry point never cleans.
	CleanAttributes *bool

	// Nullify turns empty form values into nil during form collection.
	// Defaults to true.
	Nullify *bool

	// Prettify overrides the default attribute/value prettifier.
	Prettify func(any) string

	// WrapErrors wraps the validation failure the asynchronous entry point
	// fails with, letting callers unify its shape with their own error
	// types.
	WrapErrors func(*Errors) error
}

// Bool returns a pointer to v, for the tri-state option fields.
func Bool(v bool) *bool { return &v }

func (o *Options) formatName() string {
	if o == nil || o.Format == "" {
		return "grouped"
	}
	return o.Format
}

func (o *Options) fullMessages() bool {
	return o == nil || o.FullMessages == nil || *o.FullMessages
}

func (o *Options) cleanAttributes() bool {
	return o == nil || o.CleanAttributes == nil || *o.CleanAttributes
}

func (o *Options) nullify() bool {
	return o == nil || o.Nullify == nil || *o.Nullify
}

func (o *Options) prettify(v any) string {
	if o != nil && o.Prettify != nil {
		return o.Prettify(v)
	}
	return format.Prettify(v)
}
