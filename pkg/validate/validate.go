package validate

import (
	"context"

	"github.com/pokeghosst/neovalidate/pkg/async"
	"github.com/pokeghosst/neovalidate/pkg/is"
)

// Validate runs constraints against attributes synchronously and renders any
// validation errors in the selected format. It returns (nil, nil) when every
// validator passed. The error return is reserved for configuration
// problems: unknown validator or format names, malformed constraints, and
// validators producing pending futures where only synchronous results are
// accepted.
func Validate(attributes any, constraints Constraints, opts *Options) (any, error) {
	return Default.Validate(attributes, constraints, opts)
}

// Validate is the Registry-scoped equivalent of the package-level Validate.
func (r *Registry) Validate(attributes any, constraints Constraints, opts *Options) (any, error) {
	attrs, err := r.collectAttributes(attributes, opts)
	if err != nil {
		return nil, err
	}

	results, err := r.runValidations(attrs, constraints, opts)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		if _, ok := res.signal.(Pending); ok {
			return nil, &ConfigError{Attribute: res.attribute, Validator: res.name, Err: ErrAsyncValidator}
		}
	}

	rendered, _, err := r.render(results, opts)
	return rendered, err
}

// ValidateAsync runs constraints against attributes, waiting for every
// pending validator future to settle before errors are normalized. The
// returned future resolves with the (cleaned, unless disabled) attributes on
// success. On validation failure it fails with an *Errors carrying the
// rendered result, passed through Options.WrapErrors when configured;
// configuration errors and validator future errors fail the future
// unchanged.
func ValidateAsync(ctx context.Context, attributes any, constraints Constraints, opts *Options) *async.Future[map[string]any] {
	return Default.ValidateAsync(ctx, attributes, constraints, opts)
}

// ValidateAsync is the Registry-scoped equivalent of the package-level
// ValidateAsync.
func (r *Registry) ValidateAsync(ctx context.Context, attributes any, constraints Constraints, opts *Options) *async.Future[map[string]any] {
	return async.Async(ctx, func(ctx context.Context) (map[string]any, error) {
		attrs, err := r.collectAttributes(attributes, opts)
		if err != nil {
			return nil, err
		}

		if opts.cleanAttributes() {
			attrs = CleanAttributes(attrs, constraints)
		}

		results, err := r.runValidations(attrs, constraints, opts)
		if err != nil {
			return nil, err
		}

		if err := awaitPending(results); err != nil {
			return nil, err
		}

		rendered, details, err := r.render(results, opts)
		if err != nil {
			return nil, err
		}
		if rendered == nil {
			return attrs, nil
		}

		verr := &Errors{Rendered: rendered, Details: details}
		if opts != nil && opts.WrapErrors != nil {
			return nil, opts.WrapErrors(verr)
		}
		return nil, verr
	})
}

// Single validates one bare value against one validator map. The result is
// always rendered flat and without attribute-name prefixes, regardless of
// caller options. Configuration errors surface exactly as they do from
// Validate.
func Single(value any, constraint Constraint, opts *Options) (any, error) {
	return Default.Single(value, constraint, opts)
}

// Single is the Registry-scoped equivalent of the package-level Single.
func (r *Registry) Single(value any, constraint Constraint, opts *Options) (any, error) {
	var forced Options
	if opts != nil {
		forced = *opts
	}
	forced.Format = "flat"
	forced.FullMessages = Bool(false)

	return r.Validate(map[string]any{"single": value}, Constraints{"single": constraint}, &forced)
}

// render normalizes raw results and applies the selected formatter. The
// formatter is resolved before normalization so an unknown format name fails
// before any formatting work happens. A rendered result that is itself empty
// collapses to nil, the single success signal across formats.
func (r *Registry) render(results []result, opts *Options) (any, []ErrorDetail, error) {
	name := opts.formatName()
	formatter, ok := r.Formatter(name)
	if !ok {
		return nil, nil, &ConfigError{Format: name, Err: ErrUnknownFormat}
	}

	details := normalize(results, opts)
	if len(details) == 0 {
		return nil, nil, nil
	}

	rendered := formatter(details)
	if is.Empty(rendered) {
		return nil, details, nil
	}
	return rendered, details, nil
}
