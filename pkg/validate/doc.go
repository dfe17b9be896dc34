// Package validate is a declarative attribute-validation engine: it runs a
// catalogue of named validators against a bag of named values according to a
// data-driven constraint set, and renders the collected errors in one of
// several caller-selectable shapes.
//
// # Usage
//
//	result, err := validate.Validate(map[string]any{"username": "bob"}, validate.Constraints{
//	    "username": validate.Constraint{
//	        "presence": true,
//	        "length":   map[string]any{"minimum": 3},
//	    },
//	    "email": validate.Constraint{
//	        "presence": true,
//	        "email":    true,
//	    },
//	}, nil)
//	if err != nil {
//	    // configuration problem: unknown validator, bad options, ...
//	}
//	if result != nil {
//	    // map[string][]any{"email": {"Email can't be blank"}}
//	}
//
// A nil result means every validator passed. Validation errors are data,
// returned in the format selected by Options.Format ("grouped" by default,
// or "flat", "detailed", "constraint"); the error return is reserved for
// configuration mistakes, which always abort the call.
//
// # Constraints are data
//
// Constraint attribute names are keypaths: "address.city" reaches into
// nested maps, with backslash escapes for literal dots. Constraint values
// and individual validator options may be functions (ConstraintFunc,
// OptionsFunc) computed at validation time; options resolving to nil or
// false skip that validator silently.
//
// # Asynchronous validation
//
// A validator may return a Pending signal wrapping a future instead of an
// immediate result. ValidateAsync joins every pending future before
// normalizing errors and resolves with the validated (and by default
// cleaned) attributes; Validate treats a pending result as a configuration
// error. See the async package for the future type.
//
// # Extension
//
// Validators and formatters register by name. Each validator is a bundle of
// its check function plus persistent default options and messages; mutating
// a bundle reconfigures every later call through its registry, which is the
// intended customization mechanism and deliberately process-wide on the
// Default registry. Construct isolated registries with NewRegistry when
// that sharing is unwanted, for example in tests.
package validate
