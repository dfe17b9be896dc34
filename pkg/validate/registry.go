package validate

import (
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"
)

// Func is the validator contract. It receives its own catalogue entry as v,
// so persistent per-validator defaults and message overrides survive across
// calls. A nil Signal means the value passed; a non-nil error is a
// configuration problem aborting the whole run.
type Func func(v *Validator, value any, options any, attribute string, attributes map[string]any, opts *Options) (Signal, error)

// ParseFunc turns a raw value into a point in time. Used by the datetime
// validator, which refuses to run without one.
type ParseFunc func(value any, options map[string]any) (time.Time, error)

// FormatFunc renders a point in time for error messages. Used by the
// datetime validator alongside ParseFunc.
type FormatFunc func(t time.Time, options map[string]any) string

// Validator is a catalogue entry: the check itself plus its persistent,
// process-wide mutable defaults. Mutating Options or Messages reconfigures
// every later call through the owning registry; that is the customization
// mechanism, not an accident. Parse and Format are only consulted by the
// datetime validator.
type Validator struct {
	Fn       Func
	Options  map[string]any
	Messages map[string]string
	Parse    ParseFunc
	Format   FormatFunc
}

// mergeOptions widens raw caller options into a map layered over the
// bundle's persistent defaults; caller options win on key conflict. Non-map
// options (booleans, shorthand slices) produce just the defaults.
func (v *Validator) mergeOptions(options any) map[string]any {
	merged := make(map[string]any, len(v.Options))
	maps.Copy(merged, v.Options)
	switch m := options.(type) {
	case map[string]any:
		maps.Copy(merged, m)
	case Constraint:
		maps.Copy(merged, m)
	}
	return merged
}

// message resolves the message for one failure kind: the per-call "message"
// option wins, then the kind-specific option, then the bundle's persistent
// default, then the built-in fallback.
func (v *Validator) message(options map[string]any, kind, fallback string) any {
	if msg, ok := options["message"]; ok && msg != nil {
		return msg
	}
	if msg, ok := options[kind]; ok && msg != nil {
		return msg
	}
	if msg, ok := v.Messages[kind]; ok && msg != "" {
		return msg
	}
	return fallback
}

// signalOf wraps a resolved message value in the matching Signal variant.
func signalOf(message any) Signal {
	switch m := message.(type) {
	case nil:
		return nil
	case string:
		return Message(m)
	case Message:
		return m
	case []string:
		return Messages(m)
	case Messages:
		return m
	case Deferred:
		return m
	case func(value any, attribute string, options any, attributes map[string]any, opts *Options) any:
		return Deferred(m)
	case Signal:
		return m
	default:
		return Opaque{Value: m}
	}
}

// Formatter renders the canonical error-record list into a caller-facing
// shape.
type Formatter func(details []ErrorDetail) any

// Registry bundles the validator and formatter catalogues. Both are mutable
// process-wide state when reached through Default; tests and libraries that
// want isolation construct their own with NewRegistry.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]*Validator
	formatters map[string]Formatter
	logger     *slog.Logger
}

// RegistryOption configures a Registry under construction.
type RegistryOption func(*Registry)

// WithLogger attaches a logger for validator dispatch tracing. The default
// logger discards everything.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns a registry seeded with every built-in validator and
// formatter.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		validators: make(map[string]*Validator),
		formatters: make(map[string]Formatter),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	registerBuiltinValidators(r)
	registerBuiltinFormatters(r)
	return r
}

// Default is the process-wide registry behind the package-level entry
// points.
var Default = NewRegistry()

// RegisterValidator adds or replaces a validator under name.
func (r *Registry) RegisterValidator(name string, v *Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[name] = v
	r.logger.Debug("validator registered", "name", name)
}

// Validator looks up a validator bundle by name.
func (r *Registry) Validator(name string) (*Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	return v, ok
}

// RegisterFormatter adds or replaces a formatter under name.
func (r *Registry) RegisterFormatter(name string, f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[name] = f
	r.logger.Debug("formatter registered", "name", name)
}

// Formatter looks up a formatter by name.
func (r *Registry) Formatter(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[name]
	return f, ok
}
