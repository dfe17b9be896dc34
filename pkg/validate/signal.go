package validate

import (
	"github.com/pokeghosst/neovalidate/pkg/async"
)

// Signal is the result a validator hands back. A nil Signal means the value
// passed. The concrete variants cover every shape the pipeline knows how to
// normalize: a single message, several messages, a deferred message
// function, an opaque detailed error and a pending asynchronous result.
type Signal interface {
	errorSignal()
}

// Message is a single error message. Messages starting with '^' are taken
// literally and never get the attribute-name prefix.
type Message string

// Messages carries several independent error messages from one validator
// run; normalization expands each into its own error record.
type Messages []string

// Deferred is a message computed at normalization time. Whatever it returns
// takes the place of the error: strings go through prefixing and template
// substitution, anything else passes through untouched.
type Deferred func(value any, attribute string, options any, attributes map[string]any, opts *Options) any

// Opaque wraps an arbitrary error value that should reach the detailed
// format unchanged.
type Opaque struct {
	Value any
}

// Pending defers the error signal to a future. Only the asynchronous entry
// point accepts it; the synchronous one fails with ErrAsyncValidator.
type Pending struct {
	Future *async.Future[Signal]
}

func (Message) errorSignal()  {}
func (Messages) errorSignal() {}
func (Deferred) errorSignal() {}
func (Opaque) errorSignal()   {}
func (Pending) errorSignal()  {}
