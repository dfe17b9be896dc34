package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an asynchronous validator or
// validation run.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the future settles and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the future to settle, giving up after timeout
// with ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has settled, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn in its own goroutine and returns a future that settles with
// its result. If ctx is already canceled the future settles with the context
// error without invoking fn.
func Async[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already-settled future carrying result. Validators use
// it to hand back a computed value through the asynchronous path.
func Resolved[U any](result U) *Future[U] {
	f := &Future[U]{result: result, done: make(chan struct{})}
	close(f.done)
	return f
}

// Failed returns an already-settled future carrying err.
func Failed[U any](err error) *Future[U] {
	f := &Future[U]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// WaitAll joins every future, collecting results in order. The first error
// encountered (in argument order) is returned alongside the partial results;
// later futures are still awaited so no goroutine outlives the join.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
