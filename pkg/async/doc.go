// Package async provides the future abstraction the validation engine uses
// for asynchronous validators.
//
// A validator that needs to do slow work (a uniqueness lookup, a remote
// check) returns a pending *Future instead of an immediate result. The
// asynchronous entry point joins every pending future with WaitAll before
// normalizing errors; the synchronous entry point refuses pending futures
// outright. Resolved and Failed build already-settled futures, which keeps
// test validators and trivially-async validators cheap.
//
// Futures are context-aware: if the context passed to Async is already
// canceled, the future settles with the context error without running the
// supplied function. There is no cancellation of work that has started.
package async
