// Package is provides the small value-shape predicates shared across the
// validation engine: type checks (Number, String, Array, Hash, Date, Function)
// and the emptiness rule used both for pruning error records and for deciding
// whether a validation run produced any errors at all.
//
// The emptiness rule is deliberately narrow: nil, whitespace-only strings and
// zero-length collections are empty; functions, dates, numbers and booleans
// never are. Every component that needs to ask "is there anything here?" asks
// this package, so the answer stays consistent across presence checks, record
// pruning and the final success signal.
package is
