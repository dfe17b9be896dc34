// Package keypath resolves dotted attribute names against nested attribute
// maps. A dot separates nesting levels, a backslash escapes: `\.` is a
// literal dot inside a key and `\\` is a literal backslash, so "a\.b.c"
// addresses key "a.b" then "c" while "a.b.c" walks three levels deep.
//
// Get and Has read through nested maps, Set builds the intermediate maps it
// needs, which makes a write followed by a read with the same path a
// round-trip.
package keypath
