// Package format renders human-readable validation messages: named template
// substitution plus the prettification helpers that turn attribute names and
// raw values into something you can show a user.
//
// Templates use %{name} placeholders. A doubled percent escapes one, so
// "%%{name}" renders as the literal "%{name}". Placeholders with no bound
// parameter are left untouched rather than replaced with an empty string,
// which makes a missing binding visible instead of silent.
//
// Prettify normalizes identifier-style names ("customerAge", "shipping_address",
// "addresses.work.city") into lower-case words, rounds fractional numbers to
// two decimals, joins sequences with commas and falls back to JSON for maps.
// Capitalize upper-cases the first letter only.
package format
