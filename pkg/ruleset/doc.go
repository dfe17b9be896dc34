// Package ruleset loads constraint sets from YAML documents, so validation
// rules can live in configuration instead of code.
//
// A document maps attribute keypaths to validator maps:
//
//	username:
//	  presence: true
//	  length:
//	    minimum: 3
//	age:
//	  numericality:
//	    onlyInteger: true
//	    greaterThan: 0
//
// Two escape hatches bring the engine's function-valued constraints to
// declarative documents, both powered by expr-lang expressions evaluated
// against {value, attribute, attributes}:
//
//   - an option value written as {$expr: "..."} is computed at validation
//     time, e.g. `greaterThan: {$expr: "attributes.minAge"}`
//   - a rule carrying the reserved key $when only applies while its
//     expression is true, e.g. `$when: "attributes.country == 'SE'"`
//
// Expressions are compiled once at parse time; a compile error fails Parse,
// a runtime evaluation error disables the rule or option for that call.
package ruleset
