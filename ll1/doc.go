/*
Package ll1 computes FIRST, FOLLOW and PREDICT sets for a package bnf
grammar and constructs its LL(1) parse table.

For every grammar that passes bnf.Source.Validate, Compile returns a
table; a grammar that fails validation returns only the validation errors.
A valid grammar that is not LL(1) produces a table with one or more
conflict cells -- more than one
candidate production for some (nonterminal, terminal) pair -- rather than
an error. Conflicts are data for the caller to inspect (Table.Conflicts),
not a reason to fail the build.
*/
package ll1

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'spag.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("spag.ll1")
}

// EndOfInput is the synthetic terminal appended to every grammar's
// terminal set, marking the end of the input stream. It is always
// assigned column 0 of a Table.
const EndOfInput = "$"

// Epsilon is the synthetic empty-production marker used internally by
// FIRST/FOLLOW computation. It never appears as a Table column.
const Epsilon = "ε"
