/*
Package sparse implements a sparse table type for compiled automaton and
grammar artifacts: DFA transition functions and LL(1) parse-table cells.

Unlike a dense two-dimensional slice, entries that are never written cost
nothing. Every cell holds a small slice of int32 rather than a single
value, so a cell can represent "no entry", "one entry" (the common case),
or "several entries" (an LL(1) conflict) uniformly.

This implementation uses the COO algorithm (triplet encoding): cells are
kept as a slice of (row, col, values) triplets in row-major order,
located by linear scan and shifted on insertion.
*/
package sparse
