package ll1

import (
	"github.com/go-spag/spag/bnf"
	"github.com/go-spag/spag/internal/sparse"
)

// Conflict records a single parse-table cell that predicts more than one
// production: the grammar is not LL(1) at this (nonterminal, terminal)
// pair.
type Conflict struct {
	Nonterminal string
	Terminal    string
	Productions []int // indices into Table.Productions, in declaration order
}

// Table is the immutable result of compiling a grammar: its terminal and
// nonterminal vocabularies, its flattened productions (indexed the same
// way Lookup's production indices are), and the LL(1) parse table itself.
// A Table is always returned, even for a grammar that is not LL(1);
// Conflicts lists every cell with more than one candidate production.
type Table struct {
	Name         string
	Start        string
	Terminals    []string // does not include EndOfInput
	Nonterminals []string
	Productions  []bnf.Production

	rows map[string]int
	cols map[string]int
	grid *sparse.Matrix

	Conflicts []Conflict
}

// Lookup returns the production indices predicted for (nonterminal,
// terminal). An empty result means no production applies -- a syntax
// error, if this table is used to drive a parser. More than one index
// means a conflict (see Conflicts).
func (t *Table) Lookup(nonterminal, terminal string) []int32 {
	r, ok := t.rows[nonterminal]
	if !ok {
		return nil
	}
	c, ok := t.cols[terminal]
	if !ok {
		return nil
	}
	return t.grid.Values(r, c)
}

// IsLL1 reports whether the grammar produced a conflict-free table.
func (t *Table) IsLL1() bool {
	return len(t.Conflicts) == 0
}
