package ll1

import (
	"sort"

	"github.com/go-spag/spag/bnf"
	"github.com/go-spag/spag/internal/sparse"
)

// Compile builds an LL(1) parse table for a grammar. A grammar that fails
// bnf.Source.Validate returns a nil table alongside the validation
// errors; a structurally valid grammar always succeeds, and one that happens
// not to be LL(1) still produces a complete Table, with every ambiguous
// cell recorded in Table.Conflicts rather than raised as an error.
func Compile(g *bnf.Source) (*Table, []error) {
	if errs := g.Validate(); len(errs) > 0 {
		return nil, errs
	}

	terminals, nonterminals := g.Symbols()
	sets := computeSets(g, terminals, nonterminals)

	rows := make(map[string]int, len(nonterminals))
	for i, n := range nonterminals {
		rows[n] = i
	}
	cols := make(map[string]int, len(terminals)+1)
	cols[EndOfInput] = 0
	for i, t := range terminals {
		cols[t] = i + 1
	}

	grid := sparse.NewMatrix(len(nonterminals), len(terminals)+1)
	var conflicts []Conflict

	for idx, p := range g.Productions {
		set := predict(p, sets.first, sets.follow)
		for _, terminal := range sortedStrings(set) {
			r, c := rows[p.LHS], cols[terminal]
			grid.Add(r, c, int32(idx))
		}
	}

	for _, n := range nonterminals {
		for _, terminal := range append([]string{EndOfInput}, terminals...) {
			cell := grid.Values(rows[n], cols[terminal])
			if len(cell) > 1 {
				idxs := make([]int, len(cell))
				for i, v := range cell {
					idxs[i] = int(v)
				}
				sort.Ints(idxs)
				conflicts = append(conflicts, Conflict{Nonterminal: n, Terminal: terminal, Productions: idxs})
			}
		}
	}

	tracer().Debugf("built LL(1) table for %q: %d nonterminals, %d terminals, %d conflicts",
		g.Name, len(nonterminals), len(terminals), len(conflicts))

	return &Table{
		Name:         g.Name,
		Start:        g.Start,
		Terminals:    terminals,
		Nonterminals: nonterminals,
		Productions:  g.Productions,
		rows:         rows,
		cols:         cols,
		grid:         grid,
		Conflicts:    conflicts,
	}, nil
}
