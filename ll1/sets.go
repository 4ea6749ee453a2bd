package ll1

import (
	"sort"

	"github.com/go-spag/spag/bnf"
	"github.com/go-spag/spag/internal/iteratable"
)

// symbolSets bundles the least-fixpoint results computed over a grammar:
// FIRST and FOLLOW for every symbol, keyed by symbol name. Set membership
// for a symbol may include Epsilon; FOLLOW sets never do.
type symbolSets struct {
	first  map[string]*iteratable.Set
	follow map[string]*iteratable.Set
}

// computeSets runs the FIRST and FOLLOW fixpoints over a grammar in
// sequence (FOLLOW depends on the finished FIRST sets) and bundles both
// results together for the table builder.
func computeSets(g *bnf.Source, terminals, nonterminals []string) *symbolSets {
	first := computeFirst(terminals, nonterminals, g.Productions)
	follow := computeFollow(nonterminals, g.Start, first, g.Productions)
	return &symbolSets{first: first, follow: follow}
}

// computeFirst derives FIRST(X) for every terminal and nonterminal X,
// following the standard least-fixpoint algorithm: a terminal's FIRST
// set is itself; a nonterminal's FIRST set is seeded empty and grown by
// repeatedly scanning every production until nothing changes.
func computeFirst(terminals, nonterminals []string, productions []bnf.Production) map[string]*iteratable.Set {
	first := make(map[string]*iteratable.Set)
	for _, t := range terminals {
		first[t] = iteratable.NewSet(t)
	}
	for _, n := range nonterminals {
		first[n] = iteratable.NewSet()
	}

	for {
		changed := false
		for _, p := range productions {
			derived := firstOfSequence(p.RHS, first)
			before := first[p.LHS].Size()
			first[p.LHS] = first[p.LHS].Union(derived)
			if first[p.LHS].Size() != before {
				changed = true
			}
		}
		if !changed {
			return first
		}
	}
}

// firstOfSequence derives FIRST for a symbol sequence (a production's
// right-hand side, or a suffix of one): the union of FIRST(symbol) for
// each symbol in turn, stopping as soon as a symbol's FIRST set does not
// contain Epsilon, and including Epsilon itself only if every symbol in
// the sequence can derive the empty string.
func firstOfSequence(seq []string, first map[string]*iteratable.Set) *iteratable.Set {
	result := iteratable.NewSet(Epsilon)
	for _, sym := range seq {
		fs := first[sym]
		result = result.Union(fs.Copy())
		if !fs.Contains(Epsilon) {
			result.Remove(Epsilon)
			return result
		}
	}
	return result
}

// computeFollow derives FOLLOW(N) for every nonterminal N, following the
// standard least-fixpoint algorithm seeded with EndOfInput in
// FOLLOW(start).
func computeFollow(nonterminals []string, start string, first map[string]*iteratable.Set, productions []bnf.Production) map[string]*iteratable.Set {
	follow := make(map[string]*iteratable.Set)
	for _, n := range nonterminals {
		follow[n] = iteratable.NewSet()
	}
	follow[start].Add(EndOfInput)

	isNonterminal := make(map[string]bool, len(nonterminals))
	for _, n := range nonterminals {
		isNonterminal[n] = true
	}

	for {
		changed := false
		for _, p := range productions {
			for i, sym := range p.RHS {
				if !isNonterminal[sym] {
					continue
				}
				rest := firstOfSequence(p.RHS[i+1:], first)
				add := rest.Copy()
				if add.Contains(Epsilon) {
					add.Remove(Epsilon)
					add = add.Union(follow[p.LHS].Copy())
				}
				before := follow[sym].Size()
				follow[sym] = follow[sym].Union(add)
				if follow[sym].Size() != before {
					changed = true
				}
			}
		}
		if !changed {
			return follow
		}
	}
}

// predict derives PREDICT for a single production: FIRST of its
// right-hand side, with Epsilon replaced by FOLLOW(LHS) whenever the
// right-hand side can derive the empty string. This is exactly the set
// of terminals that should route a table lookup to this production.
func predict(p bnf.Production, first, follow map[string]*iteratable.Set) *iteratable.Set {
	set := firstOfSequence(p.RHS, first)
	if set.Contains(Epsilon) {
		set.Remove(Epsilon)
		set = set.Union(follow[p.LHS].Copy())
	}
	return set
}

// sortedStrings returns the members of s as a sorted slice, so callers
// that need deterministic order (documentation, error messages) never
// depend on iteratable.Set's internal iteration order.
func sortedStrings(s *iteratable.Set) []string {
	vals := s.Values()
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.(string))
	}
	sort.Strings(out)
	return out
}
