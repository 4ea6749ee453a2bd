package bnf

// Production is a single BNF rule LHS -> RHS. An empty RHS is an
// epsilon production. Declaration order among all of a Source's
// Productions is significant: it fixes each production's index, which
// ll1.Table cells and conflicts refer to.
type Production struct {
	LHS string
	RHS []string
}

// Source is an ordered, named BNF grammar: every Production in
// declaration order, plus the nonterminal productions are derived from.
type Source struct {
	Name        string
	Start       string
	Productions []Production
}

// NewSource creates an empty grammar. Call Add to declare productions,
// then Validate (or ll1.Compile, which validates internally) once done.
func NewSource(name, start string) *Source {
	return &Source{Name: name, Start: start}
}

// Add appends a production LHS -> RHS. RHS may be empty for an epsilon
// production.
func (s *Source) Add(lhs string, rhs ...string) *Source {
	s.Productions = append(s.Productions, Production{LHS: lhs, RHS: rhs})
	return s
}

// Symbols classifies every symbol appearing in the grammar's productions:
// a symbol is a nonterminal iff it appears as some production's LHS,
// terminal otherwise. Order within each returned slice is first
// occurrence within the productions, so downstream consumers get a
// stable, deterministic symbol ordering instead of Go's randomized map
// iteration order.
func (s *Source) Symbols() (terminals, nonterminals []string) {
	isNonterminal := make(map[string]bool)
	for _, p := range s.Productions {
		isNonterminal[p.LHS] = true
	}
	seenT := make(map[string]bool)
	seenN := make(map[string]bool)
	for _, p := range s.Productions {
		if !seenN[p.LHS] {
			seenN[p.LHS] = true
			nonterminals = append(nonterminals, p.LHS)
		}
		for _, sym := range p.RHS {
			if isNonterminal[sym] {
				continue
			}
			if !seenT[sym] {
				seenT[sym] = true
				terminals = append(terminals, sym)
			}
		}
	}
	return terminals, nonterminals
}

// Validate checks every structural precondition Compile relies on: a
// non-empty name and start symbol, at least one production, no empty
// symbols, and a start symbol that is actually defined by some
// production.
func (s *Source) Validate() []error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, newGrammarError("", -1, EmptyName, "grammar name must not be empty"))
	}
	if len(s.Productions) == 0 {
		errs = append(errs, newGrammarError(s.Name, -1, EmptyProductions, "grammar must declare at least one production"))
		return errs
	}
	startDefined := false
	for i, p := range s.Productions {
		if p.LHS == "" {
			errs = append(errs, newGrammarError("", i, EmptySymbol, "production left-hand side must not be empty"))
		}
		if p.LHS == s.Start {
			startDefined = true
		}
		for _, sym := range p.RHS {
			if sym == "" {
				errs = append(errs, newGrammarError(p.LHS, i, EmptySymbol, "production right-hand side contains an empty symbol"))
			}
		}
	}
	if !startDefined {
		errs = append(errs, newGrammarError(s.Start, -1, MissingStartSymbol, "start symbol is not the left-hand side of any production"))
	}
	return errs
}
