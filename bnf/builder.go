package bnf

// Builder assembles a Source one production at a time via a fluent API,
// adapted from the grammar-builder style used elsewhere in this corpus
// for LR grammars, stripped of token-value and end-of-file bookkeeping
// that only matters to a runtime scanner.
type Builder struct {
	name        string
	productions []Production
}

// NewBuilder starts a new grammar under construction, named name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// ruleBuilder accumulates the right-hand side of a single production
// started by Builder.LHS, until End or Epsilon commits it.
type ruleBuilder struct {
	b   *Builder
	lhs string
	rhs []string
}

// LHS starts a new production with the given left-hand side nonterminal.
func (b *Builder) LHS(nonterminal string) *ruleBuilder {
	return &ruleBuilder{b: b, lhs: nonterminal}
}

// N appends a nonterminal reference to the production under construction.
func (r *ruleBuilder) N(name string) *ruleBuilder {
	r.rhs = append(r.rhs, name)
	return r
}

// T appends a terminal reference to the production under construction.
func (r *ruleBuilder) T(name string) *ruleBuilder {
	r.rhs = append(r.rhs, name)
	return r
}

// End commits the production being built and returns to the Builder.
func (r *ruleBuilder) End() *Builder {
	r.b.productions = append(r.b.productions, Production{LHS: r.lhs, RHS: r.rhs})
	return r.b
}

// Epsilon commits an empty production (LHS -> epsilon).
func (r *ruleBuilder) Epsilon() *Builder {
	r.b.productions = append(r.b.productions, Production{LHS: r.lhs})
	return r.b
}

// Grammar finalizes the builder into a Source with the given start
// symbol.
func (b *Builder) Grammar(start string) *Source {
	return &Source{Name: b.name, Start: start, Productions: b.productions}
}
