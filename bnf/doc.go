/*
Package bnf builds and validates context-free grammars in BNF form, ready
to be handed to package ll1 for FIRST/FOLLOW analysis and LL(1) table
construction.

A grammar is built either declaratively, via NewSource and Add, or with
the fluent Builder:

	b := bnf.NewBuilder("expr")
	b.LHS("E").N("T").T("+").N("E").End() // E -> T + E
	b.LHS("E").N("T").End()               // E -> T
	b.LHS("T").T("id").End()              // T -> id
	src := b.Grammar("E")

Every symbol appearing on the left-hand side of a production is a
nonterminal; every other symbol is a terminal. An empty right-hand side
denotes an epsilon production.
*/
package bnf

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'spag.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("spag.bnf")
}
