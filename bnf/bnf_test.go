package bnf

import "testing"

func TestSymbolsClassification(t *testing.T) {
	s := NewSource("g", "S").
		Add("S", "a", "S", "b").
		Add("S")
	terminals, nonterminals := s.Symbols()
	if len(nonterminals) != 1 || nonterminals[0] != "S" {
		t.Fatalf("expected nonterminals [S], got %v", nonterminals)
	}
	if len(terminals) != 2 || terminals[0] != "a" || terminals[1] != "b" {
		t.Fatalf("expected terminals [a b] in first-seen order, got %v", terminals)
	}
}

func TestValidateMissingStart(t *testing.T) {
	s := NewSource("g", "X").Add("S", "a")
	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	ge := errs[0].(*GrammarError)
	if ge.Kind != MissingStartSymbol {
		t.Fatalf("expected MissingStartSymbol, got %v", ge.Kind)
	}
}

func TestValidateEmptyProductions(t *testing.T) {
	s := NewSource("g", "S")
	errs := s.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
}

func TestBuilderProducesEquivalentSource(t *testing.T) {
	b := NewBuilder("expr")
	b.LHS("E").N("T").T("+").N("E").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("id").End()
	src := b.Grammar("E")

	if len(src.Productions) != 3 {
		t.Fatalf("expected 3 productions, got %d", len(src.Productions))
	}
	if errs := src.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestBuilderEpsilon(t *testing.T) {
	b := NewBuilder("g")
	b.LHS("S").T("a").N("S").T("b").End()
	b.LHS("S").Epsilon()
	src := b.Grammar("S")
	if len(src.Productions[1].RHS) != 0 {
		t.Fatalf("expected an empty RHS for the epsilon production")
	}
}
