package ll1

import (
	"testing"

	"github.com/go-spag/spag/bnf"
)

func TestSaSbEpsilonIsLL1(t *testing.T) {
	// S -> a S b | epsilon
	g := bnf.NewSource("balanced", "S").
		Add("S", "a", "S", "b").
		Add("S")
	table, errs := Compile(g)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !table.IsLL1() {
		t.Fatalf("expected no conflicts, got %v", table.Conflicts)
	}
	if got := table.Lookup("S", "a"); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected production 0 on (S, a), got %v", got)
	}
	if got := table.Lookup("S", EndOfInput); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected production 1 (epsilon) on (S, $), got %v", got)
	}
	if got := table.Lookup("S", "b"); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected production 1 (epsilon) on (S, b), got %v", got)
	}
}

func TestLeftRecursionProducesConflict(t *testing.T) {
	// E -> E + T | T
	// T -> id
	g := bnf.NewSource("expr", "E").
		Add("E", "E", "+", "T").
		Add("E", "T").
		Add("T", "id")
	table, errs := Compile(g)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if table.IsLL1() {
		t.Fatalf("expected left recursion to produce at least one conflict")
	}
	found := false
	for _, c := range table.Conflicts {
		if c.Nonterminal == "E" && c.Terminal == "id" {
			found = true
			if len(c.Productions) < 2 {
				t.Fatalf("expected multiple candidate productions, got %v", c.Productions)
			}
		}
	}
	if !found {
		t.Fatalf("expected a conflict at (E, id), got %v", table.Conflicts)
	}
}

func TestCompileRejectsInvalidGrammar(t *testing.T) {
	g := bnf.NewSource("bad", "Z") // Z never defined
	_, errs := Compile(g)
	if len(errs) == 0 {
		t.Fatalf("expected validation errors")
	}
}

func TestTableColumnsIncludeEndOfInput(t *testing.T) {
	g := bnf.NewSource("g", "S").Add("S", "a")
	table, errs := Compile(g)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := table.Lookup("S", EndOfInput); len(got) != 0 {
		t.Fatalf("expected no entry at (S, $), got %v", got)
	}
	if got := table.Lookup("S", "a"); len(got) != 1 {
		t.Fatalf("expected a single entry at (S, a), got %v", got)
	}
}
