package automaton

import (
	"testing"

	"github.com/go-spag/spag/regex"
)

func compileSource(t *testing.T, s *regex.Source) *DFA {
	t.Helper()
	dfa, errs := Compile(s)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors compiling %s: %v", s.Name, errs)
	}
	return dfa
}

func run(dfa *DFA, input string) (state int, accepted string, ok bool) {
	s := dfa.Start
	for i := 0; i < len(input); i++ {
		s = dfa.Step(s, input[i])
	}
	name, isAccept := dfa.IsAccepting(s)
	return s, name, isAccept
}

func TestDigitsPlus(t *testing.T) {
	s := regex.NewSource("digits").Add("INT", "[0-9]+")
	dfa := compileSource(t, s)

	if _, name, ok := run(dfa, "0"); !ok || name != "INT" {
		t.Fatalf("expected \"0\" to accept as INT, got %q %v", name, ok)
	}
	if _, name, ok := run(dfa, "42017"); !ok || name != "INT" {
		t.Fatalf("expected \"42017\" to accept as INT, got %q %v", name, ok)
	}
	if _, _, ok := run(dfa, ""); ok {
		t.Fatalf("expected empty input to be rejected")
	}
	if _, _, ok := run(dfa, "4a"); ok {
		t.Fatalf("expected \"4a\" to be rejected")
	}
}

func TestDeclarationOrderBreaksTies(t *testing.T) {
	// "a" and "ab" share a common prefix; the DFA must still distinguish
	// which of A or AB actually matched at the end of each string.
	s := regex.NewSource("kw").Add("A", "a").Add("AB", "ab")
	dfa := compileSource(t, s)

	if _, name, ok := run(dfa, "a"); !ok || name != "A" {
		t.Fatalf("expected \"a\" to accept as A, got %q %v", name, ok)
	}
	if _, name, ok := run(dfa, "ab"); !ok || name != "AB" {
		t.Fatalf("expected \"ab\" to accept as AB, got %q %v", name, ok)
	}
}

func TestAlternationStarSuffix(t *testing.T) {
	s := regex.NewSource("suffix").Add("X", "(a|b)*abb")
	dfa := compileSource(t, s)

	for _, good := range []string{"abb", "aabb", "babb", "aaababb"} {
		if _, _, ok := run(dfa, good); !ok {
			t.Fatalf("expected %q to accept", good)
		}
	}
	for _, bad := range []string{"ab", "abbb", "", "a"} {
		if _, _, ok := run(dfa, bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestAlphabetIsEffectiveNotFullASCII(t *testing.T) {
	s := regex.NewSource("t").Add("INT", "[0-9]+")
	dfa := compileSource(t, s)
	if len(dfa.Alphabet) != 10 {
		t.Fatalf("expected the effective alphabet to be exactly the 10 digits, got %d bytes: %q", len(dfa.Alphabet), dfa.Alphabet)
	}
	for _, b := range dfa.Alphabet {
		if b < '0' || b > '9' {
			t.Fatalf("unexpected byte %q in effective alphabet", b)
		}
	}
}

func TestExpressionsEchoesNameToPattern(t *testing.T) {
	s := regex.NewSource("t").Add("INT", "[0-9]+").Add("ID", "[a-z]+")
	dfa := compileSource(t, s)
	if dfa.Expressions["INT"] != "[0-9]+" || dfa.Expressions["ID"] != "[a-z]+" {
		t.Fatalf("expected Expressions to echo name -> pattern, got %v", dfa.Expressions)
	}
}

func TestTotalDFAHasNoUndefinedTransitions(t *testing.T) {
	s := regex.NewSource("t").Add("A", "a")
	dfa := compileSource(t, s)
	for st := 0; st < dfa.NumStates; st++ {
		for b := 0; b < 256; b++ {
			dfa.Step(st, byte(b)) // must never panic or be missing
		}
	}
}

func TestShadowedExpressionIsReported(t *testing.T) {
	// IDENT is declared first and its language contains every string
	// KEYWORD matches, so KEYWORD can never win a tie and should be
	// reported shadowed.
	s := regex.NewSource("shadow").Add("IDENT", "[a-z]+").Add("KEYWORD", "if")
	dfa := compileSource(t, s)
	shadowed := dfa.Shadowed()
	found := false
	for _, name := range shadowed {
		if name == "KEYWORD" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected KEYWORD to be reported shadowed, got %v", shadowed)
	}
}

func TestExplicitDotIsConcatenationNotWildcard(t *testing.T) {
	// spec rule 7: '.' is an explicit concatenation operator, interchangeable
	// with implicit concatenation. "a.b" must mean literal "ab", not a
	// wildcard match-any-character between 'a' and 'b'.
	s := regex.NewSource("dot").Add("AB", "a.b")
	dfa := compileSource(t, s)

	if _, name, ok := run(dfa, "ab"); !ok || name != "AB" {
		t.Fatalf("expected \"ab\" to accept as AB, got %q %v", name, ok)
	}
	for _, bad := range []string{"axb", "a1b", "a.b", "ab "} {
		if _, _, ok := run(dfa, bad); ok {
			t.Fatalf("expected %q to be rejected (no wildcard semantics)", bad)
		}
	}
}

func TestCompileCollectsPatternErrors(t *testing.T) {
	s := regex.NewSource("bad").Add("A", "(").Add("B", "[")
	_, errs := Compile(s)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestMinimizationCollapsesEquivalentStates(t *testing.T) {
	// "a(b|c)" and its unminimized subset construction have redundant
	// states for the two branches of the union; after minimization the
	// DFA should still be small (well under the raw NFA state count).
	s := regex.NewSource("min").Add("X", "a(b|c)")
	dfa := compileSource(t, s)
	if dfa.NumStates > 5 {
		t.Fatalf("expected a compact minimized DFA, got %d states", dfa.NumStates)
	}
}
