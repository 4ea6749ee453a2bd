package automaton

import "github.com/go-spag/spag/internal/sparse"

// DFA is an immutable, total, minimal deterministic finite automaton
// compiled from a set of named regular expressions. State 0 is always the
// start state. Sink is the identity of the (possibly synthetic) dead
// state every undefined transition leads to.
type DFA struct {
	Name string
	// Expressions echoes the declared token name -> pattern text map.
	Expressions map[string]string
	// order preserves declaration order for Shadowed's output; a map has
	// none of its own.
	order       []string
	NumStates   int
	Start       int
	Sink        int
	// Alphabet is the union of bytes that actually appear on a
	// transition anywhere in the reachable DFA, the effective alphabet
	// totalization filled every (state, byte) pair of.
	Alphabet []byte
	// Accepting maps an accepting state to the name of the expression it
	// accepts. A state not present is non-accepting.
	Accepting map[int]string
	// Transitions[s][b] is the unique next state for state s on byte b.
	// Every (state, byte) pair is defined once the DFA is total.
	Transitions map[int]map[byte]int
}

// Step returns the state reached from s on byte b. Callers never see an
// undefined transition: a total DFA always has an entry, falling back to
// Sink if none was recorded explicitly.
func (d *DFA) Step(s int, b byte) int {
	if row, ok := d.Transitions[s]; ok {
		if to, ok := row[b]; ok {
			return to
		}
	}
	return d.Sink
}

// IsAccepting reports whether s is an accepting state, and if so, which
// expression it accepts.
func (d *DFA) IsAccepting(s int) (string, bool) {
	name, ok := d.Accepting[s]
	return name, ok
}

// Shadowed returns the names of expressions declared in Expressions that
// have no accepting state of their own in the minimized DFA -- i.e. their
// language is a subset of an earlier-declared expression's language, so
// every string they match is already claimed by a pattern declared
// earlier and they can never win the scanner's match. This is a
// diagnostic, not an error: the DFA is still returned.
func (d *DFA) Shadowed() []string {
	live := make(map[string]bool)
	for _, name := range d.Accepting {
		live[name] = true
	}
	var shadowed []string
	for _, name := range d.order {
		if !live[name] {
			shadowed = append(shadowed, name)
		}
	}
	return shadowed
}

// Table renders the DFA's transition function as a sparse matrix, rows
// indexed by state and columns by byte value, each cell holding the
// single destination state. This is the shape a generated scanner would
// actually load at runtime.
func (d *DFA) Table() *sparse.Matrix {
	m := sparse.NewMatrix(d.NumStates, 256)
	for s, row := range d.Transitions {
		for b, to := range row {
			m.Set(s, int(b), int32(to))
		}
	}
	return m
}
