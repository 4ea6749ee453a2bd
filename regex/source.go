package regex

// Expression is one named pattern declared in a Source, in declaration
// order. Name identifies the token this pattern produces once compiled
// into a scanner; Pattern is its regular expression in infix form.
type Expression struct {
	Name    string
	Pattern string
}

// Source is an ordered set of named patterns to be compiled together into
// a single scanner. Declaration order is significant: when two patterns
// match the same input with equal length, the one declared earlier wins,
// per the usual "longest match, then first declared" scanner-generator
// convention.
type Source struct {
	Name        string
	Expressions []Expression
}

// NewSource creates an empty Source ready to be populated with Add.
func NewSource(name string) *Source {
	return &Source{Name: name}
}

// Add appends a named pattern. It does not validate; call Validate (or
// Compile, in package automaton) once all patterns are added.
func (s *Source) Add(name, pattern string) *Source {
	s.Expressions = append(s.Expressions, Expression{Name: name, Pattern: pattern})
	return s
}

// Validate checks every structural precondition that does not require
// compiling a pattern: no duplicate names and no empty patterns. An empty
// name is not rejected. Per-pattern syntax errors surface later, from
// compilePattern.
func (s *Source) Validate() []error {
	var errs []error
	seen := make(map[string]bool)
	for _, e := range s.Expressions {
		if e.Pattern == "" {
			errs = append(errs, newError(e.Name, EmptyPattern, -1, "pattern must not be empty"))
		}
		if seen[e.Name] {
			errs = append(errs, newError(e.Name, DuplicateName, -1, "token name declared more than once"))
		}
		seen[e.Name] = true
	}
	return errs
}

// Fragment pairs a compiled NFA fragment with the name of the expression
// it was compiled from.
type Fragment struct {
	Name string
	NFA  *NFA
}

// Compile runs the full per-pattern pipeline -- tokenize, expandIntervals,
// insertExplicitConcat, shunt, buildAST, compileThompson -- over every
// declared expression. It attempts every pattern and collects all errors
// rather than stopping at the first failure, so a caller sees every
// mistake in one pass.
func (s *Source) Compile() ([]Fragment, []error) {
	if errs := s.Validate(); len(errs) > 0 {
		return nil, errs
	}
	var frags []Fragment
	var errs []error
	for _, e := range s.Expressions {
		nfa, err := compilePattern(e.Name, e.Pattern)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		frags = append(frags, Fragment{Name: e.Name, NFA: nfa})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return frags, nil
}

func compilePattern(name, pattern string) (*NFA, error) {
	lexemes, err := tokenize(name, pattern)
	if err != nil {
		return nil, err
	}
	lexemes, err = expandIntervals(name, lexemes)
	if err != nil {
		return nil, err
	}
	lexemes = insertExplicitConcat(lexemes)
	postfix, err := shunt(name, lexemes)
	if err != nil {
		return nil, err
	}
	tree, err := buildAST(name, postfix)
	if err != nil {
		return nil, err
	}
	return compileThompson(tree), nil
}

// Merged is the union of every fragment in a Source, wired under one
// synthetic start state with an epsilon edge to each fragment's own
// start. Accept states are labeled by the name of the expression they
// accept, so a consumer (package automaton's subset construction) can
// recover which pattern matched.
type Merged struct {
	NFA    *NFA
	Accept map[int]string // fragment accept state -> expression name
}

// Merge combines fragments into a single NFA with one new start state,
// the standard way a scanner generator multiplexes several patterns into
// one automaton.
func Merge(fragments []Fragment) *Merged {
	n := newNFA()
	accept := make(map[int]string)
	start := n.newState()
	n.Start = start
	for _, f := range fragments {
		offset := n.NumStates
		importFragment(n, f.NFA, offset)
		n.addEpsilon(start, f.NFA.Start+offset)
		accept[f.NFA.Accept+offset] = f.Name
	}
	return &Merged{NFA: n, Accept: accept}
}

// importFragment copies src's states, transitions and epsilon edges into
// dst, shifting every state index by offset so the two arenas don't
// collide.
func importFragment(dst, src *NFA, offset int) {
	for i := 0; i < src.NumStates; i++ {
		dst.newState()
	}
	for from, byTrans := range src.Trans {
		for b, tos := range byTrans {
			for _, to := range tos {
				dst.addTrans(from+offset, b, to+offset)
			}
		}
	}
	for from, tos := range src.Epsilon {
		for _, to := range tos {
			dst.addEpsilon(from+offset, to+offset)
		}
	}
}
