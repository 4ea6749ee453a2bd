package automaton

import "github.com/go-spag/spag/regex"

// Compile builds a total, minimal DFA from every pattern declared in
// source. It attempts every pattern regardless of earlier failures and
// collects every regex.PatternError encountered, so a caller sees every
// mistake in a source in one pass rather than one at a time. On success
// it returns a DFA and a nil error slice.
func Compile(source *regex.Source) (*DFA, []error) {
	fragments, errs := source.Compile()
	if len(errs) > 0 {
		return nil, errs
	}

	merged := regex.Merge(fragments)
	subsets := buildSubsets(merged)
	total := totalize(subsets)
	min := minimize(total)

	expressions := make(map[string]string, len(source.Expressions))
	order := make([]string, len(source.Expressions))
	for i, e := range source.Expressions {
		expressions[e.Name] = e.Pattern
		order[i] = e.Name
	}

	dfa := &DFA{
		Name:        source.Name,
		Expressions: expressions,
		order:       order,
		NumStates:   min.numStates,
		Start:       min.start,
		Sink:        min.sink,
		Alphabet:    min.alphabet,
		Accepting:   min.accepting,
		Transitions: min.transitions,
	}
	return dfa, nil
}
