package automaton

import "sort"

// effectiveAlphabet is the union of every byte that labels a transition
// anywhere in the reachable (pre-total) DFA, per spec §4.4: totalization's
// alphabet is derived from the DFA that was actually built, not the full
// static character set the regex package supports.
func effectiveAlphabet(transitions map[int]map[byte]int) []byte {
	seen := make(map[byte]bool)
	for _, row := range transitions {
		for b := range row {
			seen[b] = true
		}
	}
	out := make([]byte, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// totalize adds an explicit sink state and fills in every undefined
// (state, byte) transition to point at it, so the resulting automaton has
// a transition defined for every pair of the effective alphabet. The sink
// itself loops to itself on every byte and accepts nothing, matching the
// original construction's totalization step.
func totalize(r *subsetResult) *subsetResult {
	sink := r.numStates
	total := make(map[int]map[byte]int, r.numStates+1)
	alphabet := effectiveAlphabet(r.transitions)

	for s := 0; s < r.numStates; s++ {
		row := make(map[byte]int, len(alphabet))
		existing := r.transitions[s]
		for _, b := range alphabet {
			if existing != nil {
				if to, ok := existing[b]; ok {
					row[b] = to
					continue
				}
			}
			row[b] = sink
		}
		total[s] = row
	}
	sinkRow := make(map[byte]int, len(alphabet))
	for _, b := range alphabet {
		sinkRow[b] = sink
	}
	total[sink] = sinkRow

	tracer().Debugf("totalized %d states to %d states with sink %d", r.numStates, r.numStates+1, sink)
	return &subsetResult{
		numStates:   r.numStates + 1,
		start:       r.start,
		transitions: total,
		accepting:   r.accepting,
		sink:        sink,
		alphabet:    alphabet,
	}
}
