/*
Package automaton turns the merged NFA fragments produced by package regex
into a single deterministic, total, minimal automaton.

The pipeline is:

	*regex.Merged
	    -> subset construction  (epsilon-closure, reachable DFA states)
	    -> totalization          (explicit sink state, every (state, byte)
	                              pair defined)
	    -> Hopcroft minimization (partition refinement to a minimal DFA)

The result is a DFA value: an immutable artifact describing states,
transitions and accepting labels, meant to be consumed by a scanner
generator living outside this module.
*/
package automaton

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'spag.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("spag.automaton")
}
