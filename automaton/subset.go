package automaton

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"

	"github.com/go-spag/spag/internal/iteratable"
	"github.com/go-spag/spag/regex"
)

// dstate is one state of the subset-constructed DFA: the set of NFA
// states it represents (as a canonical sorted key, for deduplication) and
// its serial ID in the new automaton.
type dstate struct {
	id  int
	key string // canonical string of sorted NFA state indices, for deduplication
	set []int
}

func stateComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*dstate).id, b.(*dstate).id)
}

// closure computes the epsilon-closure of a set of NFA states, using the
// destructive Set container the same way epsilon-closure and partition
// computations are built on it elsewhere in this corpus: start with the
// seed states, then repeatedly union in epsilon-reachable neighbors until
// a fixpoint.
func closure(n *regex.NFA, states []int) []int {
	seen := iteratable.NewSet()
	for _, s := range states {
		seen.Add(s)
	}
	seen.IterateOnce()
	for seen.Next() {
		s := seen.Item().(int)
		for _, next := range n.Epsilon[s] {
			seen.Add(next)
		}
	}
	out := make([]int, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(int))
	}
	sort.Ints(out)
	return out
}

func closureKey(set []int) string {
	sorted := slices.Clone(set)
	slices.Sort(sorted)
	key := make([]byte, 0, len(sorted)*5)
	for i, s := range sorted {
		if i > 0 {
			key = append(key, ',')
		}
		key = append(key, []byte(itoa(s))...)
	}
	return string(key)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// subsetResult is the raw output of subset construction, before
// totalization or minimization: a DFA-shaped structure that may still
// have gaps in its transition function.
type subsetResult struct {
	numStates   int
	start       int
	sink        int // -1 until totalize assigns a real sink state
	alphabet    []byte // nil until totalize computes the effective alphabet
	transitions map[int]map[byte]int
	accepting   map[int]string
}

// buildSubsets runs the classical subset construction (also called the
// powerset construction) over a merged NFA: each DFA state is the
// epsilon-closure of a set of NFA states, reached by following every byte
// that labels an NFA transition out of a member of a state already
// discovered, via a worklist.
// This mirrors the reachable-state worklist idiom used elsewhere in this
// corpus for building a characteristic finite state machine: a treeset
// keyed by serial ID holds states still to be expanded.
func buildSubsets(merged *regex.Merged) *subsetResult {
	n := merged.NFA
	states := make(map[string]*dstate)
	order := []*dstate{}
	newState := func(nfaSet []int) (*dstate, bool) {
		key := closureKey(nfaSet)
		if ds, ok := states[key]; ok {
			return ds, false
		}
		ds := &dstate{id: len(order), key: key, set: nfaSet}
		states[key] = ds
		order = append(order, ds)
		return ds, true
	}

	startSet := closure(n, []int{n.Start})
	start, _ := newState(startSet)

	worklist := treeset.NewWith(stateComparator)
	worklist.Add(start)

	transitions := make(map[int]map[byte]int)
	accepting := make(map[int]string)
	declRank := declarationOrder(merged)

	markAccept := func(ds *dstate) {
		// Declaration order matters: when several NFA accept states
		// land in the same DFA state, the one for the expression
		// declared earliest wins, exactly as scanner generators
		// resolve ties between same-length matches.
		best := -1
		for _, nfaState := range ds.set {
			if name, ok := merged.Accept[nfaState]; ok {
				if idx := declRank[name]; best == -1 || idx < best {
					best = idx
					accepting[ds.id] = name
				}
			}
		}
	}
	markAccept(start)

	for worklist.Size() > 0 {
		vals := worklist.Values()
		cur := vals[0].(*dstate)
		worklist.Remove(cur)

		byByte := make(map[byte][]int)
		for _, nfaState := range cur.set {
			for b, tos := range n.Trans[nfaState] {
				byByte[b] = append(byByte[b], tos...)
			}
		}
		for b, tos := range byByte {
			target := closure(n, tos)
			if len(target) == 0 {
				continue
			}
			ds, isNew := newState(target)
			if _, seen := transitions[cur.id]; !seen {
				transitions[cur.id] = make(map[byte]int)
			}
			transitions[cur.id][b] = ds.id
			if isNew {
				markAccept(ds)
				worklist.Add(ds)
			}
		}
	}

	tracer().Debugf("subset construction produced %d states", len(order))
	return &subsetResult{
		numStates:   len(order),
		start:       start.id,
		sink:        -1,
		transitions: transitions,
		accepting:   accepting,
	}
}

// declarationOrder maps each expression name accepted anywhere in merged
// to its declaration-order rank. Accept is keyed by NFA state, not
// declaration order, but Merge assigns each fragment's states a
// contiguous, increasing block, so walking accept states in ascending
// order and deduplicating recovers declaration order.
func declarationOrder(merged *regex.Merged) map[string]int {
	keys := make([]int, 0, len(merged.Accept))
	for k := range merged.Accept {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	rank := make(map[string]int)
	next := 0
	for _, k := range keys {
		name := merged.Accept[k]
		if _, ok := rank[name]; !ok {
			rank[name] = next
			next++
		}
	}
	return rank
}
