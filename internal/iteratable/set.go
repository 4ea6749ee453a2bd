package iteratable

// Set is a general purpose set of comparable values with a stable
// insertion order, supporting a stateful iteration protocol
// (IterateOnce/Next/Item) alongside the usual set algebra.
type Set struct {
	elems  map[interface{}]struct{}
	order  []interface{}
	iterAt int
	iterOn bool
}

// NewSet creates an empty set, optionally pre-populated with items.
func NewSet(items ...interface{}) *Set {
	s := &Set{elems: make(map[interface{}]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item into the set, if not already present, and returns the
// receiver so calls may be chained.
func (s *Set) Add(item interface{}) *Set {
	if _, ok := s.elems[item]; !ok {
		s.elems[item] = struct{}{}
		s.order = append(s.order, item)
	}
	return s
}

// Remove deletes item from the set, if present.
func (s *Set) Remove(item interface{}) *Set {
	if _, ok := s.elems[item]; !ok {
		return s
	}
	delete(s.elems, item)
	for i, v := range s.order {
		if v == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s
}

// Contains reports whether item is a member of the set.
func (s *Set) Contains(item interface{}) bool {
	_, ok := s.elems[item]
	return ok
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return len(s.elems)
}

// Empty reports whether the set has no elements.
func (s *Set) Empty() bool {
	return len(s.elems) == 0
}

// Values returns a snapshot slice of the set's elements in insertion order.
func (s *Set) Values() []interface{} {
	out := make([]interface{}, len(s.order))
	copy(out, s.order)
	return out
}

// Copy returns a shallow copy of the set.
func (s *Set) Copy() *Set {
	c := NewSet()
	c.elems = make(map[interface{}]struct{}, len(s.elems))
	c.order = make([]interface{}, len(s.order))
	copy(c.order, s.order)
	for k := range s.elems {
		c.elems[k] = struct{}{}
	}
	return c
}

// Equals reports whether s and other contain exactly the same elements.
func (s *Set) Equals(other *Set) bool {
	if other == nil || len(s.elems) != len(other.elems) {
		return false
	}
	for k := range s.elems {
		if _, ok := other.elems[k]; !ok {
			return false
		}
	}
	return true
}

// Union destructively adds every element of other into s and returns s.
func (s *Set) Union(other *Set) *Set {
	for _, v := range other.order {
		s.Add(v)
	}
	return s
}

// Difference returns a new set holding the elements of s absent from other.
// Non-destructive: neither s nor other is modified.
func (s *Set) Difference(other *Set) *Set {
	d := NewSet()
	for _, v := range s.order {
		if !other.Contains(v) {
			d.Add(v)
		}
	}
	return d
}

// Intersect returns a new set holding the elements present in both s and
// other. Non-destructive.
func (s *Set) Intersect(other *Set) *Set {
	d := NewSet()
	for _, v := range s.order {
		if other.Contains(v) {
			d.Add(v)
		}
	}
	return d
}

// IterateOnce resets the stateful iteration cursor to just before the first
// element.
func (s *Set) IterateOnce() {
	s.iterAt = -1
	s.iterOn = true
}

// Next advances the iteration cursor, returning false once exhausted.
func (s *Set) Next() bool {
	if !s.iterOn {
		s.IterateOnce()
	}
	s.iterAt++
	return s.iterAt < len(s.order)
}

// Item returns the element at the current iteration cursor, or nil if
// Next has not been called or iteration is exhausted.
func (s *Set) Item() interface{} {
	if !s.iterOn || s.iterAt < 0 || s.iterAt >= len(s.order) {
		return nil
	}
	return s.order[s.iterAt]
}
