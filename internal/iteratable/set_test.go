package iteratable

import "testing"

func TestUnionIsDestructive(t *testing.T) {
	a := NewSet(1, 2)
	b := NewSet(2, 3)
	a.Union(b)
	if a.Size() != 3 {
		t.Fatalf("expected size 3 after union, got %d", a.Size())
	}
	if !a.Contains(3) {
		t.Fatalf("expected union to pull in element from other set")
	}
	if b.Size() != 2 {
		t.Fatalf("union must not mutate its argument")
	}
}

func TestDifferenceIsPure(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(2)
	d := a.Difference(b)
	if d.Size() != 2 || !d.Contains(1) || !d.Contains(3) {
		t.Fatalf("unexpected difference result: %v", d.Values())
	}
	if a.Size() != 3 {
		t.Fatalf("difference must not mutate receiver")
	}
}

func TestIterationProtocol(t *testing.T) {
	s := NewSet("a", "b", "c")
	s.IterateOnce()
	seen := map[interface{}]bool{}
	for s.Next() {
		seen[s.Item()] = true
	}
	for _, v := range []string{"a", "b", "c"} {
		if !seen[v] {
			t.Errorf("expected to iterate over %q", v)
		}
	}
}

func TestEqualsAndCopy(t *testing.T) {
	a := NewSet(1, 2, 3)
	c := a.Copy()
	if !a.Equals(c) {
		t.Fatalf("copy should equal original")
	}
	c.Add(4)
	if a.Equals(c) {
		t.Fatalf("mutating the copy must not affect the original")
	}
}
