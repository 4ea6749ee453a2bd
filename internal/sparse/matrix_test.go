package sparse

import "testing"

func TestSetAndValues(t *testing.T) {
	m := NewMatrix(3, 3)
	m.Set(1, 1, 42)
	if got := m.Values(1, 1); len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected [42], got %v", got)
	}
	if got := m.Values(0, 0); got != nil {
		t.Fatalf("expected nil for unset cell, got %v", got)
	}
}

func TestAddAccumulatesConflicts(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Add(0, 0, 1)
	m.Add(0, 0, 2)
	m.Add(0, 0, 2) // duplicate, must not double up
	got := m.Values(0, 0)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestOutOfOrderInsertion(t *testing.T) {
	m := NewMatrix(5, 5)
	m.Set(3, 0, 30)
	m.Set(1, 0, 10)
	m.Set(2, 0, 20)
	if v := m.Values(1, 0); len(v) != 1 || v[0] != 10 {
		t.Fatalf("row 1 corrupted: %v", v)
	}
	if v := m.Values(2, 0); len(v) != 1 || v[0] != 20 {
		t.Fatalf("row 2 corrupted: %v", v)
	}
	if v := m.Values(3, 0); len(v) != 1 || v[0] != 30 {
		t.Fatalf("row 3 corrupted: %v", v)
	}
	if m.CellCount() != 3 {
		t.Fatalf("expected 3 cells, got %d", m.CellCount())
	}
}
