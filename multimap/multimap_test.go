package multimap

import (
	"testing"
)

func TestPutAndGet(t *testing.T) {
	m := New[string, int]()

	m.Put("a", 1)
	m.Put("a", 2)
	m.Put("b", 3)

	vals, found := m.Get("a")
	if !found {
		t.Fatal("Get(a) found = false, want true")
	}
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
		t.Errorf("Get(a) = %v, want [1 2]", vals)
	}

	vals, found = m.Get("b")
	if !found {
		t.Fatal("Get(b) found = false, want true")
	}
	if len(vals) != 1 || vals[0] != 3 {
		t.Errorf("Get(b) = %v, want [3]", vals)
	}
}

func TestGetAbsentKey(t *testing.T) {
	m := New[string, int]()

	vals, found := m.Get("missing")
	if found {
		t.Error("Get(missing) found = true, want false")
	}
	if vals != nil {
		t.Errorf("Get(missing) = %v, want nil", vals)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)

	vals, _ := m.Get("a")
	vals[0] = 99

	again, _ := m.Get("a")
	if again[0] != 1 {
		t.Errorf("internal state mutated through Get result: got %d, want 1", again[0])
	}
}

func TestDuplicateValues(t *testing.T) {
	m := New[string, string]()
	m.Put("k", "v")
	m.Put("k", "v")

	vals, _ := m.Get("k")
	if len(vals) != 2 {
		t.Errorf("len = %d, want 2 (duplicates stored separately)", len(vals))
	}
}

func TestRemoveFirstMatch(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)
	m.Put("a", 1)

	removed := m.Remove("a", func(v int) bool { return v == 1 })
	if !removed {
		t.Fatal("Remove = false, want true")
	}

	vals, _ := m.Get("a")
	if len(vals) != 2 || vals[0] != 2 || vals[1] != 1 {
		t.Errorf("Get(a) after Remove = %v, want [2 1]", vals)
	}
}

func TestRemoveNoOps(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)

	if m.Remove("missing", func(int) bool { return true }) {
		t.Error("Remove on unknown key = true, want false")
	}
	if m.Remove("a", func(v int) bool { return v == 99 }) {
		t.Error("Remove with no matching value = true, want false")
	}

	vals, _ := m.Get("a")
	if len(vals) != 1 {
		t.Errorf("len = %d, want 1 (no-op removes must not mutate)", len(vals))
	}
}

func TestRemoveAll(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("a", 2)

	m.RemoveAll("a")

	if _, found := m.Get("a"); found {
		t.Error("Get after RemoveAll found = true, want false")
	}
	if m.ContainsKey("a") {
		t.Error("ContainsKey after RemoveAll = true, want false")
	}
}

func TestLenAndEmpty(t *testing.T) {
	m := New[string, int]()

	if !m.Empty() {
		t.Error("new multimap Empty = false, want true")
	}
	if m.Len() != 0 {
		t.Errorf("new multimap Len = %d, want 0", m.Len())
	}

	m.Put("a", 1)
	m.Put("a", 2)
	m.Put("b", 3)

	if m.Empty() {
		t.Error("Empty = true, want false")
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
}

func TestKeys(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	keys := m.Keys()
	if len(keys) != 2 {
		t.Fatalf("len(Keys) = %d, want 2", len(keys))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("Keys = %v, want a and b", keys)
	}
}

func TestClear(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)

	m.Clear()

	if !m.Empty() {
		t.Error("Empty after Clear = false, want true")
	}
	if _, found := m.Get("a"); found {
		t.Error("Get after Clear found = true, want false")
	}
}
