// Package multimap provides a mapping from keys to ordered collections
// of values.
//
// Each key may be associated with multiple values. Values for a key keep
// their insertion order, and duplicates are stored separately rather than
// collapsed. Lookup distinguishes "key never used" from "key present":
//
//	values, found := m.Get(key)
//	if !found {
//	    // key was never Put
//	}
package multimap

// MultiMap maps keys to ordered collections of values.
// The zero value is not usable; create instances with New.
type MultiMap[K comparable, V any] struct {
	entries map[K][]V
}

// New creates an empty multimap.
func New[K comparable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{
		entries: make(map[K][]V),
	}
}

// Put appends value to the collection for key, creating the collection
// on first use. Duplicate values for the same key are allowed.
func (m *MultiMap[K, V]) Put(key K, value V) {
	m.entries[key] = append(m.entries[key], value)
}

// Get returns the values for key in insertion order.
// found is false if the key was never used; callers must check it before
// iterating. The returned slice is a copy, so later mutation of the map
// does not affect it and vice versa.
func (m *MultiMap[K, V]) Get(key K) (values []V, found bool) {
	vals, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]V, len(vals))
	copy(out, vals)
	return out, true
}

// Remove removes the first value for key that satisfies match.
// It returns true if a value was removed. Unknown keys and non-matching
// values are silent no-ops.
func (m *MultiMap[K, V]) Remove(key K, match func(V) bool) bool {
	vals, ok := m.entries[key]
	if !ok {
		return false
	}
	for i, v := range vals {
		if match(v) {
			m.entries[key] = append(vals[:i], vals[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAll removes every value for key, including the key itself.
func (m *MultiMap[K, V]) RemoveAll(key K) {
	delete(m.entries, key)
}

// ContainsKey returns true if key has ever been Put and not fully removed.
func (m *MultiMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Keys returns all keys in unspecified order.
func (m *MultiMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the total number of key/value pairs.
func (m *MultiMap[K, V]) Len() int {
	n := 0
	for _, vals := range m.entries {
		n += len(vals)
	}
	return n
}

// Empty returns true if the multimap holds no pairs.
func (m *MultiMap[K, V]) Empty() bool {
	return len(m.entries) == 0
}

// Clear removes all keys and values.
func (m *MultiMap[K, V]) Clear() {
	m.entries = make(map[K][]V)
}
