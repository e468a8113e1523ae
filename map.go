package phpserde

import (
	"iter"

	"jsouthworth.net/go/immutable/vector"
)

type entry struct {
	key   Value
	value Value
}

// Map is an insertion-ordered mapping from Value to Value. It backs both
// [Array] and [Object] and preserves the order in which pairs appeared in the
// input. Assigning to an existing key replaces the value but keeps the key's
// original position, matching PHP array assignment.
//
// The entry store is a persistent vector, so aliased containers produced via
// back-references share structure instead of copying it.
type Map struct {
	store *vector.Vector
	index map[Value]int
}

func newMap() Map {
	return Map{
		store: vector.Empty(),
		index: map[Value]int{},
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m.store == nil {
		return 0
	}
	return m.store.Length()
}

// Get returns the value stored under key and whether the key is present.
// Primitive keys compare by value, container keys by identity.
func (m *Map) Get(key Value) (Value, bool) {
	pos, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.store.At(pos).(entry).value, true
}

// At returns the key/value pair at the given position in insertion order.
// It panics if pos is out of bounds.
func (m *Map) At(pos int) (Value, Value) {
	e := m.store.At(pos).(entry)
	return e.key, e.value
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for i := 0; i < m.Len(); i++ {
			e := m.store.At(i).(entry)
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// put inserts or replaces a pair. Only the decoder writes to a Map; once a
// parse returns, its containers are never mutated again.
func (m *Map) put(key, value Value) {
	if pos, ok := m.index[key]; ok {
		m.store = m.store.Assoc(pos, entry{key: key, value: value})
		return
	}
	m.index[key] = m.store.Length()
	m.store = m.store.Append(entry{key: key, value: value})
}
