package phpserde

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapInsertionOrder(t *testing.T) {
	m := newMap()
	m.put(String("b"), Int(1))
	m.put(String("a"), Int(2))
	m.put(Int(0), Int(3))

	require.Equal(t, 3, m.Len())

	var keys []Value
	for key := range m.All() {
		keys = append(keys, key)
	}
	require.Equal(t, []Value{String("b"), String("a"), Int(0)}, keys)
}

func TestMapOverwriteKeepsPosition(t *testing.T) {
	m := newMap()
	m.put(String("a"), Int(1))
	m.put(String("b"), Int(2))
	m.put(String("a"), Int(3))

	require.Equal(t, 2, m.Len())

	key, value := m.At(0)
	require.Equal(t, String("a"), key)
	require.Equal(t, Int(3), value)

	value, ok := m.Get(String("a"))
	require.True(t, ok)
	require.Equal(t, Int(3), value)
}

func TestMapGetMissing(t *testing.T) {
	m := newMap()
	m.put(String("a"), Int(1))

	_, ok := m.Get(String("b"))
	require.False(t, ok)

	// keys of different kinds never collide
	_, ok = m.Get(Int(0))
	require.False(t, ok)
}

func TestMapZeroValue(t *testing.T) {
	var m Map
	require.Equal(t, 0, m.Len())

	for range m.All() {
		t.Fatal("zero map must be empty")
	}
}

func TestMapAllStopsEarly(t *testing.T) {
	m := newMap()
	m.put(Int(0), String("a"))
	m.put(Int(1), String("b"))

	var seen int
	for range m.All() {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}
