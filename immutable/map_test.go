package immutable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_MutationFails(t *testing.T) {
	m := WrapMap(map[string]int{"a": 1, "b": 2})

	require.ErrorIs(t, m.Put("c", 3), ErrUnsupportedMutation)
	require.ErrorIs(t, m.Delete("a"), ErrUnsupportedMutation)

	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestMap_KeysDeterministic(t *testing.T) {
	m := WrapMap(map[string]int{"zeta": 1, "alpha": 2, "mid": 3})

	for i := 0; i < 10; i++ {
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, m.Keys())
	}
}

func TestMap_RangeFollowsKeyOrder(t *testing.T) {
	m := WrapMap(map[string]int{"b": 2, "a": 1})

	var order []string
	m.Range(func(k string, _ int) bool {
		order = append(order, k)
		return true
	})

	assert.Equal(t, []string{"a", "b"}, order)
}

func TestMap_StringDeterministic(t *testing.T) {
	m := WrapMap(map[string]int{"b": 2, "a": 1})

	for i := 0; i < 10; i++ {
		assert.Equal(t, "map[a:1 b:2]", m.String())
	}
}

func TestMapEqual(t *testing.T) {
	assert.True(t, MapEqual(WrapMap(map[string]int{"a": 1}), WrapMap(map[string]int{"a": 1})))
	assert.False(t, MapEqual(WrapMap(map[string]int{"a": 1}), WrapMap(map[string]int{"a": 2})))
	assert.False(t, MapEqual(WrapMap(map[string]int{"a": 1}), WrapMap(map[string]int{})))
}

func TestMapEqual_NonComparableValues(t *testing.T) {
	// Slice values are not comparable; equality must still work by content.
	a := WrapMap(map[string][]int{"a": {1, 2}})
	b := WrapMap(map[string][]int{"a": {1, 2}})
	c := WrapMap(map[string][]int{"a": {3}})

	assert.True(t, MapEqual(a, b))
	assert.False(t, MapEqual(a, c))
	assert.False(t, MapEqual(a, WrapMap(map[string][]int{"b": {1, 2}})))
}

func TestConstructionError_Message(t *testing.T) {
	err := NewConstructionError("Customer", "nickname", "unknown property")
	assert.EqualError(t, err, `immutable: constructing Customer: property "nickname": unknown property`)
}
