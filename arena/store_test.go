// SPDX-License-Identifier: MIT
package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MachineryHealth/cytoscape-sub002/arena"
)

type rec struct {
	a, b int
}

func TestStore_GetBeyondCapacityIsAbsent(t *testing.T) {
	s := arena.New[rec](2)
	_, ok := s.Get(0)
	assert.False(t, ok)
	_, ok = s.Get(1_000_000)
	assert.False(t, ok)
	_, ok = s.Get(-1)
	assert.False(t, ok)
	assert.Nil(t, s.At(5))
	assert.Equal(t, 2, s.Cap())
}

func TestStore_DeleteBeyondCapacityDoesNotGrow(t *testing.T) {
	s := arena.New[rec](0)
	assert.False(t, s.Delete(40))
	assert.Equal(t, 0, s.Cap())
}

func TestStore_GrowthPolicyAndPreservation(t *testing.T) {
	s := arena.New[rec](0)
	require.True(t, s.Put(0, rec{1, 2}))
	assert.Equal(t, 1, s.Cap()) // max(2*0+1, 1)

	require.True(t, s.Put(1, rec{3, 4}))
	assert.Equal(t, 3, s.Cap()) // max(2*1+1, 2)

	require.True(t, s.Put(20, rec{5, 6}))
	assert.Equal(t, 21, s.Cap()) // max(7, 21)

	require.False(t, s.Put(7, rec{7, 8}))
	assert.Equal(t, 21, s.Cap())

	for h, want := range map[int]rec{0: {1, 2}, 1: {3, 4}, 7: {7, 8}, 20: {5, 6}} {
		got, ok := s.Get(h)
		require.True(t, ok, "handle %d", h)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 4, s.Len())
}

func TestStore_AtMutatesInPlace(t *testing.T) {
	s := arena.New[rec](4)
	s.Put(2, rec{})
	p := s.At(2)
	require.NotNil(t, p)
	p.a = 9
	got, _ := s.Get(2)
	assert.Equal(t, 9, got.a)
}

func TestStore_ZeroRecordIsPresent(t *testing.T) {
	s := arena.New[rec](1)
	s.Put(0, rec{})
	assert.True(t, s.Has(0))
	assert.True(t, s.Delete(0))
	assert.False(t, s.Has(0))
	assert.Equal(t, 0, s.Len())
}

func TestStore_ResetAndClone(t *testing.T) {
	s := arena.New[rec](0)
	s.Put(3, rec{1, 1})
	c := s.Clone()

	s.Reset()
	assert.False(t, s.Has(3))
	assert.Equal(t, 4, s.Cap())

	got, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, rec{1, 1}, got)
	assert.Equal(t, 1, c.Len())
}
