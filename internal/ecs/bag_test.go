package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Bag_AddReturnsIndex(t *testing.T) {
	// Arrange
	b := NewBag[string](0)

	// Act
	idx := b.Add("a")

	// Assert
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, b.Size())
	assert.Equal(t, "a", b.Get(0))
}

func Test_Bag_SetGrowsBackingArray(t *testing.T) {
	// Arrange
	b := NewBag[int](0)

	// Act
	b.Set(5, 42)

	// Assert
	assert.Equal(t, 6, b.Size())
	assert.Equal(t, 42, b.Get(5))
	assert.Equal(t, 0, b.Get(0))
}

func Test_Bag_GetPtr_MutatesInPlace(t *testing.T) {
	// Arrange
	b := NewBag[int](1)
	b.Add(1)

	// Act
	*b.GetPtr(0) = 99

	// Assert
	assert.Equal(t, 99, b.Get(0))
}

func Test_Bag_RemoveAt_SwapsLastIntoHole(t *testing.T) {
	// Arrange
	b := NewBag[string](3)
	b.Add("a")
	b.Add("b")
	b.Add("c")

	// Act
	moved, didMove := b.RemoveAt(0)

	// Assert
	assert.True(t, didMove)
	assert.Equal(t, "c", moved)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, "c", b.Get(0))
	assert.Equal(t, "b", b.Get(1))
}

func Test_Bag_RemoveAt_LastElement_NoSwap(t *testing.T) {
	// Arrange
	b := NewBag[string](2)
	b.Add("a")
	b.Add("b")

	// Act
	moved, didMove := b.RemoveAt(1)

	// Assert
	assert.False(t, didMove)
	assert.Equal(t, "", moved)
	assert.Equal(t, 1, b.Size())
}

func Test_Bag_Iter_VisitsInIndexOrder(t *testing.T) {
	// Arrange
	b := NewBag[int](0)
	b.Add(10)
	b.Add(20)
	b.Add(30)

	// Act
	var seen []int
	b.Iter(func(i int, v int) { seen = append(seen, v) })

	// Assert
	assert.Equal(t, []int{10, 20, 30}, seen)
}
