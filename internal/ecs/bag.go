package ecs

// Bag is a dense, index-addressable growable array that does not preserve
// order on removal: RemoveAt swaps the removed slot with the last element
// and pops, the same O(1) technique the teacher's SparseSet uses to keep
// its dense array compact (storage/sparse_set.go Remove). Not thread-safe —
// per spec.md §5 this runtime has no internal locking.
type Bag[T any] struct {
	items []T
}

// NewBag returns an empty Bag with the given initial capacity hint.
func NewBag[T any](capacity int) *Bag[T] {
	return &Bag[T]{items: make([]T, 0, capacity)}
}

// Add appends t and returns its index.
func (b *Bag[T]) Add(t T) int {
	b.items = append(b.items, t)
	return len(b.items) - 1
}

// Set writes t at index i, growing the backing array (by repeated 1.75x
// steps until it holds i+1 elements) if i is beyond the current length.
func (b *Bag[T]) Set(i int, t T) {
	b.growTo(i + 1)
	b.items[i] = t
}

func (b *Bag[T]) growTo(n int) {
	if n <= len(b.items) {
		return
	}
	newCap := cap(b.items)
	if newCap == 0 {
		newCap = n
	}
	for newCap < n {
		newCap = newCap + newCap*3/4 + 1 // 1.75x growth
	}
	if newCap > cap(b.items) {
		grown := make([]T, len(b.items), newCap)
		copy(grown, b.items)
		b.items = grown
	}
	b.items = b.items[:n]
}

// Get returns the value at index i.
func (b *Bag[T]) Get(i int) T {
	return b.items[i]
}

// GetPtr returns a pointer to the slot at index i, for in-place mutation.
func (b *Bag[T]) GetPtr(i int) *T {
	return &b.items[i]
}

// RemoveAt removes the element at index i by moving the last element into
// its place, then shrinking by one. Does not preserve order. Returns the
// element that was moved into slot i, and false if i was already the last
// slot (nothing moved).
func (b *Bag[T]) RemoveAt(i int) (moved T, didMove bool) {
	last := len(b.items) - 1
	if i != last {
		b.items[i] = b.items[last]
		moved, didMove = b.items[i], true
	}
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	return moved, didMove
}

// Size returns the number of elements currently held.
func (b *Bag[T]) Size() int {
	return len(b.items)
}

// Iter calls f once per element in index order.
func (b *Bag[T]) Iter(f func(i int, t T)) {
	for i, t := range b.items {
		f(i, t)
	}
}
