// Package bag contains a multiset that keeps one count per distinct item in a hashmap.HashMap.
package bag

import (
	"fmt"
	"iter"

	"github.com/sharedcode/dstruct"
	"github.com/sharedcode/dstruct/hashmap"
)

// Bag is an unordered collection that allows duplicates. Not safe for concurrent use.
type Bag[T comparable] struct {
	counts *hashmap.HashMap[T, int]
	size   int
}

// New creates a bag holding items. It fails with ErrUnhashableKey when T has no canonical key
// bytes.
func New[T comparable](items ...T) (*Bag[T], error) {
	counts, err := hashmap.New[T, int](hashmap.DefaultOptions())
	if err != nil {
		return nil, err
	}
	b := &Bag[T]{counts: counts}
	for _, item := range items {
		b.Add(item)
	}
	return b, nil
}

// Add puts one occurrence of item in the bag.
func (b *Bag[T]) Add(item T) {
	b.counts.Set(item, b.counts.GetOrDefault(item, 0)+1)
	b.size++
}

// Remove takes one occurrence of item out of the bag, or returns ErrNotFound.
func (b *Bag[T]) Remove(item T) error {
	n := b.counts.GetOrDefault(item, 0)
	if n == 0 {
		return dstruct.NewError(dstruct.NotFound, dstruct.ErrNotFound, item)
	}
	if n == 1 {
		_ = b.counts.Delete(item)
	} else {
		b.counts.Set(item, n-1)
	}
	b.size--
	return nil
}

// Count returns the number of occurrences of item.
func (b *Bag[T]) Count(item T) int {
	return b.counts.GetOrDefault(item, 0)
}

// Contains reports whether item occurs at least once.
func (b *Bag[T]) Contains(item T) bool {
	return b.counts.Contains(item)
}

// Len returns the total number of occurrences.
func (b *Bag[T]) Len() int {
	return b.size
}

// DistinctItems returns each item once, in unspecified order.
func (b *Bag[T]) DistinctItems() []T {
	r := make([]T, 0, b.counts.Len())
	for k := range b.counts.Keys() {
		r = append(r, k)
	}
	return r
}

// All iterates the distinct items with their counts.
func (b *Bag[T]) All() iter.Seq2[T, int] {
	return b.counts.All()
}

// Clear empties the bag.
func (b *Bag[T]) Clear() {
	b.counts.Clear()
	b.size = 0
}

func (b *Bag[T]) String() string {
	return fmt.Sprintf("bag%v", b.counts)
}
