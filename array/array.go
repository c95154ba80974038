// Package array contains a generic dynamic array with bounds-checked access.
// It is the bucket table of the hash map and is usable on its own.
package array

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/sharedcode/dstruct"
)

// Cloner is implemented by element types that copy themselves when an array is built or sliced.
// Other element types holding pointers, slices, maps or interfaces are deep copied by reflection.
type Cloner[T any] interface {
	Clone() T
}

// Array is a contiguous, index-addressable, resizable sequence.
// Len is the logical length, Cap the physical capacity of the backing storage.
type Array[T any] struct {
	items []T
}

// New creates an array holding a copy of values. The array never aliases the caller's slice.
func New[T any](values ...T) *Array[T] {
	a := &Array[T]{}
	if len(values) > 0 {
		a.items = make([]T, len(values))
		copyItems(a.items, values)
	}
	return a
}

// Make creates an array of logical length n. When fill is not nil, slot i is initialized with fill(i).
func Make[T any](n int, fill func(i int) T) *Array[T] {
	if n < 0 {
		n = 0
	}
	a := &Array[T]{items: make([]T, n)}
	if fill != nil {
		for i := range a.items {
			a.items[i] = fill(i)
		}
	}
	return a
}

// Len returns the logical length.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap returns the physical capacity.
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.items[i], nil
}

// Set writes v at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.items[i] = v
	return nil
}

// Append adds v at the end. Capacity grows geometrically so the amortized cost is O(1).
func (a *Array[T]) Append(v T) {
	a.items = append(a.items, v)
}

// AppendFront adds v at the front, shifting every element right by one.
func (a *Array[T]) AppendFront(v T) {
	var zero T
	a.items = append(a.items, zero)
	copy(a.items[1:], a.items[:len(a.items)-1])
	a.items[0] = v
}

// Pop removes and returns the last element.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	n := len(a.items)
	if n == 0 {
		return zero, dstruct.NewError(dstruct.IndexOutOfRange, dstruct.ErrIndexOutOfRange, "pop from empty array")
	}
	v := a.items[n-1]
	a.items[n-1] = zero
	a.items = a.items[:n-1]
	return v, nil
}

// PopFront removes and returns the first element.
func (a *Array[T]) PopFront() (T, error) {
	var zero T
	if len(a.items) == 0 {
		return zero, dstruct.NewError(dstruct.IndexOutOfRange, dstruct.ErrIndexOutOfRange, "pop from empty array")
	}
	v := a.items[0]
	a.remove(0)
	return v, nil
}

// DeleteAt removes the element at index i, shifting the following elements left by one.
func (a *Array[T]) DeleteAt(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.remove(i)
	return nil
}

// Slice returns a new, independent array with the elements in [start, end).
func (a *Array[T]) Slice(start, end int) (*Array[T], error) {
	if start < 0 || end > len(a.items) || start > end {
		return nil, dstruct.NewError(dstruct.IndexOutOfRange, dstruct.ErrIndexOutOfRange, fmt.Sprintf("[%d:%d]", start, end))
	}
	return New(a.items[start:end]...), nil
}

// Clear removes all elements and releases the backing storage.
func (a *Array[T]) Clear() {
	a.items = nil
}

// Values returns a copy of the logical sequence.
func (a *Array[T]) Values() []T {
	r := make([]T, len(a.items))
	copyItems(r, a.items)
	return r
}

// All iterates index/element pairs from front to back.
//
// Example:
//
//	for i, v := range a.All() {
//		// do something
//	}
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(a.items); i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Backward iterates index/element pairs from back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.items) - 1; i >= 0; i-- {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (a *Array[T]) IndexFunc(f func(T) bool) int {
	for i := range a.items {
		if f(a.items[i]) {
			return i
		}
	}
	return -1
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range a.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a.items[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Contains reports whether v is present in a.
func Contains[T comparable](a *Array[T], v T) bool {
	return a.IndexFunc(func(x T) bool { return x == v }) >= 0
}

// Equal reports whether a and b have the same length and pairwise equal elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.items {
		if !eq(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= len(a.items) {
		return dstruct.NewError(dstruct.IndexOutOfRange, dstruct.ErrIndexOutOfRange, i)
	}
	return nil
}

func (a *Array[T]) remove(i int) {
	var zero T
	copy(a.items[i:], a.items[i+1:])
	a.items[len(a.items)-1] = zero
	a.items = a.items[:len(a.items)-1]
}

// copyItems copies src into dst without sharing storage: Cloner elements are cloned, elements
// holding references are deep copied and plain values are assigned.
func copyItems[T any](dst, src []T) {
	deep := holdsReferences(reflect.TypeFor[T]())
	for i := range src {
		if c, ok := any(src[i]).(Cloner[T]); ok {
			dst[i] = c.Clone()
			continue
		}
		if deep {
			dst[i] = deepCopy(src[i])
			continue
		}
		dst[i] = src[i]
	}
}
