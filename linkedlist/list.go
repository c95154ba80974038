// Package linkedlist contains a generic doubly linked list whose nodes live in a slot arena, and a
// stack built on top of it.
package linkedlist

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/sharedcode/dstruct"
)

// nilIndex marks the absence of a node (end of chain, empty list, end of free list). Slot 0 of the
// arena is reserved for it, so the zero List is a valid empty list.
const nilIndex = 0

// node represents an element in the doubly linked list. prev and next are slot indices.
type node[T any] struct {
	data T
	prev int
	next int
}

// List is a doubly linked list. Nodes are stored in a slice and linked by index; vacated slots
// are kept on a free list and reused by later inserts, so links never dangle.
//
// The zero value is an empty list ready to use. It matches values with reflect.DeepEqual.
type List[T any] struct {
	nodes []node[T]
	free  int
	head  int
	tail  int
	size  int
	equal func(a, b T) bool
}

// New creates an empty list that matches values with ==.
func New[T comparable]() *List[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc creates an empty list that matches values with equal.
func NewFunc[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// FromSlice creates a list holding values in order.
func FromSlice[T comparable](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nilIndex
}

// Append adds item at the tail.
func (l *List[T]) Append(item T) {
	l.linkAfter(l.tail, item)
}

// Prepend adds item at the head.
func (l *List[T]) Prepend(item T) {
	l.linkBefore(l.head, item)
}

// InsertBefore adds item right before the first node equal to target.
func (l *List[T]) InsertBefore(target, item T) error {
	i := l.index(target)
	if i == nilIndex {
		return notFound(target)
	}
	l.linkBefore(i, item)
	return nil
}

// InsertAfter adds item right after the first node equal to target.
func (l *List[T]) InsertAfter(target, item T) error {
	i := l.index(target)
	if i == nilIndex {
		return notFound(target)
	}
	l.linkAfter(i, item)
	return nil
}

// Remove deletes the first node equal to item.
func (l *List[T]) Remove(item T) error {
	i := l.index(item)
	if i == nilIndex {
		return notFound(item)
	}
	l.unlink(i)
	return nil
}

// RemoveAll deletes every node equal to item and returns how many were removed.
func (l *List[T]) RemoveAll(item T) int {
	removed := 0
	for i := l.head; i != nilIndex; {
		next := l.nodes[i].next
		if l.eq(l.nodes[i].data, item) {
			l.unlink(i)
			removed++
		}
		i = next
	}
	return removed
}

// Pop removes and returns the tail data.
func (l *List[T]) Pop() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, empty("pop")
	}
	return l.unlink(l.tail), nil
}

// PopFront removes and returns the head data.
func (l *List[T]) PopFront() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, empty("pop front")
	}
	return l.unlink(l.head), nil
}

// Front returns the head data without removing it.
func (l *List[T]) Front() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, empty("front")
	}
	return l.nodes[l.head].data, nil
}

// Back returns the tail data without removing it.
func (l *List[T]) Back() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, empty("back")
	}
	return l.nodes[l.tail].data, nil
}

// Contains reports whether some node equals item.
func (l *List[T]) Contains(item T) bool {
	return l.index(item) != nilIndex
}

// FindFunc returns the data of the first node satisfying match.
func (l *List[T]) FindFunc(match func(T) bool) (T, bool) {
	if i := l.indexFunc(match); i != nilIndex {
		return l.nodes[i].data, true
	}
	var zero T
	return zero, false
}

// UpdateFunc replaces, in place, the data of the first node satisfying match with update(data).
// Returns false when no node matches.
func (l *List[T]) UpdateFunc(match func(T) bool, update func(T) T) bool {
	i := l.indexFunc(match)
	if i == nilIndex {
		return false
	}
	l.nodes[i].data = update(l.nodes[i].data)
	return true
}

// RemoveFunc deletes the first node satisfying match and returns its data.
func (l *List[T]) RemoveFunc(match func(T) bool) (T, bool) {
	i := l.indexFunc(match)
	if i == nilIndex {
		var zero T
		return zero, false
	}
	return l.unlink(i), true
}

// Clear removes all nodes and releases the arena.
func (l *List[T]) Clear() {
	l.nodes = nil
	l.free = nilIndex
	l.head = nilIndex
	l.tail = nilIndex
	l.size = 0
}

// All iterates the data from head to tail. Each call starts a new traversal.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != nilIndex; i = l.nodes[i].next {
			if !yield(l.nodes[i].data) {
				return
			}
		}
	}
}

// Backward iterates the data from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != nilIndex; i = l.nodes[i].prev {
			if !yield(l.nodes[i].data) {
				return
			}
		}
	}
}

// Reversed returns a new list holding the data in tail to head order.
func (l *List[T]) Reversed() *List[T] {
	r := NewFunc(l.equal)
	for v := range l.Backward() {
		r.Append(v)
	}
	return r
}

// Values returns the data from head to tail.
func (l *List[T]) Values() []T {
	r := make([]T, 0, l.size)
	for v := range l.All() {
		r = append(r, v)
	}
	return r
}

// Equal reports whether other has the same length and pairwise equal data in traversal order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.size != other.size {
		return false
	}
	j := other.head
	for i := l.head; i != nilIndex; i = l.nodes[i].next {
		if !l.eq(l.nodes[i].data, other.nodes[j].data) {
			return false
		}
		j = other.nodes[j].next
	}
	return true
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := l.head; i != nilIndex; i = l.nodes[i].next {
		if i != l.head {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.nodes[i].data)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) index(item T) int {
	return l.indexFunc(func(v T) bool { return l.eq(v, item) })
}

func (l *List[T]) eq(a, b T) bool {
	if l.equal == nil {
		return reflect.DeepEqual(a, b)
	}
	return l.equal(a, b)
}

func (l *List[T]) indexFunc(match func(T) bool) int {
	for i := l.head; i != nilIndex; i = l.nodes[i].next {
		if match(l.nodes[i].data) {
			return i
		}
	}
	return nilIndex
}

// alloc takes a slot from the free list, or grows the arena.
func (l *List[T]) alloc(data T, prev, next int) int {
	n := node[T]{data: data, prev: prev, next: next}
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{})
	}
	if l.free != nilIndex {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = n
		return i
	}
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// linkAfter splices a new node after slot at; at == nilIndex means the list is empty.
func (l *List[T]) linkAfter(at int, data T) {
	if at == nilIndex {
		i := l.alloc(data, nilIndex, nilIndex)
		l.head, l.tail = i, i
		l.size++
		return
	}
	next := l.nodes[at].next
	i := l.alloc(data, at, next)
	l.nodes[at].next = i
	if next != nilIndex {
		l.nodes[next].prev = i
	} else {
		l.tail = i
	}
	l.size++
}

// linkBefore splices a new node before slot at; at == nilIndex means the list is empty.
func (l *List[T]) linkBefore(at int, data T) {
	if at == nilIndex {
		l.linkAfter(nilIndex, data)
		return
	}
	prev := l.nodes[at].prev
	i := l.alloc(data, prev, at)
	l.nodes[at].prev = i
	if prev != nilIndex {
		l.nodes[prev].next = i
	} else {
		l.head = i
	}
	l.size++
}

// unlink unchains slot i, pushes it on the free list and returns its data.
func (l *List[T]) unlink(i int) T {
	n := l.nodes[i]
	if n.prev != nilIndex {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilIndex {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.nodes[i] = node[T]{prev: nilIndex, next: l.free}
	l.free = i
	l.size--
	return n.data
}

func notFound(v any) error {
	return dstruct.NewError(dstruct.NotFound, dstruct.ErrNotFound, v)
}

func empty(op string) error {
	return dstruct.NewError(dstruct.EmptyContainer, dstruct.ErrEmpty, op)
}
