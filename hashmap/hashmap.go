// Package hashmap contains a separate-chaining hash map. The bucket table is an array.Array and
// each bucket is a linkedlist.List of key/value entries.
//
// A HashMap is not safe for concurrent use; see SyncMap.
package hashmap

import (
	"fmt"
	"iter"
	log "log/slog"
	"math"
	"reflect"
	"strings"

	"github.com/sharedcode/dstruct"
	"github.com/sharedcode/dstruct/array"
	"github.com/sharedcode/dstruct/encoding"
	"github.com/sharedcode/dstruct/linkedlist"
)

type entry[K comparable, V any] struct {
	key   K
	value V
	// hash is kept so that a resize only recomputes the bucket index.
	hash uint64
}

// HashMap maps keys to values. Lookups, inserts and deletes are O(1) amortized given a well
// distributed hash function.
type HashMap[K comparable, V any] struct {
	buckets    *array.Array[*linkedlist.List[entry[K, V]]]
	size       int
	loadFactor float64
	hasher     HashFunc[K]
}

// New creates an empty map hashed with DefaultHash. It fails with ErrUnhashableKey when K has no
// canonical key bytes (see encoding.Supports); use NewWithHasher for such key types.
func New[K comparable, V any](options Options) (*HashMap[K, V], error) {
	if !encoding.Supports(reflect.TypeFor[K]()) {
		return nil, dstruct.NewError(dstruct.UnhashableKey, dstruct.ErrUnhashableKey, reflect.TypeFor[K]().String())
	}
	return NewWithHasher[K, V](options, DefaultHash[K]())
}

// NewWithHasher creates an empty map hashed with hasher.
func NewWithHasher[K comparable, V any](options Options, hasher HashFunc[K]) (*HashMap[K, V], error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if hasher == nil {
		return nil, dstruct.NewError(dstruct.InvalidArgument, dstruct.ErrInvalidArgument, "nil hash function")
	}
	return &HashMap[K, V]{
		buckets:    newBuckets[K, V](options.BucketCount),
		loadFactor: options.LoadFactor,
		hasher:     hasher,
	}, nil
}

// NewWithMarshaler creates an empty map hashed with MarshalerHash(marshaler). It fails with
// ErrUnhashableKey when marshaler cannot encode the zero K, which rejects key types holding
// channels or functions up front. Keys that fail only for some values (a NaN float under JSON)
// still make MarshalerHash panic.
func NewWithMarshaler[K comparable, V any](options Options, marshaler encoding.Marshaler) (*HashMap[K, V], error) {
	if marshaler == nil {
		return nil, dstruct.NewError(dstruct.InvalidArgument, dstruct.ErrInvalidArgument, "nil marshaler")
	}
	var zero K
	if _, err := encoding.Marshal(marshaler, zero); err != nil {
		return nil, dstruct.NewError(dstruct.UnhashableKey, fmt.Errorf("%w: %w", dstruct.ErrUnhashableKey, err), reflect.TypeFor[K]().String())
	}
	return NewWithHasher[K, V](options, MarshalerHash[K](marshaler))
}

// FromPairs creates a map hashed with DefaultHash and sets every pair in order.
func FromPairs[K comparable, V any](options Options, pairs ...dstruct.KeyValuePair[K, V]) (*HashMap[K, V], error) {
	m, err := New[K, V](options)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m, nil
}

func newBuckets[K comparable, V any](n int) *array.Array[*linkedlist.List[entry[K, V]]] {
	return array.Make(n, func(int) *linkedlist.List[entry[K, V]] {
		return linkedlist.NewFunc(func(a, b entry[K, V]) bool { return a.key == b.key })
	})
}

// Len returns the number of keys.
func (m *HashMap[K, V]) Len() int {
	return m.size
}

// Capacity returns the number of buckets.
func (m *HashMap[K, V]) Capacity() int {
	return m.buckets.Len()
}

// LoadFactor returns the resize threshold.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (m *HashMap[K, V]) Get(key K) (V, error) {
	e, ok := m.bucketOf(m.hasher(key)).FindFunc(matchKey[V](key))
	if !ok {
		var zero V
		return zero, keyNotFound(key)
	}
	return e.value, nil
}

// GetOrDefault returns the value stored for key, or def when key is absent.
func (m *HashMap[K, V]) GetOrDefault(key K, def V) V {
	if e, ok := m.bucketOf(m.hasher(key)).FindFunc(matchKey[V](key)); ok {
		return e.value
	}
	return def
}

// Set stores value for key. An existing entry is updated in place; otherwise a new entry is
// appended to the key's bucket and, once counted, the load factor is checked and the map grows
// if it is exceeded.
func (m *HashMap[K, V]) Set(key K, value V) {
	h := m.hasher(key)
	b := m.bucketOf(h)
	if b.UpdateFunc(matchKey[V](key), func(e entry[K, V]) entry[K, V] {
		e.value = value
		return e
	}) {
		return
	}
	b.Append(entry[K, V]{key: key, value: value, hash: h})
	m.size++
	m.growIfNeeded()
}

// Delete removes key, or returns ErrKeyNotFound.
func (m *HashMap[K, V]) Delete(key K) error {
	if _, ok := m.bucketOf(m.hasher(key)).RemoveFunc(matchKey[V](key)); !ok {
		return keyNotFound(key)
	}
	m.size--
	return nil
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.bucketOf(m.hasher(key)).FindFunc(matchKey[V](key))
	return ok
}

// Clear removes every entry, keeping the current capacity.
func (m *HashMap[K, V]) Clear() {
	m.buckets = newBuckets[K, V](m.buckets.Len())
	m.size = 0
}

// All iterates key/value pairs in bucket order, then chain order. The order is stable between
// mutations but otherwise unspecified.
//
// Example:
//
//	for k, v := range m.All() {
//		// do something
//	}
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.buckets.All() {
			for e := range b.All() {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys iterates the keys in the order of All.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the values in the order of All.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Items returns the entries in the order of All.
func (m *HashMap[K, V]) Items() []dstruct.KeyValuePair[K, V] {
	r := make([]dstruct.KeyValuePair[K, V], 0, m.size)
	for k, v := range m.All() {
		r = append(r, dstruct.KeyValuePair[K, V]{Key: k, Value: v})
	}
	return r
}

// Filter iterates the entries for which pred returns true.
func (m *HashMap[K, V]) Filter(pred func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.All() {
			if pred(k, v) && !yield(k, v) {
				return
			}
		}
	}
}

func (m *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal reports whether a and b hold the same keys mapped to equal values.
func Equal[K, V comparable](a, b *HashMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K comparable, V any](a, b *HashMap[K, V], eq func(x, y V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		w, err := b.Get(k)
		if err != nil || !eq(v, w) {
			return false
		}
	}
	return true
}

func (m *HashMap[K, V]) bucketOf(h uint64) *linkedlist.List[entry[K, V]] {
	b, _ := m.buckets.Get(int(h % uint64(m.buckets.Len())))
	return b
}

// growIfNeeded doubles the capacity until size/capacity is within the load factor, then moves
// every entry to a freshly allocated bucket table. The old table stays in place until the new one
// is complete.
func (m *HashMap[K, V]) growIfNeeded() {
	capacity := m.buckets.Len()
	newCapacity := capacity
	for float64(m.size)/float64(newCapacity) > m.loadFactor && newCapacity <= math.MaxInt/2 {
		newCapacity *= 2
	}
	if newCapacity == capacity {
		return
	}
	buckets := newBuckets[K, V](newCapacity)
	for _, b := range m.buckets.All() {
		for e := range b.All() {
			nb, _ := buckets.Get(int(e.hash % uint64(newCapacity)))
			nb.Append(e)
		}
	}
	m.buckets = buckets
	log.Debug("hashmap resized", "from", capacity, "to", newCapacity, "size", m.size)
}

func matchKey[V any, K comparable](key K) func(entry[K, V]) bool {
	return func(e entry[K, V]) bool {
		return e.key == key
	}
}

func keyNotFound(key any) error {
	return dstruct.NewError(dstruct.NotFound, dstruct.ErrKeyNotFound, key)
}
