package hashmap

import (
	"sync"

	"github.com/sharedcode/dstruct"
)

// SyncMap wraps a HashMap with a read/write mutex to provide thread-safe operations.
// Every call holds the lock for its whole duration, including any resize it triggers.
type SyncMap[K comparable, V any] struct {
	m      *HashMap[K, V]
	locker *sync.RWMutex
}

// NewSynchronized returns a thread-safe map guarding m. m must not be used directly afterwards.
func NewSynchronized[K comparable, V any](m *HashMap[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{
		m:      m,
		locker: &sync.RWMutex{},
	}
}

func (sm *SyncMap[K, V]) Get(key K) (V, error) {
	sm.locker.RLock()
	defer sm.locker.RUnlock()
	return sm.m.Get(key)
}

func (sm *SyncMap[K, V]) Set(key K, value V) {
	sm.locker.Lock()
	sm.m.Set(key, value)
	sm.locker.Unlock()
}

func (sm *SyncMap[K, V]) Delete(key K) error {
	sm.locker.Lock()
	defer sm.locker.Unlock()
	return sm.m.Delete(key)
}

func (sm *SyncMap[K, V]) Contains(key K) bool {
	sm.locker.RLock()
	defer sm.locker.RUnlock()
	return sm.m.Contains(key)
}

func (sm *SyncMap[K, V]) Len() int {
	sm.locker.RLock()
	defer sm.locker.RUnlock()
	return sm.m.Len()
}

// Update sets key to fn(current, found) atomically.
func (sm *SyncMap[K, V]) Update(key K, fn func(current V, found bool) V) {
	sm.locker.Lock()
	defer sm.locker.Unlock()
	v, err := sm.m.Get(key)
	sm.m.Set(key, fn(v, err == nil))
}

// Items returns a snapshot of the entries.
func (sm *SyncMap[K, V]) Items() []dstruct.KeyValuePair[K, V] {
	sm.locker.RLock()
	defer sm.locker.RUnlock()
	return sm.m.Items()
}

func (sm *SyncMap[K, V]) Clear() {
	sm.locker.Lock()
	sm.m.Clear()
	sm.locker.Unlock()
}
