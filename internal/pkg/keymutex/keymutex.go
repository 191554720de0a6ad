// Package keymutex provides a mutex keyed by string, used to serialize
// order-creation critical sections per product and cancellations per order id
// without blocking unrelated keys.
package keymutex

import "sync"

type entry struct {
	mu      sync.Mutex
	holders int
}

// KeyedMutex is a set of named mutexes. Locking one key never blocks callers
// holding or waiting on a different key. An entry exists only while its key
// is held or contended; the last Unlock frees it, so the tracked key set does
// not grow with the number of keys ever locked.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// NewKeyedMutex creates an empty KeyedMutex ready for use.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the mutex for the given key, creating it if needed.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.holders++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for the given key and drops the key's entry when
// no other caller holds or awaits it.
// Unlocking a key that was never locked panics, as with sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keymutex: unlock of unlocked key " + key)
	}
	e.holders--
	if e.holders == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
