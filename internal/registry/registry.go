// Package registry provides a thread-safe keyed store used by factories to
// hold their creators.
package registry

import (
	"cmp"
	"slices"
	"sync"
)

// Registry maps keys to values. Writes overwrite any previous entry for the
// same key; there is no conflict detection.
type Registry[K cmp.Ordered, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty Registry.
func New[K cmp.Ordered, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Set stores value under key, replacing any previous entry.
// It reports whether an entry was replaced.
//
// This method is goroutine-safe.
func (r *Registry[K, V]) Set(key K, value V) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.entries[key]
	r.entries[key] = value
	return replaced
}

// Get retrieves the value stored under key.
//
// This method is goroutine-safe.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[key]
	return value, ok
}

// Keys returns the registered keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.Sort(keys)
	return keys
}
