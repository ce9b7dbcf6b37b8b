package singleton

import (
	"sync"
	"sync/atomic"
)

// Holder defers construction until the first call to Get. The initializer runs
// at most once and fully completes before any caller observes the value.
type Holder[T any] struct {
	get func() T
}

// NewHolder returns a Holder that builds its value with fn on first access.
func NewHolder[T any](fn func() T) Holder[T] {
	return Holder[T]{get: sync.OnceValue(fn)}
}

// Get returns the held value.
func (h Holder[T]) Get() T {
	return h.get()
}

// Held is the object shared through HolderInstance.
type Held struct {
	seq int64
}

// Seq returns the construction sequence number of the instance.
func (h *Held) Seq() int64 {
	return h.seq
}

var (
	holderConstructions atomic.Int64

	holder = NewHolder(func() *Held {
		return &Held{seq: holderConstructions.Add(1)}
	})
)

// HolderInstance returns the shared Held value. Loading the package does not
// construct it; the first call does.
func HolderInstance() *Held {
	return holder.Get()
}

// HolderConstructions returns how many times the HolderInstance initializer ran.
func HolderConstructions() int64 {
	return holderConstructions.Load()
}
