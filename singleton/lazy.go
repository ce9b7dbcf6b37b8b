// Package singleton provides three ways to guarantee a single shared instance:
//
//   - Lazy: a one-time gate created explicitly, constructing on first Get.
//   - Holder: a deferred value whose initializer runs on first access.
//   - Enum: a package-level value constructed during package initialization.
//
// None of the variants can be reset once initialized.
package singleton

import (
	"sync"
	"sync/atomic"
)

// Lazy constructs a value on the first call to Get and returns the same value
// on every later call. Concurrent first calls block until the single
// construction completes; the write happens before any Get returns.
type Lazy[T any] struct {
	once  sync.Once
	newFn func() T
	value T
	done  atomic.Bool
}

// NewLazy returns an uninitialized Lazy that will construct its value with fn.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{newFn: fn}
}

// Get returns the instance, constructing it first if needed.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.newFn()
		l.newFn = nil
		l.done.Store(true)
	})
	return l.value
}

// Initialized reports whether the instance has been constructed.
func (l *Lazy[T]) Initialized() bool {
	return l.done.Load()
}

// Instance is the lazily created shared object.
type Instance struct {
	createdAt int64
}

// Seq returns the construction sequence number of the instance.
func (i *Instance) Seq() int64 {
	return i.createdAt
}

var (
	lazyConstructions atomic.Int64

	lazyInstance = NewLazy(func() *Instance {
		return &Instance{createdAt: lazyConstructions.Add(1)}
	})
)

// LazyInstance returns the shared Instance, creating it on the first call.
func LazyInstance() *Instance {
	return lazyInstance.Get()
}

// LazyConstructions returns how many times the LazyInstance constructor ran.
func LazyConstructions() int64 {
	return lazyConstructions.Load()
}
