package singleton

import (
	"sync"
	"sync/atomic"
)

// EnumSingleton is built once while the package initializes and lives until
// the process exits. It carries a single mutable value.
type EnumSingleton struct {
	mu    sync.RWMutex
	value string
}

// Value returns the stored value.
func (e *EnumSingleton) Value() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

// SetValue replaces the stored value.
func (e *EnumSingleton) SetValue(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
}

var (
	enumConstructions atomic.Int64

	enumInstance = newEnumSingleton()
)

func newEnumSingleton() *EnumSingleton {
	enumConstructions.Add(1)
	return &EnumSingleton{}
}

// EnumInstance returns the instance created at package initialization.
func EnumInstance() *EnumSingleton {
	return enumInstance
}

// EnumConstructions returns how many EnumSingleton values were built.
func EnumConstructions() int64 {
	return enumConstructions.Load()
}
