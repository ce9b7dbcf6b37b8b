package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/creational/internal/registry"
)

func TestRegistry_SetGet(t *testing.T) {
	r := registry.New[string, int]()

	_, ok := r.Get("missing")
	assert.False(t, ok)

	replaced := r.Set("a", 1)
	assert.False(t, replaced)

	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"a"}, r.Keys())
}

func TestRegistry_OverwriteLastWriterWins(t *testing.T) {
	r := registry.New[int, string]()

	r.Set(1, "first")
	replaced := r.Set(1, "second")

	assert.True(t, replaced)
	v, _ := r.Get(1)
	assert.Equal(t, "second", v)
	assert.Len(t, r.Keys(), 1, "overwrite must not accumulate entries")
}

func TestRegistry_KeysSorted(t *testing.T) {
	r := registry.New[int, struct{}]()
	for _, k := range []int{3, 1, 2} {
		r.Set(k, struct{}{})
	}

	assert.Equal(t, []int{1, 2, 3}, r.Keys())
}

func TestRegistry_ThreadSafety(t *testing.T) {
	r := registry.New[string, int]()

	const goroutines = 50
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for j := range iterations {
				r.Set(fmt.Sprintf("key-%d", j%10), id)
			}
		}(i)

		go func() {
			defer wg.Done()
			for j := range iterations {
				r.Get(fmt.Sprintf("key-%d", j%10))
				r.Keys()
			}
		}()
	}

	wg.Wait()
	assert.Len(t, r.Keys(), 10)
}
