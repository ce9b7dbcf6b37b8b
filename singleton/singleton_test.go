package singleton_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/creational/internal/testutil"
	"github.com/junioryono/creational/singleton"
)

const concurrentCallers = 64

func TestLazy(t *testing.T) {
	t.Run("constructs on first Get", func(t *testing.T) {
		var calls atomic.Int32
		lazy := singleton.NewLazy(func() *struct{ n int } {
			calls.Add(1)
			return &struct{ n int }{n: 1}
		})

		assert.False(t, lazy.Initialized())
		assert.Zero(t, calls.Load())

		first := lazy.Get()
		assert.True(t, lazy.Initialized())
		assert.Same(t, first, lazy.Get())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("concurrent first access", func(t *testing.T) {
		var calls atomic.Int32
		lazy := singleton.NewLazy(func() *int {
			calls.Add(1)
			v := 0
			return &v
		})

		results := testutil.Concurrently(t, concurrentCallers, lazy.Get)

		assert.Equal(t, int32(1), calls.Load())
		testutil.AssertAllSame(t, results)
	})
}

func TestLazyInstance(t *testing.T) {
	results := testutil.Concurrently(t, concurrentCallers, singleton.LazyInstance)

	require.NotNil(t, results[0])
	testutil.AssertAllSame(t, results)
	assert.Equal(t, int64(1), singleton.LazyConstructions())
	assert.Equal(t, int64(1), singleton.LazyInstance().Seq())
}

func TestHolder(t *testing.T) {
	t.Run("defers construction", func(t *testing.T) {
		var calls atomic.Int32
		h := singleton.NewHolder(func() string {
			calls.Add(1)
			return "held"
		})

		assert.Zero(t, calls.Load())
		assert.Equal(t, "held", h.Get())
		assert.Equal(t, "held", h.Get())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("concurrent first access", func(t *testing.T) {
		var calls atomic.Int32
		h := singleton.NewHolder(func() *int {
			calls.Add(1)
			return new(int)
		})

		results := testutil.Concurrently(t, concurrentCallers, h.Get)

		assert.Equal(t, int32(1), calls.Load())
		testutil.AssertAllSame(t, results)
	})
}

func TestHolderInstance(t *testing.T) {
	assert.Zero(t, singleton.HolderConstructions(), "not built during package initialization")

	results := testutil.Concurrently(t, concurrentCallers, singleton.HolderInstance)

	testutil.AssertAllSame(t, results)
	assert.Equal(t, int64(1), singleton.HolderConstructions())
	assert.Equal(t, int64(1), singleton.HolderInstance().Seq())
}

func TestEnumInstance(t *testing.T) {
	assert.Equal(t, int64(1), singleton.EnumConstructions(), "built during package initialization")

	results := testutil.Concurrently(t, concurrentCallers, singleton.EnumInstance)
	testutil.AssertAllSame(t, results)
	assert.Equal(t, int64(1), singleton.EnumConstructions())

	first := singleton.EnumInstance()
	second := singleton.EnumInstance()
	first.SetValue("first")
	assert.Equal(t, "first", second.Value())
}
