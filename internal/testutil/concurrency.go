package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Concurrently calls fn from n goroutines released at the same moment and
// returns every result in goroutine order.
func Concurrently[T any](t *testing.T, n int, fn func() T) []T {
	t.Helper()

	results := make([]T, n)
	start := make(chan struct{})

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			<-start
			results[i] = fn()
			return nil
		})
	}

	close(start)
	require.NoError(t, g.Wait())
	return results
}
