package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/creational"
)

// AssertBuildsKind checks that build succeeds and yields a vehicle of kind key
func AssertBuildsKind(t *testing.T, build func(creational.TypeKey) (creational.Vehicle, error), key creational.TypeKey) creational.Vehicle {
	t.Helper()
	v, err := build(key)
	require.NoError(t, err, "failed to build %s", key)
	require.NotNil(t, v, "built vehicle is nil")
	assert.Equal(t, key, v.Kind())
	return v
}

// AssertUnregistered checks that build fails because key has no registry entry
func AssertUnregistered(t *testing.T, build func(creational.TypeKey) (creational.Vehicle, error), key creational.TypeKey) creational.UnregisteredTypeKeyError {
	t.Helper()
	v, err := build(key)
	assert.Nil(t, v)
	assert.True(t, creational.IsUnregistered(err), "expected unregistered error, got: %v", err)
	return AssertErrorType[creational.UnregisteredTypeKeyError](t, err)
}

// AssertPanicsWithError checks if a function panics with specific error
func AssertPanicsWithError(t *testing.T, expectedError error, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			assert.Fail(t, "function did not panic", msgAndArgs...)
			return
		}

		err, ok := r.(error)
		if !ok {
			assert.Fail(t, "panic value is not an error: %v", r)
			return
		}

		assert.ErrorIs(t, err, expectedError, msgAndArgs...)
	}()
	f()
}

// AssertAllSame verifies every element is the same instance as the first
func AssertAllSame[T any](t *testing.T, instances []T, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotEmpty(t, instances)
	for _, instance := range instances {
		assert.Same(t, instances[0], instance, msgAndArgs...)
	}
}

// AssertDifferentInstances verifies two vehicles are independently constructed
func AssertDifferentInstances(t *testing.T, first, second creational.Vehicle) {
	t.Helper()
	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID(), second.ID())
}

// AssertErrorType checks if an error is of a specific type
func AssertErrorType[T error](t *testing.T, err error, msgAndArgs ...interface{}) T {
	t.Helper()
	var target T
	assert.ErrorAs(t, err, &target, msgAndArgs...)
	return target
}
