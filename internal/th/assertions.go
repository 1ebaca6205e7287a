// Package th provides basic test helpers.
package th

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ExpectValue[A any](t *testing.T, actual A, expected A) {
	t.Helper()
	assert.Equal(t, expected, actual)
}

func ExpectSlice[A any](t *testing.T, actual []A, expected []A) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return // nil and empty slices are the same thing here
	}
	assert.Equal(t, expected, actual)
}

// ExpectSameElements checks that two slices contain the same elements, ignoring order.
func ExpectSameElements[A any](t *testing.T, actual []A, expected []A) {
	t.Helper()
	assert.ElementsMatch(t, expected, actual)
}

func ExpectError(t *testing.T, err error, message string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, message, err.Error())
	}
}

func ExpectErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	assert.ErrorIs(t, err, target)
}

func ExpectNoError(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}

func ExpectNotHang(t *testing.T, waitFor time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})

	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Errorf("test hanged")
	}
}
