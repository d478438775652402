package errz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/mobilert/debug"
)

func TestRuntimeErrorContext(t *testing.T) {
	err := Errorf("bad input: %d", 42)
	assert.Equal(t, err.Error(), "bad input: 42")

	err.AddContext("at forward (net.py:10:4)")
	err.AddContext("") // ignored
	err.AddContext("at relu (net.py:3:1)")

	assert.Len(t, err.Context(), 2)
	assert.Equal(t, err.Error(), "bad input: 42\nat forward (net.py:10:4)\nat relu (net.py:3:1)")
	assert.Equal(t, err.Message(), "bad input: 42")
}

func TestRuntimeErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := New("wrapper").WithCause(cause)
	assert.True(t, errors.Is(err, cause))

	var runtimeErr *RuntimeError
	assert.True(t, errors.As(err, &runtimeErr))
}

func TestBackendErrorHandles(t *testing.T) {
	err := NewBackendError("delegate failed", 1, 2)
	err.PushDebugHandle(3)
	assert.Equal(t, err.DebugHandles(), []debug.Handle{1, 2, 3})
	assert.Equal(t, err.Message(), "delegate failed")

	err.AddContext("")
	assert.Len(t, err.Context(), 0)
	err.AddContext("symbolicated")
	assert.Equal(t, err.Error(), "delegate failed\nsymbolicated")
}

func TestBackendErrorAs(t *testing.T) {
	var err error = BackendErrorf("code %d", 7)
	var backendErr *BackendError
	assert.True(t, errors.As(err, &backendErr))

	// A BackendError is not a RuntimeError: dispatch is by concrete type.
	var runtimeErr *RuntimeError
	assert.False(t, errors.As(err, &runtimeErr))
}
