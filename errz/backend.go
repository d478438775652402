package errz

import (
	"fmt"

	"github.com/deepnoodle-ai/mobilert/debug"
)

// BackendError signals a failure inside a delegated backend sub-runtime. As
// the error propagates up through nested method calls, each invocation layer
// pushes its own debug handle, so the accumulated list traces the delegation
// chain from the failure point outward.
type BackendError struct {
	message string
	handles []debug.Handle
	context []string
	cause   error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return renderMessage(e.message, e.context)
}

// Message returns the original message without appended context.
func (e *BackendError) Message() string {
	return e.message
}

// PushDebugHandle appends a debug handle to the accumulated list.
func (e *BackendError) PushDebugHandle(handle debug.Handle) {
	e.handles = append(e.handles, handle)
}

// DebugHandles returns the accumulated debug handles in push order.
func (e *BackendError) DebugHandles() []debug.Handle {
	return e.handles
}

// AddContext appends a context string to the error. Empty strings are
// ignored.
func (e *BackendError) AddContext(context string) {
	if context == "" {
		return
	}
	e.context = append(e.context, context)
}

// Context returns the appended context strings in order.
func (e *BackendError) Context() []string {
	return e.context
}

// Unwrap returns the underlying cause of the error, if any.
func (e *BackendError) Unwrap() error {
	return e.cause
}

// WithCause records the underlying cause and returns the error for chaining.
func (e *BackendError) WithCause(cause error) *BackendError {
	e.cause = cause
	return e
}

// NewBackendError creates a BackendError with the given message and initial
// debug handles.
func NewBackendError(message string, handles ...debug.Handle) *BackendError {
	e := &BackendError{message: message}
	e.handles = append(e.handles, handles...)
	return e
}

// BackendErrorf creates a BackendError with a formatted message.
func BackendErrorf(format string, args ...any) *BackendError {
	return &BackendError{message: fmt.Sprintf(format, args...)}
}
