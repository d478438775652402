// Package errz defines the structured error types raised by method
// execution. The invocation layer annotates these errors with symbolicated
// context and propagates them unchanged; it never swallows or replaces them.
package errz

import (
	"fmt"
	"strings"
)

// RuntimeError is the generic structured error produced by the execution
// layer. Context strings may be appended as the error propagates; the
// original message is never altered.
type RuntimeError struct {
	message string
	context []string
	cause   error
}

// Error implements the error interface. Appended context is rendered after
// the message, one line per entry.
func (e *RuntimeError) Error() string {
	return renderMessage(e.message, e.context)
}

// Message returns the original message without appended context.
func (e *RuntimeError) Message() string {
	return e.message
}

// AddContext appends a context string to the error. Empty strings are
// ignored, so best-effort symbolication that yields nothing leaves the error
// untouched.
func (e *RuntimeError) AddContext(context string) {
	if context == "" {
		return
	}
	e.context = append(e.context, context)
}

// Context returns the appended context strings in order.
func (e *RuntimeError) Context() []string {
	return e.context
}

// Unwrap returns the underlying cause of the error, if any.
func (e *RuntimeError) Unwrap() error {
	return e.cause
}

// WithCause records the underlying cause and returns the error for chaining.
func (e *RuntimeError) WithCause(cause error) *RuntimeError {
	e.cause = cause
	return e
}

// New creates a RuntimeError with the given message.
func New(message string) *RuntimeError {
	return &RuntimeError{message: message}
}

// Errorf creates a RuntimeError with a formatted message.
func Errorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{message: fmt.Sprintf(format, args...)}
}

func renderMessage(message string, context []string) string {
	if len(context) == 0 {
		return message
	}
	var b strings.Builder
	b.WriteString(message)
	for _, c := range context {
		b.WriteString("\n")
		b.WriteString(c)
	}
	return b.String()
}
