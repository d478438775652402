// Package bytecode defines the executable function boundary between the
// invocation runtime and the interpreter that runs function bodies.
package bytecode

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/deepnoodle-ai/mobilert/debug"
	"github.com/deepnoodle-ai/mobilert/errz"
	"github.com/deepnoodle-ai/mobilert/object"
)

// Body executes a function given its argument stack. The stack is mutated in
// place: arguments (with self at the front) are consumed and the result is
// left at the front. A Body may return an *errz.BackendError, an
// *errz.RuntimeError, or any other error.
//
// The instruction set and interpreter loop are defined by the Body provider,
// not by this package.
type Body func(ctx context.Context, stack *object.Stack) error

// Function is one invocable entry point in a loaded program. It is immutable
// after creation, aside from the exception program counter that the body
// reports as it executes.
type Function struct {
	name         string
	qualname     string
	body         Body
	debugHandles []debug.Handle
	exceptionPC  atomic.Int64
}

// FunctionParams contains parameters for creating a new Function.
type FunctionParams struct {
	Name         string
	QualName     string
	Body         Body
	DebugHandles []debug.Handle
}

// NewFunction creates a new Function from the given parameters. Input slices
// are copied to ensure immutability.
func NewFunction(params FunctionParams) *Function {
	handles := make([]debug.Handle, len(params.DebugHandles))
	copy(handles, params.DebugHandles)
	f := &Function{
		name:         params.Name,
		qualname:     params.QualName,
		body:         params.Body,
		debugHandles: handles,
	}
	f.exceptionPC.Store(-1)
	return f
}

// Name returns the simple function name, such as "forward".
func (f *Function) Name() string {
	return f.name
}

// QualName returns the qualified function name, such as "Net.forward".
func (f *Function) QualName() string {
	return f.qualname
}

// Run executes the function body against the given stack. The caller is
// responsible for placing self at the stack front.
func (f *Function) Run(ctx context.Context, stack *object.Stack) error {
	if f.body == nil {
		return errz.Errorf("function %q has no body", f.qualname)
	}
	return f.body(ctx, stack)
}

// DebugHandle returns the debug handle recorded for the given program
// counter, or debug.InvalidHandle if the function carries no handle there.
func (f *Function) DebugHandle(pc int) debug.Handle {
	if pc < 0 || pc >= len(f.debugHandles) {
		return debug.InvalidHandle
	}
	return f.debugHandles[pc]
}

// SetExceptionPC records the program counter the body most recently reached.
// Bodies call this as they step so that a failure can be symbolicated back
// to the faulting instruction. The value is shared across concurrent calls
// of the same function, so the resulting handle is best-effort only.
func (f *Function) SetExceptionPC(pc int) {
	f.exceptionPC.Store(int64(pc))
}

// ExceptionDebugHandle returns the debug handle for the most recently
// recorded program counter, or debug.InvalidHandle when no counter was
// recorded.
func (f *Function) ExceptionDebugHandle() debug.Handle {
	pc := f.exceptionPC.Load()
	if pc < 0 {
		return debug.InvalidHandle
	}
	return f.DebugHandle(int(pc))
}

// String returns a string representation of the function.
func (f *Function) String() string {
	return fmt.Sprintf("function(%s)", f.qualname)
}
