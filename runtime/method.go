package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepnoodle-ai/mobilert/bytecode"
	"github.com/deepnoodle-ai/mobilert/debug"
	"github.com/deepnoodle-ai/mobilert/errz"
	"github.com/deepnoodle-ai/mobilert/object"
	"github.com/google/uuid"
)

// Method is a bound (module, function) pair representing one invocable
// entry point. Methods are cheap to construct, own neither side of the
// binding, and must not outlive their module.
type Method struct {
	owner    *Module
	function *bytecode.Function
}

// Name returns the simple name of the bound function.
func (m *Method) Name() string {
	return m.function.Name()
}

// Function returns the bound function.
func (m *Method) Function() *bytecode.Function {
	return m.function
}

// failureGuard runs a deferred fail action unless it was released on the
// success path. Exactly one of the exit or fail notifications fires per
// invocation because the release happens only after the exit notification.
type failureGuard struct {
	released bool
	action   func()
}

func (g *failureGuard) release() {
	g.released = true
}

func (g *failureGuard) run() {
	if !g.released {
		g.action()
	}
}

// Run invokes the method with the given argument stack. The module's root
// instance is inserted at the stack front as the implicit self argument
// before execution, and on success the result occupies the stack front.
//
// Execution is bracketed by observer notifications: enter always precedes
// execution, and exactly one of exit or fail follows it. Errors from the
// execution layer are annotated with best-effort symbolicated context and
// returned unchanged in type; they are never swallowed or replaced.
func (m *Method) Run(ctx context.Context, stack *object.Stack) error {
	observer := m.owner.observer
	instanceKey := uuid.NewString()
	metadata := m.owner.Metadata()

	// The caller supplies "model_name" in the module metadata; an absent
	// entry is reported as an empty model name rather than falling back to
	// the module's type name.
	ctx = debug.WithInfo(ctx, &debug.Info{
		ModelName:  metadata["model_name"],
		MethodName: m.function.Name(),
	})

	if observer != nil {
		observer.OnEnterRunMethod(metadata, instanceKey, m.function.Name())
	}

	var errorMessage string
	guard := &failureGuard{action: func() {
		if observer == nil {
			return
		}
		if errorMessage == "" {
			errorMessage = m.owner.sourceDebugString(m.function.ExceptionDebugHandle())
		}
		if errorMessage == "" {
			errorMessage = "Unknown exception"
		}
		observer.OnFailRunMethod(instanceKey, errorMessage)
	}}
	defer guard.run()

	stack.InsertFront(m.owner.root) // self
	err := m.function.Run(ctx, stack)
	if err == nil {
		if observer != nil {
			observer.OnExitRunMethod(instanceKey)
		}
		guard.release()
		return nil
	}

	// A BackendError must be matched before the generic RuntimeError so the
	// accumulated handle list is symbolicated as a whole.
	var backendErr *errz.BackendError
	if errors.As(err, &backendErr) {
		backendErr.PushDebugHandle(m.function.ExceptionDebugHandle())
		backendErr.AddContext(m.owner.sourceDebugString(backendErr.DebugHandles()...))
		errorMessage = backendErr.Error()
		return err
	}
	var runtimeErr *errz.RuntimeError
	if errors.As(err, &runtimeErr) {
		runtimeErr.AddContext(m.owner.sourceDebugString(m.function.ExceptionDebugHandle()))
		errorMessage = runtimeErr.Error()
		return err
	}
	errorMessage = err.Error()
	return err
}

// Call invokes the method with the given arguments and returns the value at
// the stack front. It panics if execution leaves the stack empty: a method
// that returns nothing violates a runtime post-condition, which indicates a
// defect in the loaded program rather than a user error.
func (m *Method) Call(ctx context.Context, args ...object.Value) (object.Value, error) {
	stack := object.NewStack(args...)
	if err := m.Run(ctx, stack); err != nil {
		return nil, err
	}
	result, ok := stack.Front()
	if !ok {
		panic(fmt.Sprintf("method %q returned with an empty stack", m.function.Name()))
	}
	return result, nil
}
