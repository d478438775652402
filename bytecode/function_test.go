package bytecode

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/mobilert/debug"
	"github.com/deepnoodle-ai/mobilert/object"
)

func TestFunctionNames(t *testing.T) {
	fn := NewFunction(FunctionParams{Name: "forward", QualName: "Net.forward"})
	assert.Equal(t, fn.Name(), "forward")
	assert.Equal(t, fn.QualName(), "Net.forward")
	assert.Equal(t, fn.String(), "function(Net.forward)")
}

func TestFunctionRun(t *testing.T) {
	fn := NewFunction(FunctionParams{
		Name:     "forward",
		QualName: "Net.forward",
		Body: func(ctx context.Context, stack *object.Stack) error {
			stack.Push(object.NewInt(7))
			return nil
		},
	})
	stack := object.NewStack()
	assert.Nil(t, fn.Run(context.Background(), stack))
	assert.Equal(t, stack.Len(), 1)
}

func TestFunctionRunWithoutBody(t *testing.T) {
	fn := NewFunction(FunctionParams{Name: "forward", QualName: "Net.forward"})
	err := fn.Run(context.Background(), object.NewStack())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Net.forward")
}

func TestDebugHandles(t *testing.T) {
	handles := []debug.Handle{100, 101, 102}
	fn := NewFunction(FunctionParams{Name: "forward", DebugHandles: handles})

	assert.Equal(t, fn.DebugHandle(0), debug.Handle(100))
	assert.Equal(t, fn.DebugHandle(2), debug.Handle(102))
	assert.Equal(t, fn.DebugHandle(-1), debug.InvalidHandle)
	assert.Equal(t, fn.DebugHandle(3), debug.InvalidHandle)

	// Input slice mutations do not leak into the function.
	handles[0] = 999
	assert.Equal(t, fn.DebugHandle(0), debug.Handle(100))
}

func TestExceptionDebugHandle(t *testing.T) {
	fn := NewFunction(FunctionParams{
		Name:         "forward",
		DebugHandles: []debug.Handle{100, 101},
	})
	assert.Equal(t, fn.ExceptionDebugHandle(), debug.InvalidHandle)

	fn.SetExceptionPC(1)
	assert.Equal(t, fn.ExceptionDebugHandle(), debug.Handle(101))

	fn.SetExceptionPC(5)
	assert.Equal(t, fn.ExceptionDebugHandle(), debug.InvalidHandle)
}
