package mobilert

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/mobilert/bytecode"
	"github.com/deepnoodle-ai/mobilert/object"
	"github.com/deepnoodle-ai/mobilert/runtime"
)

func newTestModule() *runtime.Module {
	unit := runtime.NewCompilationUnit()
	unit.RegisterFunction(bytecode.NewFunction(bytecode.FunctionParams{
		Name:     "forward",
		QualName: "Net.forward",
		Body: func(ctx context.Context, stack *object.Stack) error {
			// Double the single argument following self.
			arg := stack.Values()[1].(*object.Int)
			*stack = object.Stack{object.NewInt(arg.Value() * 2)}
			return nil
		},
	}))
	unit.RegisterFunction(bytecode.NewFunction(bytecode.FunctionParams{
		Name:     "encode",
		QualName: "Net.encode",
	}))

	typ := object.NewInstanceType("Net", "training")
	root := object.NewInstance(typ)
	root.SetSlot(0, object.True)
	return runtime.NewModule(root, unit)
}

func TestInvoke(t *testing.T) {
	module := newTestModule()
	result, err := Invoke(context.Background(), module, "forward", object.NewInt(21))
	assert.Nil(t, err)
	assert.True(t, result.Equals(object.NewInt(42)))
}

func TestInvokeUnknownMethod(t *testing.T) {
	module := newTestModule()
	_, err := Invoke(context.Background(), module, "missing")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestMethodNames(t *testing.T) {
	module := newTestModule()
	assert.Equal(t, MethodNames(module), []string{"forward", "encode"})
}
