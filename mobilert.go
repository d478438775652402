// Package mobilert provides a lightweight method-invocation runtime for
// pre-compiled, serialized computation graphs executing on mobile and
// embedded targets.
//
// A host application loads a hierarchical graph of named sub-modules,
// parameters, and bytecode functions, then invokes named methods on it:
//
//	module := runtime.NewModule(root, unit,
//		runtime.WithMetadata(map[string]string{"model_name": "mnist"}),
//		runtime.WithObserver(profiler))
//	result, err := mobilert.Invoke(ctx, module, "forward", input)
//
// The heavy lifting lives in the sub-packages: runtime holds the invocation
// protocol, object the dynamic value types, bytecode the function boundary,
// errz the structured error types, and debug the symbolication support.
package mobilert

import (
	"context"

	"github.com/deepnoodle-ai/mobilert/object"
	"github.com/deepnoodle-ai/mobilert/runtime"
)

// Invoke looks up the named method on the module and calls it with the
// given arguments, returning the value left at the stack front.
func Invoke(ctx context.Context, module *runtime.Module, method string, args ...object.Value) (object.Value, error) {
	m, err := module.GetMethod(method)
	if err != nil {
		return nil, err
	}
	return m.Call(ctx, args...)
}

// MethodNames returns the names of the module's methods in registration
// order.
func MethodNames(module *runtime.Module) []string {
	methods := module.Methods()
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name())
	}
	return names
}
