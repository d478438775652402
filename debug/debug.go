// Package debug defines debug handles, best-effort symbolication, and the
// per-call debug info that brackets a method invocation.
package debug

import "context"

// Handle is an opaque identifier correlating a point in executed bytecode
// back to its original source location and module hierarchy. Handles are
// assigned at export time and only ever used for diagnostics.
type Handle int64

// InvalidHandle marks the absence of a debug handle.
const InvalidHandle Handle = -1

// Info describes the call currently being executed. It is installed on the
// context passed to the function body for the duration of one method
// invocation, so concurrent calls each see their own info.
type Info struct {
	ModelName  string
	MethodName string
}

type infoKey struct{}

// WithInfo returns a context carrying the given call info.
func WithInfo(ctx context.Context, info *Info) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

// CurrentInfo returns the call info carried by the context, or false if the
// context is not scoped to a method invocation.
func CurrentInfo(ctx context.Context) (*Info, bool) {
	info, ok := ctx.Value(infoKey{}).(*Info)
	return info, ok
}
