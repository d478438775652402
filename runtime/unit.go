package runtime

import "github.com/deepnoodle-ai/mobilert/bytecode"

// CompilationUnit owns the set of functions belonging to one loaded program.
// Functions are registered once at load time and only read afterwards, so
// concurrent lookups need no synchronization.
type CompilationUnit struct {
	functions []*bytecode.Function
}

// NewCompilationUnit creates an empty compilation unit.
func NewCompilationUnit() *CompilationUnit {
	return &CompilationUnit{}
}

// RegisterFunction appends a function to the unit. No duplicate-name check
// is performed: registering two functions with the same qualified name is
// allowed, and FindFunction resolves to the first one registered.
func (u *CompilationUnit) RegisterFunction(fn *bytecode.Function) {
	u.functions = append(u.functions, fn)
}

// FindFunction returns the first registered function whose qualified name
// matches, or false if none does. Linear scan; per-module function counts
// are small.
func (u *CompilationUnit) FindFunction(qualname string) (*bytecode.Function, bool) {
	for _, fn := range u.functions {
		if fn.QualName() == qualname {
			return fn, true
		}
	}
	return nil, false
}

// Functions returns all registered functions in registration order. The
// slice is shared, not copied.
func (u *CompilationUnit) Functions() []*bytecode.Function {
	return u.functions
}
