// Package runtime implements the method-invocation protocol for loaded
// module graphs: function registration and lookup, method resolution,
// recursive attribute-tree operations, and the instrumented call path.
package runtime

import (
	"fmt"

	"github.com/deepnoodle-ai/mobilert/debug"
	"github.com/deepnoodle-ai/mobilert/object"
)

// Module is a handle pairing the root instance of a loaded attribute tree
// with the compilation unit holding its methods. Modules are cheap to
// construct and do not own the underlying graph: several handles may alias
// the same root instance and unit.
type Module struct {
	root       *object.Instance
	unit       *CompilationUnit
	metadata   map[string]string
	observer   Observer
	debugTable *debug.Table
}

// NewModule creates a module handle over the given root instance and
// compilation unit.
func NewModule(root *object.Instance, unit *CompilationUnit, opts ...Option) *Module {
	m := &Module{
		root:     root,
		unit:     unit,
		metadata: map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the root instance of the module's attribute tree.
func (m *Module) Root() *object.Instance {
	return m.root
}

// Unit returns the module's compilation unit.
func (m *Module) Unit() *CompilationUnit {
	return m.unit
}

// Metadata returns a copy of the module's metadata mapping.
func (m *Module) Metadata() map[string]string {
	copied := make(map[string]string, len(m.metadata))
	for k, v := range m.metadata {
		copied[k] = v
	}
	return copied
}

// GetMethod returns the bound method with the given name. It returns an
// error carrying the requested name if no such method exists.
func (m *Module) GetMethod(name string) (*Method, error) {
	if method, ok := m.FindMethod(name); ok {
		return method, nil
	}
	return nil, fmt.Errorf("method %q is not defined", name)
}

// FindMethod returns the bound method whose function has the given simple
// (non-qualified) name, or false if no function matches.
func (m *Module) FindMethod(name string) (*Method, bool) {
	for _, fn := range m.unit.Functions() {
		if fn.Name() == name {
			return &Method{owner: m, function: fn}, true
		}
	}
	return nil, false
}

// Methods returns all methods in the compilation unit's registration order,
// each bound to this module.
func (m *Module) Methods() []*Method {
	functions := m.unit.Functions()
	methods := make([]*Method, 0, len(functions))
	for _, fn := range functions {
		methods = append(methods, &Method{owner: m, function: fn})
	}
	return methods
}

// Train recursively sets the "training" attribute on the root instance and
// every instance-valued slot, transitively. Every sub-module in a loaded
// graph must define the attribute; Train panics if a visited instance lacks
// it, since that indicates a malformed program rather than a normal failure.
//
// Train mutates the shared attribute tree and must not run concurrently
// with method execution or parameter collection on the same tree.
func (m *Module) Train(on bool) {
	setTrainRecurse(m.root, on, map[*object.Instance]struct{}{})
}

// IsTraining returns the root instance's "training" attribute, or true if
// the attribute is absent.
func (m *Module) IsTraining() bool {
	if value, ok := m.root.GetAttr("training"); ok {
		if b, ok := value.(*object.Bool); ok {
			return b.Value()
		}
	}
	return true
}

// Parameters collects every tensor-valued slot across the attribute tree,
// depth-first. The same tensor referenced from two slots appears twice; no
// deduplication is performed.
func (m *Module) Parameters() []*object.Tensor {
	var params []*object.Tensor
	slotParamsRecurse(m.root, &params, map[*object.Instance]struct{}{})
	return params
}

// NamedParameters returns a mapping of dotted attribute paths to the
// gradient-tracking tensors found across the attribute tree.
//
// Gradient tracking is not the authoritative parameter flag; it is a proxy
// used because the loaded format carries no parameter labels. The result may
// omit true parameters that do not track gradients and include non-parameter
// tensors that do.
func (m *Module) NamedParameters() map[string]*object.Tensor {
	params := map[string]*object.Tensor{}
	slotNamedParamsRecurse(m.root, params, "", map[*object.Instance]struct{}{})
	return params
}

// ModuleHierarchy returns the symbolicated module hierarchy for a debug
// handle, or an empty string when no symbolication table is configured.
func (m *Module) ModuleHierarchy(handle debug.Handle) string {
	if m.debugTable == nil {
		return ""
	}
	return m.debugTable.ModuleHierarchyInfo(handle, m.topTypeName())
}

// CallStack returns the symbolicated source trace for a debug handle, or an
// empty string when no symbolication table is configured.
func (m *Module) CallStack(handle debug.Handle) string {
	if m.debugTable == nil {
		return ""
	}
	return m.debugTable.SourceDebugString(m.topTypeName(), handle)
}

// ForwardMethodDebugInfo converts a program counter in the "forward" method
// to its symbolicated module hierarchy. It returns an error if the module
// has no "forward" method, and an empty string when no symbolication table
// is configured. Profiling tooling relies on this entry point.
func (m *Module) ForwardMethodDebugInfo(pc int) (string, error) {
	method, ok := m.FindMethod("forward")
	if !ok {
		return "", fmt.Errorf("method %q is not defined", "forward")
	}
	handle := method.function.DebugHandle(pc)
	if m.debugTable == nil {
		return "", nil
	}
	return m.debugTable.ModuleHierarchyInfo(handle, m.topTypeName()), nil
}

func (m *Module) topTypeName() string {
	if m.root == nil || m.root.InstanceType() == nil {
		return ""
	}
	return m.root.InstanceType().Name()
}

func (m *Module) sourceDebugString(handles ...debug.Handle) string {
	if m.debugTable == nil {
		return ""
	}
	return m.debugTable.SourceDebugString(m.topTypeName(), handles...)
}

func setTrainRecurse(obj *object.Instance, on bool, seen map[*object.Instance]struct{}) {
	if _, visited := seen[obj]; visited {
		return
	}
	seen[obj] = struct{}{}
	slot, ok := obj.InstanceType().FindAttributeSlot("training")
	if !ok {
		panic(fmt.Sprintf("%q attribute not found on type %q", "training",
			obj.InstanceType().Name()))
	}
	obj.SetSlot(slot, object.NewBool(on))
	for _, value := range obj.Slots() {
		if child, ok := value.(*object.Instance); ok {
			setTrainRecurse(child, on, seen)
		}
	}
}

func slotParamsRecurse(obj *object.Instance, params *[]*object.Tensor, seen map[*object.Instance]struct{}) {
	if _, visited := seen[obj]; visited {
		return
	}
	seen[obj] = struct{}{}
	for _, value := range obj.Slots() {
		switch value := value.(type) {
		case *object.Tensor:
			*params = append(*params, value)
		case *object.Instance:
			slotParamsRecurse(value, params, seen)
		}
	}
}

func slotNamedParamsRecurse(
	obj *object.Instance,
	params map[string]*object.Tensor,
	parentName string,
	seen map[*object.Instance]struct{},
) {
	if _, visited := seen[obj]; visited {
		return
	}
	seen[obj] = struct{}{}
	for i, value := range obj.Slots() {
		name := parentName
		if name != "" {
			name += "."
		}
		name += obj.InstanceType().AttributeName(i)
		switch value := value.(type) {
		case *object.Tensor:
			if value.RequiresGrad() {
				params[name] = value
			}
		case *object.Instance:
			slotNamedParamsRecurse(value, params, name, seen)
		}
	}
}
