package object

import (
	"fmt"
	"strings"
)

// Instance is a node in a module's attribute tree: an InstanceType paired
// with one value slot per attribute. Slots may hold nested *Instance values,
// forming the object graph for a module and its sub-modules.
//
// Instances compare by identity. The runtime assumes the graph is a tree, but
// traversal code guards against cycles anyway.
type Instance struct {
	typ   *InstanceType
	slots []Value
}

func (o *Instance) Type() Type {
	return INSTANCE
}

// InstanceType returns the attribute schema for this instance.
func (o *Instance) InstanceType() *InstanceType {
	return o.typ
}

// Slots returns the ordered slot values. The slice is shared, not copied.
func (o *Instance) Slots() []Value {
	return o.slots
}

// GetSlot returns the value at the given slot index.
func (o *Instance) GetSlot(slot int) Value {
	return o.slots[slot]
}

// SetSlot replaces the value at the given slot index.
func (o *Instance) SetSlot(slot int, value Value) {
	if value == nil {
		value = Nil
	}
	o.slots[slot] = value
}

// GetAttr returns the value of the named attribute, or false if the type
// does not define it.
func (o *Instance) GetAttr(name string) (Value, bool) {
	slot, ok := o.typ.FindAttributeSlot(name)
	if !ok {
		return nil, false
	}
	return o.slots[slot], true
}

// SetAttr sets the named attribute. It returns an error if the type does not
// define the attribute; slots cannot be added after construction.
func (o *Instance) SetAttr(name string, value Value) error {
	slot, ok := o.typ.FindAttributeSlot(name)
	if !ok {
		return fmt.Errorf("type %q has no attribute %q", o.typ.Name(), name)
	}
	o.SetSlot(slot, value)
	return nil
}

func (o *Instance) Inspect() string {
	var out strings.Builder
	out.WriteString(o.typ.Name())
	out.WriteString("(")
	for i, slot := range o.slots {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(o.typ.AttributeName(i))
		out.WriteString("=")
		out.WriteString(slot.Inspect())
	}
	out.WriteString(")")
	return out.String()
}

func (o *Instance) Interface() interface{} {
	return nil
}

func (o *Instance) String() string {
	return o.Inspect()
}

func (o *Instance) Equals(other Value) bool {
	otherInstance, ok := other.(*Instance)
	return ok && o == otherInstance
}

// NewInstance creates an instance of the given type with all slots
// initialized to Nil.
func NewInstance(typ *InstanceType) *Instance {
	slots := make([]Value, typ.NumAttributes())
	for i := range slots {
		slots[i] = Nil
	}
	return &Instance{typ: typ, slots: slots}
}
