package object

// InstanceType describes the attribute schema of an Instance: a type name
// plus an ordered list of attribute names. Slot indices on an Instance
// correspond one-to-one with the attribute names defined here.
//
// An InstanceType is immutable after creation and may be shared by any number
// of instances.
type InstanceType struct {
	name  string
	attrs []string
	index map[string]int
}

// Name returns the type name, such as "Net" or "Linear".
func (t *InstanceType) Name() string {
	return t.name
}

// NumAttributes returns the number of attribute slots defined by this type.
func (t *InstanceType) NumAttributes() int {
	return len(t.attrs)
}

// AttributeName returns the name of the attribute at the given slot index.
func (t *InstanceType) AttributeName(slot int) string {
	return t.attrs[slot]
}

// FindAttributeSlot returns the slot index for the named attribute, or false
// if the type does not define it.
func (t *InstanceType) FindAttributeSlot(name string) (int, bool) {
	slot, ok := t.index[name]
	return slot, ok
}

// NewInstanceType creates a type with the given name and ordered attribute
// names. If the same attribute name appears twice, the first occurrence wins
// for name-based lookup.
func NewInstanceType(name string, attrNames ...string) *InstanceType {
	attrs := make([]string, len(attrNames))
	copy(attrs, attrNames)
	index := make(map[string]int, len(attrs))
	for i, attr := range attrs {
		if _, found := index[attr]; !found {
			index[attr] = i
		}
	}
	return &InstanceType{name: name, attrs: attrs, index: index}
}
