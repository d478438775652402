package object

// NilType represents the absence of a value. Use the shared object.Nil
// rather than constructing new instances.
type NilType struct{}

func (n *NilType) Type() Type {
	return NIL
}

func (n *NilType) Inspect() string {
	return "nil"
}

func (n *NilType) Interface() interface{} {
	return nil
}

func (n *NilType) String() string {
	return n.Inspect()
}

func (n *NilType) Equals(other Value) bool {
	_, ok := other.(*NilType)
	return ok
}
