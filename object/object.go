// Package object provides the dynamic value types that flow through the
// mobilert runtime.
//
// Callers usually type assert an object.Value to a specific type, such as
// *object.Tensor:
//
//	switch v := v.(type) {
//	case *object.Tensor:
//		// do something with v.Shape()
//	case *object.Bool:
//		// do something with v.Value()
//	}
//
// The Type() method of each value may also be used to get a string name of
// the value type, such as "tensor" or "bool".
package object

// Type of a value as a string.
type Type string

// Type constants
const (
	BOOL     Type = "bool"
	FLOAT    Type = "float"
	INSTANCE Type = "instance"
	INT      Type = "int"
	NIL      Type = "nil"
	STRING   Type = "string"
	TENSOR   Type = "tensor"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Value is the interface that all dynamic value types must implement.
type Value interface {
	// Type of the value.
	Type() Type

	// Inspect returns a string representation of the given value.
	Inspect() string

	// Interface converts the given value to a native Go value.
	Interface() interface{}

	// Equals returns true if the given value is equal to this value.
	Equals(other Value) bool
}

// Equals returns true if the two values are equal. Either value may be nil.
func Equals(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}
