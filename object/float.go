package object

import "strconv"

// Float wraps float64 and implements the Value interface.
type Float struct {
	value float64
}

func (f *Float) Type() Type {
	return FLOAT
}

func (f *Float) Value() float64 {
	return f.value
}

func (f *Float) Inspect() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

func (f *Float) Interface() interface{} {
	return f.value
}

func (f *Float) String() string {
	return f.Inspect()
}

func (f *Float) Equals(other Value) bool {
	o, ok := other.(*Float)
	return ok && f.value == o.value
}

func NewFloat(value float64) *Float {
	return &Float{value: value}
}
