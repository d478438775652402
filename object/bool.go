package object

// Bool wraps bool and implements the Value interface.
type Bool struct {
	value bool
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Inspect() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *Bool) Interface() interface{} {
	return b.value
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) Equals(other Value) bool {
	o, ok := other.(*Bool)
	return ok && b.value == o.value
}

// NewBool returns the shared Bool for the given bool value.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}
