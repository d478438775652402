package object

// Stack is the ordered value sequence used to pass arguments into a method
// call and to carry results back out. The front of the stack (index 0) holds
// the implicit self argument during execution and the primary result after.
type Stack []Value

// NewStack creates a stack holding the given values in order.
func NewStack(values ...Value) *Stack {
	s := make(Stack, len(values))
	copy(s, values)
	return &s
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(*s)
}

// Push appends a value to the back of the stack.
func (s *Stack) Push(value Value) {
	*s = append(*s, value)
}

// Pop removes and returns the value at the back of the stack. It returns
// false if the stack is empty.
func (s *Stack) Pop() (Value, bool) {
	if len(*s) == 0 {
		return nil, false
	}
	value := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return value, true
}

// Front returns the value at the front of the stack without removing it. It
// returns false if the stack is empty.
func (s *Stack) Front() (Value, bool) {
	if len(*s) == 0 {
		return nil, false
	}
	return (*s)[0], true
}

// InsertFront inserts a value at the front of the stack, shifting existing
// values back by one position.
func (s *Stack) InsertFront(value Value) {
	*s = append(Stack{value}, *s...)
}

// Values returns the stack contents as a plain slice, front first.
func (s *Stack) Values() []Value {
	return *s
}
