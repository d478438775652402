package object

import (
	"fmt"
	"strings"
)

// Tensor is a minimal dense tensor value. The runtime only needs enough of a
// tensor to store it in attribute slots and collect it during parameter
// traversal; the math lives behind the interpreter boundary.
//
// Tensors compare by identity: two tensors are equal only when they are the
// same underlying tensor, so the same tensor referenced from two slots is
// recognized as a duplicate.
type Tensor struct {
	shape        []int64
	data         []float64
	requiresGrad bool
}

func (t *Tensor) Type() Type {
	return TENSOR
}

// Shape returns the tensor dimensions.
func (t *Tensor) Shape() []int64 {
	shape := make([]int64, len(t.shape))
	copy(shape, t.shape)
	return shape
}

// Data returns the underlying element storage. The slice is shared, not
// copied.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Numel returns the number of elements implied by the shape.
func (t *Tensor) Numel() int64 {
	n := int64(1)
	for _, d := range t.shape {
		n *= d
	}
	return n
}

// RequiresGrad reports whether this tensor tracks gradients.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// SetRequiresGrad toggles gradient tracking and returns the tensor for
// chaining.
func (t *Tensor) SetRequiresGrad(on bool) *Tensor {
	t.requiresGrad = on
	return t
}

func (t *Tensor) Inspect() string {
	dims := make([]string, len(t.shape))
	for i, d := range t.shape {
		dims[i] = fmt.Sprintf("%d", d)
	}
	if t.requiresGrad {
		return fmt.Sprintf("tensor(shape=[%s], requires_grad=true)", strings.Join(dims, ", "))
	}
	return fmt.Sprintf("tensor(shape=[%s])", strings.Join(dims, ", "))
}

func (t *Tensor) Interface() interface{} {
	return t.data
}

func (t *Tensor) String() string {
	return t.Inspect()
}

func (t *Tensor) Equals(other Value) bool {
	o, ok := other.(*Tensor)
	return ok && t == o
}

// NewTensor creates a tensor with the given shape and element data. The data
// length must match the shape's element count.
func NewTensor(shape []int64, data []float64) *Tensor {
	t := &Tensor{
		shape: make([]int64, len(shape)),
		data:  data,
	}
	copy(t.shape, shape)
	if t.Numel() != int64(len(data)) {
		panic(fmt.Sprintf("tensor shape %v implies %d elements, got %d",
			shape, t.Numel(), len(data)))
	}
	return t
}
