package compute

import (
	"github.com/expki/go-vectormath/elementwise"
	"gorgonia.org/tensor"
)

// Float is the set of element types the vector operations accept.
type Float = elementwise.Float

// Vector is a read only, fixed length sequence of floats.
type Vector[T Float] interface {
	Len() int
	At(i int) T
}

// Tensorer is implemented by vectors that already hold their elements in a one
// dimensional tensor. The operations read that tensor directly instead of
// gathering the elements through At, and never write to it.
type Tensorer interface {
	Tensor() *tensor.Dense
}
