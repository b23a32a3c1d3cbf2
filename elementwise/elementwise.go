// Package elementwise supplies power and square root as elementwise operations
// over one dimensional tensors. Each operation returns a newly allocated tensor
// of the same shape and never writes to its input.
//
// Older tensor backends only offer an integer exponent power. Adapt fills in the
// float exponent power and square root for those by mapping every element, and
// hands back backends that already have all three unchanged.
package elementwise

import (
	_ "github.com/expki/go-vectormath/env"
	"gorgonia.org/tensor"
)

// Float is the set of element types the operations accept.
type Float interface {
	float32 | float64
}

// IntPower raises every element to an integer exponent.
type IntPower interface {
	PowI(x *tensor.Dense, n int) (*tensor.Dense, error)
}

// FloatPower raises every element to a floating point exponent.
type FloatPower[T Float] interface {
	PowF(x *tensor.Dense, p T) (*tensor.Dense, error)
}

// Sqrter takes the square root of every element.
type Sqrter interface {
	Sqrt(x *tensor.Dense) (*tensor.Dense, error)
}

// Math is the full elementwise capability.
type Math[T Float] interface {
	IntPower
	FloatPower[T]
	Sqrter
}

// Adapt returns p itself when it already implements Math, otherwise a Math that
// uses p for integer powers and supplies whatever else is missing by mapping.
func Adapt[T Float](p IntPower) Math[T] {
	if m, ok := p.(Math[T]); ok {
		return m
	}
	a := adapted[T]{IntPower: p, FloatPower: Mapped[T]{}, Sqrter: Mapped[T]{}}
	if fp, ok := p.(FloatPower[T]); ok {
		a.FloatPower = fp
	}
	if s, ok := p.(Sqrter); ok {
		a.Sqrter = s
	}
	return a
}

type adapted[T Float] struct {
	IntPower
	FloatPower[T]
	Sqrter
}
