package elementwise

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Mapped computes out[i] = f(x[i]) for every element through Dense.Apply.
type Mapped[T Float] struct{}

func (Mapped[T]) PowI(x *tensor.Dense, n int) (*tensor.Dense, error) {
	return apply(x, func(v T) T { return PowIScalar(v, n) })
}

func (Mapped[T]) PowF(x *tensor.Dense, p T) (*tensor.Dense, error) {
	return apply(x, func(v T) T { return PowFScalar(v, p) })
}

func (Mapped[T]) Sqrt(x *tensor.Dense) (*tensor.Dense, error) {
	return apply(x, SqrtScalar[T])
}

func apply[T Float](x *tensor.Dense, fn func(T) T) (*tensor.Dense, error) {
	out, err := x.Apply(fn)
	if err != nil {
		return nil, errors.Wrap(err, "apply")
	}
	return asDense(out)
}

// PowIScalar raises v to the integer power n by repeated squaring.
func PowIScalar[T Float](v T, n int) T {
	if n < 0 {
		return 1 / PowIScalar(v, -n)
	}
	result := T(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= v
		}
		v *= v
	}
	return result
}

func PowFScalar[T Float](v, p T) T {
	switch v := any(v).(type) {
	case float32:
		return T(math32.Pow(v, float32(p)))
	case float64:
		return T(math.Pow(v, float64(p)))
	}
	panic("unreachable")
}

func SqrtScalar[T Float](v T) T {
	switch v := any(v).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	panic("unreachable")
}
