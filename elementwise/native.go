package elementwise

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Native uses the tensor engine's own Square, Pow and Sqrt.
type Native[T Float] struct{}

func (Native[T]) PowI(x *tensor.Dense, n int) (*tensor.Dense, error) {
	var (
		out tensor.Tensor
		err error
	)
	if n == 2 {
		out, err = tensor.Square(x)
	} else {
		out, err = tensor.Pow(x, T(n))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "native powi %d", n)
	}
	return asDense(out)
}

func (Native[T]) PowF(x *tensor.Dense, p T) (*tensor.Dense, error) {
	out, err := tensor.Pow(x, p)
	if err != nil {
		return nil, errors.Wrapf(err, "native powf %v", p)
	}
	return asDense(out)
}

func (Native[T]) Sqrt(x *tensor.Dense) (*tensor.Dense, error) {
	out, err := tensor.Sqrt(x)
	if err != nil {
		return nil, errors.Wrap(err, "native sqrt")
	}
	return asDense(out)
}

// Legacy only knows integer exponents. Wrap it with Adapt before use.
type Legacy[T Float] struct{}

func (Legacy[T]) PowI(x *tensor.Dense, n int) (*tensor.Dense, error) {
	out, err := tensor.Pow(x, T(n))
	if err != nil {
		return nil, errors.Wrapf(err, "legacy powi %d", n)
	}
	return asDense(out)
}

func asDense(t tensor.Tensor) (*tensor.Dense, error) {
	d, ok := t.(*tensor.Dense)
	if !ok {
		return nil, errors.Errorf("unexpected tensor type %T", t)
	}
	return d, nil
}
