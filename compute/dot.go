//go:build !gonum
// +build !gonum

package compute

import "gorgonia.org/tensor"

// dot is the inner product of two tensors of equal length.
func dot[T Float](a, b *tensor.Dense) T {
	product, err := a.Inner(b)
	if err != nil {
		panic(err)
	}
	return product.(T)
}
