//go:build gonum
// +build gonum

package compute

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gorgonia.org/tensor"
)

// dot is the inner product of two tensors of equal length, computed with gonum BLAS.
func dot[T Float](a, b *tensor.Dense) T {
	switch x := a.Data().(type) {
	case []float32:
		y := b.Data().([]float32)
		return T(blas32.Dot(
			blas32.Vector{N: len(x), Inc: 1, Data: x},
			blas32.Vector{N: len(y), Inc: 1, Data: y},
		))
	case []float64:
		y := b.Data().([]float64)
		return T(blas64.Dot(
			blas64.Vector{N: len(x), Inc: 1, Data: x},
			blas64.Vector{N: len(y), Inc: 1, Data: y},
		))
	default:
		panic("unsupported tensor dtype " + a.Dtype().String())
	}
}
