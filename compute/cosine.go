package compute

import (
	"math"

	"github.com/expki/go-vectormath/elementwise"
	"gorgonia.org/tensor"
)

// CosineSimilarity computes dot(lhs, rhs) / (|lhs| * |rhs|).
// A zero vector on either side yields NaN, not an error.
func CosineSimilarity[T Float](lhs, rhs Vector[T]) (similarity T, err error) {
	if lhs.Len() != rhs.Len() {
		return similarity, CosineSimilarityError{LHS: lhs.Len(), RHS: rhs.Len()}
	}
	assertFinite(lhs, "LHS")
	assertFinite(rhs, "RHS")
	if lhs.Len() == 0 {
		return T(math.NaN()), nil
	}

	a, b := denseOf(lhs), denseOf(rhs)
	m := elementwise.Default[T]()

	numerator := dot[T](a, b)
	denominator := norm(m, a) * norm(m, b)
	return numerator / denominator, nil
}

// norm is the L2 norm of x.
func norm[T Float](m elementwise.Math[T], x *tensor.Dense) T {
	squares, err := m.PowI(x, 2)
	if err != nil {
		panic(err)
	}
	return elementwise.SqrtScalar(sum[T](squares))
}
