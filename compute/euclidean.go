package compute

import "github.com/expki/go-vectormath/elementwise"

// EuclideanDistance computes sqrt(sum((lhs[i] - rhs[i])^2)).
func EuclideanDistance[T Float](lhs, rhs Vector[T]) (distance T, err error) {
	if lhs.Len() != rhs.Len() {
		return distance, EuclideanDistanceError{LHS: lhs.Len(), RHS: rhs.Len()}
	}
	assertFinite(lhs, "LHS")
	assertFinite(rhs, "RHS")
	if lhs.Len() == 0 {
		return 0, nil
	}

	difference, err := denseOf(lhs).Sub(denseOf(rhs))
	if err != nil {
		panic(err)
	}
	return norm(elementwise.Default[T](), difference), nil
}
