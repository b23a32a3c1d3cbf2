//go:build gorgonia
// +build gorgonia

package elementwise

const backendName = "gorgonia"

// Default returns the backend the vector operations run on.
func Default[T Float]() Math[T] {
	announce()
	return Graph[T]{}
}
