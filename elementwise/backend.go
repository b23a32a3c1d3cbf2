//go:build !gorgonia && !legacy
// +build !gorgonia,!legacy

package elementwise

const backendName = "native"

// Default returns the backend the vector operations run on.
func Default[T Float]() Math[T] {
	announce()
	return Native[T]{}
}
