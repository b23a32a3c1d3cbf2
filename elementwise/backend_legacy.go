//go:build legacy && !gorgonia
// +build legacy,!gorgonia

package elementwise

const backendName = "legacy"

// Default returns the backend the vector operations run on.
func Default[T Float]() Math[T] {
	announce()
	return Adapt[T](Legacy[T]{})
}
