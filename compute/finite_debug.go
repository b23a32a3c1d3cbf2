//go:build debug
// +build debug

package compute

import (
	"math"

	"github.com/expki/go-vectormath/logger"
)

// assertFinite panics when v holds a NaN or an infinity. operand names the side
// at fault, "LHS" or "RHS".
func assertFinite[T Float](v Vector[T], operand string) {
	for i := 0; i < v.Len(); i++ {
		value := float64(v.At(i))
		if math.IsNaN(value) || math.IsInf(value, 0) {
			msg := operand + " vector contains non-finite values"
			logger.Sugar().Errorw(msg, "operand", operand, "index", i, "value", value)
			panic(msg)
		}
	}
}

const debugBuild = true
