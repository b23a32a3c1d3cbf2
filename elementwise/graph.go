//go:build gorgonia
// +build gorgonia

package elementwise

import (
	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Graph runs every operation as a single node expression graph on a tape machine.
type Graph[T Float] struct{}

func (g Graph[T]) PowI(x *tensor.Dense, n int) (*tensor.Dense, error) {
	if n == 2 {
		return runGraph(x, "square", func(_ *gorgonia.ExprGraph, input *gorgonia.Node) (*gorgonia.Node, error) {
			return gorgonia.Square(input)
		})
	}
	return g.PowF(x, T(n))
}

func (Graph[T]) PowF(x *tensor.Dense, p T) (*tensor.Dense, error) {
	return runGraph(x, "pow", func(g *gorgonia.ExprGraph, input *gorgonia.Node) (*gorgonia.Node, error) {
		exponent := gorgonia.NewScalar(g, x.Dtype(), gorgonia.WithValue(p), gorgonia.WithName("exponent"))
		return gorgonia.Pow(input, exponent)
	})
}

func (Graph[T]) Sqrt(x *tensor.Dense) (*tensor.Dense, error) {
	return runGraph(x, "sqrt", func(_ *gorgonia.ExprGraph, input *gorgonia.Node) (*gorgonia.Node, error) {
		return gorgonia.Sqrt(input)
	})
}

func runGraph(x *tensor.Dense, op string, build func(g *gorgonia.ExprGraph, input *gorgonia.Node) (*gorgonia.Node, error)) (*tensor.Dense, error) {
	g := gorgonia.NewGraph()

	// The machine may reuse input memory, so it only ever sees a copy.
	input := gorgonia.NewTensor(g, x.Dtype(), 1, gorgonia.WithValue(x.Clone().(*tensor.Dense)), gorgonia.WithName("input"))
	output, err := build(g, input)
	if err != nil {
		return nil, errors.Wrapf(err, "graph %s", op)
	}

	machine := gorgonia.NewTapeMachine(g)
	defer machine.Close()
	if err = machine.RunAll(); err != nil {
		return nil, errors.Wrapf(err, "graph %s", op)
	}

	result, ok := output.Value().(*tensor.Dense)
	if !ok {
		return nil, errors.Errorf("graph %s: unexpected value type %T", op, output.Value())
	}
	return result.Clone().(*tensor.Dense), nil
}
