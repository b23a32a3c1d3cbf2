package compute

import (
	"errors"
	"fmt"
	"slices"

	_ "github.com/expki/go-vectormath/env"
	"gorgonia.org/tensor"
)

// Dense is an owned vector backed by a one dimensional tensor.
type Dense[T Float] struct {
	data  []T
	dense *tensor.Dense // nil while data is empty
}

// New copies values into a new vector.
func New[T Float](values ...T) Dense[T] {
	return FromSlice(slices.Clone(values))
}

// FromSlice takes ownership of data without copying it.
func FromSlice[T Float](data []T) Dense[T] {
	v := Dense[T]{data: data}
	if len(data) > 0 {
		v.dense = tensor.New(tensor.WithBacking(data), tensor.WithShape(len(data)))
	}
	return v
}

// FromTensor wraps a one dimensional tensor holding T. Views are materialized first.
func FromTensor[T Float](t *tensor.Dense) (vector Dense[T], err error) {
	if t == nil {
		return vector, errors.New("nil tensor")
	}
	if t.Dims() != 1 {
		return vector, fmt.Errorf("tensor is not one dimensional: shape %v", t.Shape())
	}
	if t.IsMaterializable() {
		t = t.Materialize().(*tensor.Dense)
	}
	data, ok := t.Data().([]T)
	if !ok {
		var zero T
		return vector, fmt.Errorf("tensor dtype %v does not hold %T", t.Dtype(), zero)
	}
	return Dense[T]{data: data, dense: t}, nil
}

func (v Dense[T]) Len() int { return len(v.data) }

func (v Dense[T]) At(i int) T { return v.data[i] }

// Data returns the backing slice. Writes to it are visible through v.
func (v Dense[T]) Data() []T { return v.data }

// Tensor returns the backing tensor, or nil for an empty vector.
func (v Dense[T]) Tensor() *tensor.Dense { return v.dense }

// View borrows v read only.
func (v Dense[T]) View() View[T] { return ViewOf(v.data) }

// Slice borrows elements [start, end) of v read only.
func (v Dense[T]) Slice(start, end int) View[T] { return v.View().Slice(start, end) }

func (v Dense[T]) Clone() Dense[T] { return New(v.data...) }

func (v Dense[T]) CosineSimilarity(rhs Vector[T]) (similarity T, err error) {
	return CosineSimilarity[T](v, rhs)
}

func (v Dense[T]) EuclideanDistance(rhs Vector[T]) (distance T, err error) {
	return EuclideanDistance[T](v, rhs)
}

// View is a read only window over elements owned by someone else.
type View[T Float] struct {
	data []T
}

// ViewOf borrows data read only. The caller keeps ownership.
func ViewOf[T Float](data []T) View[T] {
	return View[T]{data: data[:len(data):len(data)]}
}

func (v View[T]) Len() int { return len(v.data) }

func (v View[T]) At(i int) T { return v.data[i] }

// Slice narrows the view to elements [start, end).
func (v View[T]) Slice(start, end int) View[T] {
	return View[T]{data: v.data[start:end:end]}
}

// Tensor returns a tensor sharing the viewed memory, or nil for an empty view.
func (v View[T]) Tensor() *tensor.Dense {
	if len(v.data) == 0 {
		return nil
	}
	return tensor.New(tensor.WithBacking(v.data), tensor.WithShape(len(v.data)))
}

// ToDense copies the viewed elements into an owned vector.
func (v View[T]) ToDense() Dense[T] { return New(v.data...) }

func (v View[T]) CosineSimilarity(rhs Vector[T]) (similarity T, err error) {
	return CosineSimilarity[T](v, rhs)
}

func (v View[T]) EuclideanDistance(rhs Vector[T]) (distance T, err error) {
	return EuclideanDistance[T](v, rhs)
}

// denseOf returns the elements of a non-empty vector as a tensor.
func denseOf[T Float](v Vector[T]) *tensor.Dense {
	if t, ok := v.(Tensorer); ok {
		if d := t.Tensor(); d != nil {
			return d
		}
	}
	data := make([]T, v.Len())
	for i := range data {
		data[i] = v.At(i)
	}
	return tensor.New(tensor.WithBacking(data), tensor.WithShape(len(data)))
}

// sum reduces x to a scalar, adding elements in order.
func sum[T Float](x *tensor.Dense) T {
	total, err := x.Sum()
	if err != nil {
		panic(err)
	}
	return total.ScalarValue().(T)
}
