package elementwise

import (
	"math"
	"slices"
	"testing"

	"gorgonia.org/tensor"
)

func vector[T Float](values ...T) *tensor.Dense {
	return tensor.New(tensor.WithBacking(slices.Clone(values)), tensor.WithShape(len(values)))
}

func backends64() map[string]Math[float64] {
	return map[string]Math[float64]{
		"native":  Native[float64]{},
		"mapped":  Mapped[float64]{},
		"legacy":  Adapt[float64](Legacy[float64]{}),
		"default": Default[float64](),
	}
}

func TestPowI(t *testing.T) {
	for name, m := range backends64() {
		t.Run(name, func(t *testing.T) {
			x := vector(1.0, -2.0, 3.0, 0.0)

			squared, err := m.PowI(x, 2)
			if err != nil {
				t.Fatalf("PowI(2): %v", err)
			}
			if got, want := squared.Data().([]float64), []float64{1, 4, 9, 0}; !slices.Equal(got, want) {
				t.Errorf("PowI(2) = %v, want %v", got, want)
			}

			cubed, err := m.PowI(x, 3)
			if err != nil {
				t.Fatalf("PowI(3): %v", err)
			}
			if got, want := cubed.Data().([]float64), []float64{1, -8, 27, 0}; !slices.Equal(got, want) {
				t.Errorf("PowI(3) = %v, want %v", got, want)
			}
		})
	}
}

func TestPowF(t *testing.T) {
	for name, m := range backends64() {
		t.Run(name, func(t *testing.T) {
			out, err := m.PowF(vector(4.0, 9.0, 16.0), 0.5)
			if err != nil {
				t.Fatalf("PowF: %v", err)
			}
			if got, want := out.Data().([]float64), []float64{2, 3, 4}; !slices.Equal(got, want) {
				t.Errorf("PowF(0.5) = %v, want %v", got, want)
			}
		})
	}
}

func TestSqrt(t *testing.T) {
	for name, m := range backends64() {
		t.Run(name, func(t *testing.T) {
			out, err := m.Sqrt(vector(0.0, 1.0, 2.0, 4.0))
			if err != nil {
				t.Fatalf("Sqrt: %v", err)
			}
			if got, want := out.Data().([]float64), []float64{0, 1, math.Sqrt2, 2}; !slices.Equal(got, want) {
				t.Errorf("Sqrt = %v, want %v", got, want)
			}
		})
	}
}

func TestFloat32(t *testing.T) {
	backends := map[string]Math[float32]{
		"native": Native[float32]{},
		"mapped": Mapped[float32]{},
		"legacy": Adapt[float32](Legacy[float32]{}),
	}
	for name, m := range backends {
		t.Run(name, func(t *testing.T) {
			squared, err := m.PowI(vector[float32](3, 4), 2)
			if err != nil {
				t.Fatalf("PowI: %v", err)
			}
			if got, want := squared.Data().([]float32), []float32{9, 16}; !slices.Equal(got, want) {
				t.Errorf("PowI(2) = %v, want %v", got, want)
			}
			root, err := m.Sqrt(squared)
			if err != nil {
				t.Fatalf("Sqrt: %v", err)
			}
			if got, want := root.Data().([]float32), []float32{3, 4}; !slices.Equal(got, want) {
				t.Errorf("Sqrt = %v, want %v", got, want)
			}
		})
	}
}

func TestNoAliasing(t *testing.T) {
	for name, m := range backends64() {
		t.Run(name, func(t *testing.T) {
			backing := []float64{2, 3}
			x := tensor.New(tensor.WithBacking(backing), tensor.WithShape(2))

			if _, err := m.PowI(x, 2); err != nil {
				t.Fatalf("PowI: %v", err)
			}
			if _, err := m.PowF(x, 3); err != nil {
				t.Fatalf("PowF: %v", err)
			}
			if _, err := m.Sqrt(x); err != nil {
				t.Fatalf("Sqrt: %v", err)
			}
			if !slices.Equal(backing, []float64{2, 3}) {
				t.Errorf("input modified: %v", backing)
			}
		})
	}
}

type sqrtOnly struct {
	Legacy[float64]
	calls *int
}

func (s sqrtOnly) Sqrt(x *tensor.Dense) (*tensor.Dense, error) {
	*s.calls++
	return Native[float64]{}.Sqrt(x)
}

func TestAdapt(t *testing.T) {
	t.Run("keeps full backends", func(t *testing.T) {
		if _, ok := Adapt[float64](Native[float64]{}).(Native[float64]); !ok {
			t.Error("Adapt wrapped a backend that already implements Math")
		}
	})

	t.Run("fills missing operations", func(t *testing.T) {
		m := Adapt[float64](Legacy[float64]{})
		a, ok := m.(adapted[float64])
		if !ok {
			t.Fatalf("Adapt(Legacy) = %T, want adapted", m)
		}
		if _, ok := a.FloatPower.(Mapped[float64]); !ok {
			t.Errorf("FloatPower = %T, want Mapped", a.FloatPower)
		}
		if _, ok := a.Sqrter.(Mapped[float64]); !ok {
			t.Errorf("Sqrter = %T, want Mapped", a.Sqrter)
		}
	})

	t.Run("prefers native sqrt", func(t *testing.T) {
		calls := 0
		m := Adapt[float64](sqrtOnly{calls: &calls})
		if _, err := m.Sqrt(vector(4.0)); err != nil {
			t.Fatalf("Sqrt: %v", err)
		}
		if calls != 1 {
			t.Errorf("native Sqrt called %d times, want 1", calls)
		}
	})
}

func TestScalars(t *testing.T) {
	if got := PowIScalar(3.0, 0); got != 1 {
		t.Errorf("PowIScalar(3, 0) = %v", got)
	}
	if got := PowIScalar(2.0, 10); got != 1024 {
		t.Errorf("PowIScalar(2, 10) = %v", got)
	}
	if got := PowIScalar(2.0, -2); got != 0.25 {
		t.Errorf("PowIScalar(2, -2) = %v", got)
	}
	if got := PowIScalar[float32](-3, 3); got != -27 {
		t.Errorf("PowIScalar(-3, 3) = %v", got)
	}
	if got := PowFScalar[float32](8, 1.0/3); math.Abs(float64(got-2)) > 1e-6 {
		t.Errorf("PowFScalar(8, 1/3) = %v", got)
	}
	if got := SqrtScalar(4608.0); got != 67.88225099390856 {
		t.Errorf("SqrtScalar(4608) = %v", got)
	}
	if got := SqrtScalar[float32](-1); !math.IsNaN(float64(got)) {
		t.Errorf("SqrtScalar(-1) = %v, want NaN", got)
	}
}
