package spline

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Space describes the vector space a control point type lives in: scalar
// multiplication and vector addition. It is all [Subdivide] needs to know
// about V.
//
// The operators are typed fields, so an operator pair whose signatures don't
// match (S, V) → V and (V, V) → V is rejected by the compiler.
type Space[S constraints.Float, V any] struct {
	// Mul multiplies v by the scalar s. The scalar is always the left operand.
	Mul func(s S, v V) V
	// Add adds two vectors.
	Add func(a, b V) V
}

// Lerp linearly interpolates between a and b, computing (1-t)·a + t·b.
//
// a is the earlier of the two points. The order of operands is fixed so that
// non-commutative vector types behave predictably.
func (sp Space[S, V]) Lerp(a, b V, t S) V {
	return sp.Add(sp.Mul(1-t, a), sp.Mul(t, b))
}

// Vector is implemented by vector types whose methods provide scalar
// multiplication and addition, such as [Vec2].
type Vector[S constraints.Float, V any] interface {
	Mul(s S) V
	Add(o V) V
}

// Scaler is implemented by vector types that call scalar multiplication
// Scale, such as the coordinate types of github.com/unixpickle/model3d.
type Scaler[S constraints.Float, V any] interface {
	Scale(s S) V
	Add(o V) V
}

// VectorSpace returns the space of a type implementing [Vector].
func VectorSpace[S constraints.Float, V Vector[S, V]]() Space[S, V] {
	return Space[S, V]{
		Mul: func(s S, v V) V { return v.Mul(s) },
		Add: func(a, b V) V { return a.Add(b) },
	}
}

// ScaleSpace returns the space of a type implementing [Scaler].
func ScaleSpace[S constraints.Float, V Scaler[S, V]]() Space[S, V] {
	return Space[S, V]{
		Mul: func(s S, v V) V { return v.Scale(s) },
		Add: func(a, b V) V { return a.Add(b) },
	}
}

// FloatSpace returns the one-dimensional space of a floating point type, for
// polynomials with scalar coefficients.
func FloatSpace[F constraints.Float]() Space[F, F] {
	return Space[F, F]{
		Mul: func(s F, v F) F { return s * v },
		Add: func(a, b F) F { return a + b },
	}
}

// ComplexSpace returns the space of complex128 values over float64 scalars.
// It treats the complex plane as ℝ².
func ComplexSpace() Space[float64, complex128] {
	return Space[float64, complex128]{
		Mul: func(s float64, v complex128) complex128 { return complex(s, 0) * v },
		Add: func(a, b complex128) complex128 { return a + b },
	}
}

// Complex64Space is like [ComplexSpace] but for complex64 values over float32
// scalars.
func Complex64Space() Space[float32, complex64] {
	return Space[float32, complex64]{
		Mul: func(s float32, v complex64) complex64 { return complex(s, 0) * v },
		Add: func(a, b complex64) complex64 { return a + b },
	}
}

// PointSpace returns the space of [Point]. Points are not vectors, but the
// affine combinations that De Casteljau's algorithm computes are well defined.
func PointSpace() Space[float64, Point] {
	return Space[float64, Point]{
		Mul: func(s float64, p Point) Point { return Point{X: s * p.X, Y: s * p.Y} },
		Add: func(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} },
	}
}

// R2Space returns the space of gonum's two-dimensional vectors.
func R2Space() Space[float64, r2.Vec] {
	return Space[float64, r2.Vec]{Mul: r2.Scale, Add: r2.Add}
}

// R3Space returns the space of gonum's three-dimensional vectors.
func R3Space() Space[float64, r3.Vec] {
	return Space[float64, r3.Vec]{Mul: r3.Scale, Add: r3.Add}
}

// SliceSpace returns the space of N-dimensional vectors stored as float64
// slices. All vectors in a computation must have the same length.
//
// Unlike the other spaces, every operation allocates a new slice, as slices
// are reference types and the operands must not be modified.
func SliceSpace() Space[float64, []float64] {
	return Space[float64, []float64]{
		Mul: func(s float64, v []float64) []float64 {
			return floats.ScaleTo(make([]float64, len(v)), s, v)
		},
		Add: func(a, b []float64) []float64 {
			return floats.AddTo(make([]float64, len(a)), a, b)
		},
	}
}
