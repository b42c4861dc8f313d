package spline

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// SubdivisionLen returns the number of values [Subdivide] writes for n control
// points: 2n-1, or 0 if n is 0.
func SubdivisionLen(n int) int {
	if n == 0 {
		return 0
	}
	return 2*n - 1
}

// Subdivide evaluates the polynomial curve with the given control points at t,
// using de Casteljau's algorithm, and splits it at t into two curves of the
// same degree.
//
// For n control points, it writes 2n-1 values to dst and returns their number.
// dst[0:n] holds the control points of the curve on [0, t], dst[n-1:2n-1]
// holds the control points of the curve on [t, 1], and dst[n-1], shared by
// both, is the point on the curve at t. dst[0] and dst[2n-2] are the first and
// last of the original control points.
//
// dst must have a capacity of at least 2n-1; Subdivide panics otherwise.
// Subdivide doesn't allocate, and t isn't restricted to [0, 1].
func Subdivide[S constraints.Float, V any](dst, points []V, t S, sp Space[S, V]) int {
	if len(points) == 0 {
		return 0
	}
	dst = dst[:SubdivisionLen(len(points))]
	n := copy(dst, points)
	subdivide(dst, n, t, sp)
	return len(dst)
}

// SubdivideSeq is like [Subdivide] but reads the control points from an
// iterator, which is consumed once.
func SubdivideSeq[S constraints.Float, V any](dst []V, points iter.Seq[V], t S, sp Space[S, V]) int {
	dst = dst[:cap(dst)]
	n := 0
	for p := range points {
		dst[n] = p
		n++
	}
	if n == 0 {
		return 0
	}
	dst = dst[:SubdivisionLen(n)]
	subdivide(dst, n, t, sp)
	return len(dst)
}

// Eval returns the point at t on the curve with the given control points. It
// uses dst, which must have a capacity of at least 2n-1, as scratch space; on
// return, dst holds the subdivided control points as described for
// [Subdivide].
//
// Eval returns the zero value if there are no control points.
func Eval[S constraints.Float, V any](dst, points []V, t S, sp Space[S, V]) V {
	if len(points) == 0 {
		return *new(V)
	}
	Subdivide(dst, points, t, sp)
	return dst[len(points)-1]
}

// subdivide runs de Casteljau's recurrence on the n control points stored in
// dst[0:n]. len(dst) must be 2n-1.
func subdivide[S constraints.Float, V any](dst []V, n int, t S, sp Space[S, V]) {
	// dst: [b₀⁰, b₁⁰, …, bₘ⁰, _, …, _, bₘ⁰], with m = n-1
	mid := n - 1
	dst[len(dst)-1] = dst[mid]

	// Row k+1 of the pyramid replaces dst[k+1:n]; dst[k] keeps b₀ᵏ, which
	// belongs to the left curve. The last value of each row, now in
	// dst[mid], belongs to the right curve and fills the tail from the back.
	for k := 0; k < mid; k++ {
		prev := dst[k]
		for j := k + 1; j <= mid; j++ {
			cur := dst[j]
			dst[j] = sp.Lerp(prev, cur, t)
			prev = cur
		}
		dst[2*mid-1-k] = dst[mid]
	}
}
