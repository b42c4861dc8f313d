package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs and slices of floats, with an absolute
// tolerance suitable for the small polynomials used in tests.
var approx = cmpopts.EquateApprox(0, 1e-12)

// binomial returns n choose k.
func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

// bernstein evaluates the polynomial with the given Bézier coefficients at t,
// independently of de Casteljau.
func bernstein(coeffs []float64, t float64) float64 {
	n := len(coeffs) - 1
	var sum float64
	for i, c := range coeffs {
		b := binomial(n, i)
		for range n - i {
			b *= 1 - t
		}
		for range i {
			b *= t
		}
		sum += b * c
	}
	return sum
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}
