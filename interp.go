package spline

// Interp is an interpolation scheme. It determines the stride at which a
// [Storage] places control points, reserving stride-1 slots between each pair
// of consecutive points for interpolated values.
//
// Implementations are zero-size types used as type parameters; Stride must
// return the same positive value on every call.
type Interp interface {
	Stride() int
}

// Linear is the interpolation scheme without padding. Control points are
// stored contiguously.
type Linear struct{}

// Cubic reserves two slots between consecutive control points, holding the
// inner control points of a cubic Bézier segment.
type Cubic struct{}

func (Linear) Stride() int { return 1 }
func (Cubic) Stride() int  { return 3 }

// strideOf returns the stride of the scheme I.
func strideOf[I Interp]() int {
	var interp I
	return interp.Stride()
}

// InterpSize returns the number of physical slots needed to store n control
// points at the given stride: 1 + (n-1)·stride, or 0 if n is 0.
func InterpSize(n, stride int) int {
	if n == 0 {
		return 0
	}
	return 1 + (n-1)*stride
}
