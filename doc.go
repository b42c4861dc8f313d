// Package spline evaluates and subdivides polynomial curves given by their
// control points, and stores control points together with the interpolated
// points inserted between them.
//
// The package is generic over the coordinate type. Anything that supports
// scalar multiplication and vector addition can serve as a control point: 2D
// and 3D points, complex numbers, N-dimensional vectors, or plain floats.
//
// # Vector spaces
//
// A [Space] bundles the two operations the algorithms need, as typed function
// values. Mismatched operator signatures don't compile. The package provides
// spaces for its own [Point] and [Vec2] types, for complex numbers
// ([ComplexSpace]), for floats ([FloatSpace]), for gonum's r2 and r3 vectors
// ([R2Space], [R3Space]), for float slices ([SliceSpace]), and for any type
// with suitable methods ([VectorSpace], [ScaleSpace]).
//
// # Subdivision
//
// [Subdivide] implements de Casteljau's algorithm. Given n control points and
// a parameter t, it computes the point on the curve at t and, in the same
// pass, the control points of the two curves the original splits into at t.
// All 2n-1 results are written to a single destination slice, without
// allocating:
//
//	dst[0:n]      control points of the curve on [0, t]
//	dst[n-1]      the point at t
//	dst[n-1:2n-1] control points of the curve on [t, 1]
//
// The destination must be large enough; see [SubdivisionLen]. [Line],
// [QuadBez] and [CubicBez] use Subdivide to split themselves.
//
// # Strided storage
//
// A [Storage] stores control points at a fixed stride, determined by an
// interpolation scheme ([Linear], [Cubic]), leaving room between consecutive
// points for interpolated values. n points occupy [InterpSize](n, stride)
// physical slots. The physical slots come from a [Backing]: [Growable] grows
// as needed, [Bounded] has a fixed capacity and makes construction fail with
// [ErrCapacityExceeded] when it is too small.
//
// A [Cursor] walks the logical view of a storage, skipping the reserved slots.
// [Spline] combines a storage with logical and physical iteration:
//
//	pts := []spline.Point{spline.Pt(0, 0), spline.Pt(1, 1), spline.Pt(2, 0)}
//	s, err := spline.New[spline.Cubic](spline.NewGrowable[spline.Point](), pts)
//	if err != nil {
//		return err
//	}
//	for i, p := range s.Points() {
//		fmt.Println(i, p)
//	}
//	fmt.Println(len(s.Slots())) // 7
//
// # Tracing
//
// Storage construction traces through github.com/npillmayer/schuko/tracing,
// with key "spline". Nothing is traced unless the application configures a
// tracer. Subdivision never traces.
package spline
