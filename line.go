package spline

// Line is a line segment, the Bézier curve of degree 1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// ControlPoints returns the line's end points.
func (l Line) ControlPoints() [2]Point {
	return [2]Point{l.P0, l.P1}
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// SubdivideAt splits the line at t.
func (l Line) SubdivideAt(t float64) (Line, Line) {
	in := l.ControlPoints()
	var out [3]Point
	Subdivide(out[:], in[:], t, PointSpace())
	return Line{out[0], out[1]}, Line{out[1], out[2]}
}

// Subdivide splits the line into halves.
func (l Line) Subdivide() (Line, Line) {
	return l.SubdivideAt(0.5)
}
