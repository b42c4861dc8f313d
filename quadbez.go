package spline

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t using its Bernstein form.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// ControlPoints returns the curve's control polygon.
func (q QuadBez) ControlPoints() [3]Point {
	return [3]Point{q.P0, q.P1, q.P2}
}

// SubdivideAt splits the curve at t, using de Casteljau.
func (q QuadBez) SubdivideAt(t float64) (QuadBez, QuadBez) {
	in := q.ControlPoints()
	var out [5]Point
	Subdivide(out[:], in[:], t, PointSpace())
	return QuadBez{out[0], out[1], out[2]},
		QuadBez{out[2], out[3], out[4]}
}

// Subdivide splits the curve into halves.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	return q.SubdivideAt(0.5)
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}
