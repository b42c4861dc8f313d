package spline

import "iter"

// Spline is a sequence of control points stored at the stride of the
// interpolation scheme I in a backing store of type B.
//
// Iteration via [Spline.Begin], [Spline.End] and [Spline.Points] visits the
// logical control points, skipping the slots reserved for interpolated
// values. [Spline.Slots] exposes all physical slots, for use as the
// destination of [Subdivide]. Spline never computes interpolated values
// itself.
//
// The zero value is an empty spline.
type Spline[V any, I Interp, B Backing[V]] struct {
	storage Storage[V, I, B]
}

// New returns a spline holding a copy of points. It fails with
// [ErrCapacityExceeded] if backing is bounded and too small, in which case
// the returned spline is empty.
//
// The interpolation scheme has to be given explicitly:
//
//	s, err := spline.New[spline.Cubic](spline.NewGrowable[spline.Point](), pts)
func New[I Interp, V any, B Backing[V]](backing B, points []V) (Spline[V, I, B], error) {
	st, err := NewStorage[I](backing, points)
	if err != nil {
		return Spline[V, I, B]{}, err
	}
	return Spline[V, I, B]{storage: *st}, nil
}

// Empty reports whether the spline has no control points.
func (s *Spline[V, I, B]) Empty() bool {
	return s.storage.Empty()
}

// Len returns the number of logical control points.
func (s *Spline[V, I, B]) Len() int {
	return Distance(s.Begin(), s.End())
}

// Begin returns a cursor at the first control point.
func (s *Spline[V, I, B]) Begin() Cursor[V, I] {
	return s.storage.Begin()
}

// End returns a cursor one past the last control point.
func (s *Spline[V, I, B]) End() Cursor[V, I] {
	return s.storage.End()
}

// Points returns an iterator over the logical control points and their
// logical indices.
func (s *Spline[V, I, B]) Points() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		end := s.End()
		for i, c := 0, s.Begin(); !c.Equal(end); i, c = i+1, c.Next() {
			if !yield(i, c.Value()) {
				return
			}
		}
	}
}

// Slots returns all physical slots. The returned slice aliases the spline.
func (s *Spline[V, I, B]) Slots() []V {
	return s.storage.Slots()
}

// PhysLen returns the number of physical slots in use.
func (s *Spline[V, I, B]) PhysLen() int {
	return s.storage.Len()
}

// Storage returns the spline's storage.
func (s *Spline[V, I, B]) Storage() *Storage[V, I, B] {
	return &s.storage
}
