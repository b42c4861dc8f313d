package spline

// Storage holds a sequence of control points at the stride of the
// interpolation scheme I, in physical slots sized by a [Backing].
//
// The original control points live at physical positions 0, stride,
// 2·stride, …; the slots between them are reserved for interpolated values
// and are zero until the caller fills them, typically with [Subdivide].
//
// A Storage exclusively owns its slots. The zero value is an empty Storage.
type Storage[V any, I Interp, B Backing[V]] struct {
	backing B
	slots   []V
	n       int
}

// NewStorage returns a Storage holding a copy of points, placed at the stride
// of I. It fails with [ErrCapacityExceeded] if backing is bounded and cannot
// hold the required number of physical slots; in that case no storage is
// returned.
func NewStorage[I Interp, V any, B Backing[V]](backing B, points []V) (*Storage[V, I, B], error) {
	stride := strideOf[I]()
	size := InterpSize(len(points), stride)
	slots, err := backing.resize(size, stride)
	if err != nil {
		tracer().Errorf("cannot store %d points at stride %d: %v", len(points), stride, err)
		return nil, err
	}
	tracer().Debugf("storing %d points in %d physical slots, stride %d", len(points), size, stride)

	s := &Storage[V, I, B]{
		backing: backing,
		slots:   slots,
		n:       len(points),
	}
	c := s.Begin()
	for _, p := range points {
		c.Set(p)
		c = c.Next()
	}
	return s, nil
}

// Empty reports whether the storage holds no control points.
func (s *Storage[V, I, B]) Empty() bool {
	return s.n == 0
}

// Len returns the number of physical slots in use.
func (s *Storage[V, I, B]) Len() int {
	return len(s.slots)
}

// Cap returns the number of physical slots the storage can hold. For a
// [Bounded] backing this is its static capacity; with a [Growable] backing it
// is the size of the current allocation.
func (s *Storage[V, I, B]) Cap() int {
	if n := s.backing.capacity(strideOf[I]()); n >= 0 {
		return n
	}
	return cap(s.slots)
}

// Slots returns the physical slots, original control points and reserved
// slots alike. The returned slice aliases the storage.
func (s *Storage[V, I, B]) Slots() []V {
	return s.slots
}

// Begin returns a cursor at the first control point.
func (s *Storage[V, I, B]) Begin() Cursor[V, I] {
	return NewCursor[I](s.slots, 0, 0)
}

// End returns a cursor one logical position past the last control point.
// Stepping back from it with [Cursor.Prev] reaches the last control point.
func (s *Storage[V, I, B]) End() Cursor[V, I] {
	return NewCursor[I](s.slots, 0, s.n)
}
