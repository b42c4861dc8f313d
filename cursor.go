package spline

// Cursor is a position in the logical view of a strided sequence. It wraps a
// base position in the physical slots plus a logical offset, and addresses the
// physical slot base + stride·offset, where the stride is that of I.
//
// Cursors are values; the arithmetic methods return new cursors. All
// arithmetic is in logical units. A cursor may point one past the last logical
// element, but only cursors that point at an element may be read or written.
type Cursor[V any, I Interp] struct {
	slots  []V
	base   int
	offset int
}

// NewCursor returns a cursor at the physical position base of slots, with a
// logical offset of offset.
func NewCursor[I Interp, V any](slots []V, base, offset int) Cursor[V, I] {
	return Cursor[V, I]{slots: slots, base: base, offset: offset}
}

// Index returns the physical position the cursor addresses.
func (c Cursor[V, I]) Index() int {
	return c.base + strideOf[I]()*c.offset
}

// Value returns the element the cursor points at.
func (c Cursor[V, I]) Value() V {
	return c.slots[c.Index()]
}

// Set replaces the element the cursor points at.
func (c Cursor[V, I]) Set(v V) {
	c.slots[c.Index()] = v
}

// At returns the element n logical positions after the cursor.
func (c Cursor[V, I]) At(n int) V {
	return c.Add(n).Value()
}

// Next returns a cursor one logical position further.
func (c Cursor[V, I]) Next() Cursor[V, I] { return c.Add(1) }

// Prev returns a cursor one logical position back.
func (c Cursor[V, I]) Prev() Cursor[V, I] { return c.Add(-1) }

// Add returns a cursor n logical positions further.
func (c Cursor[V, I]) Add(n int) Cursor[V, I] {
	c.offset += n
	return c
}

// Sub returns a cursor n logical positions back.
func (c Cursor[V, I]) Sub(n int) Cursor[V, I] {
	c.offset -= n
	return c
}

// Equal reports whether c and o address the same logical position. Cursors
// built from different base and offset combinations compare equal if they
// resolve to the same position.
func (c Cursor[V, I]) Equal(o Cursor[V, I]) bool {
	return Distance(c, o) == 0
}

// Distance returns the number of logical steps from first to last. Both
// cursors must be over the same physical slots.
//
// The physical distance between the base positions is rounded to a multiple
// of the stride, away from zero, before being converted to logical units. A
// cursor based at the physical end of a sequence therefore sits one logical
// position past its last element, even though the physical end isn't on a
// stride boundary.
func Distance[V any, I Interp](first, last Cursor[V, I]) int {
	stride := strideOf[I]()
	d := last.base - first.base
	var sign int
	switch {
	case d > 0:
		sign = 1
	case d < 0:
		sign = -1
	}
	// Go's division truncates toward zero, so biasing by stride-1 in the
	// direction of d rounds away from zero.
	rounded := (d + sign*(stride-1)) / stride
	return rounded - (first.offset - last.offset)
}
