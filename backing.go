package spline

import "fmt"

// Backing describes the physical store behind a [Storage]. The two
// implementations are [*Growable] and [*Bounded]; the choice between them is
// made by the type parameter of the Storage, not at run time.
//
// A backing only sizes and allocates. Every successful resize hands out fresh
// slots that the backing keeps no reference to, so one backing may be used to
// build any number of storages.
type Backing[V any] interface {
	// resize returns size zeroed physical slots for a sequence stored at the
	// given stride. It fails with ErrCapacityExceeded if the backing can't
	// hold them.
	resize(size, stride int) ([]V, error)
	// capacity returns the number of physical slots the backing can hold at
	// the given stride, or -1 if it has no bound. It must be safe to call on
	// a nil pointer.
	capacity(stride int) int
}

var _ Backing[Point] = (*Growable[Point])(nil)
var _ Backing[Point] = (*Bounded[Point])(nil)

// Growable is a backing store that allocates exactly the required number of
// physical slots.
type Growable[V any] struct{}

// NewGrowable returns a growable backing store.
func NewGrowable[V any]() *Growable[V] {
	return &Growable[V]{}
}

func (g *Growable[V]) resize(size, stride int) ([]V, error) {
	return make([]V, size), nil
}

func (g *Growable[V]) capacity(stride int) int { return -1 }

// Bounded is a backing store with a fixed capacity of n logical control
// points. Its physical capacity depends on the stride it is used with.
type Bounded[V any] struct {
	n int
}

// NewBounded returns a bounded backing store that can hold n logical control
// points.
func NewBounded[V any](n int) *Bounded[V] {
	if n < 0 {
		panic("negative capacity")
	}
	return &Bounded[V]{n: n}
}

func (b *Bounded[V]) resize(size, stride int) ([]V, error) {
	limit := b.capacity(stride)
	if size > limit {
		return nil, fmt.Errorf("%w: need %d slots, have %d", ErrCapacityExceeded, size, limit)
	}
	return make([]V, size, limit), nil
}

func (b *Bounded[V]) capacity(stride int) int {
	if b == nil {
		return 0
	}
	return InterpSize(b.n, stride)
}
