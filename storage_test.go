package spline

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInterpSize(t *testing.T) {
	tests := []struct {
		n, stride int
		want      int
	}{
		{0, 1, 0},
		{0, 3, 0},
		{1, 3, 1},
		{2, 3, 4},
	}
	for _, tt := range tests {
		if got := InterpSize(tt.n, tt.stride); got != tt.want {
			t.Errorf("InterpSize(%d, %d) = %d, want %d", tt.n, tt.stride, got, tt.want)
		}
	}
	for n := 1; n < 10; n++ {
		for _, stride := range []int{1, 2, 3, 4} {
			if got, want := InterpSize(n, stride), 1+(n-1)*stride; got != want {
				t.Errorf("InterpSize(%d, %d) = %d, want %d", n, stride, got, want)
			}
		}
	}
}

func TestStorageGrowable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spline")
	defer teardown()

	for n := 0; n < 6; n++ {
		pts := make([]float64, n)
		for i := range pts {
			pts[i] = float64(i + 1)
		}
		s, err := NewStorage[Cubic](NewGrowable[float64](), pts)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := s.Len(), InterpSize(n, 3); got != want {
			t.Errorf("n=%d: got %d slots, want %d", n, got, want)
		}
		if got := s.Cap(); got != s.Len() {
			t.Errorf("n=%d: got capacity %d, want %d", n, got, s.Len())
		}
		if s.Empty() != (n == 0) {
			t.Errorf("n=%d: got Empty = %t", n, s.Empty())
		}

		// Original points at multiples of the stride, zero in between.
		want := make([]float64, InterpSize(n, 3))
		for i, p := range pts {
			want[3*i] = p
		}
		diff(t, want, s.Slots())
		if d := Distance(s.Begin(), s.End()); d != n {
			t.Errorf("n=%d: got distance %d", n, d)
		}
	}
}

func TestStorageRoundTrip(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, -1)}
	s, err := NewStorage[Cubic](NewGrowable[Point](), pts)
	if err != nil {
		t.Fatal(err)
	}

	var got []Point
	for c := s.Begin(); !c.Equal(s.End()); c = c.Next() {
		got = append(got, c.Value())
	}
	diff(t, pts, got)

	// The storage has its own copy.
	pts[0] = Pt(100, 100)
	diff(t, Pt(0, 0), s.Begin().Value())
}

func TestStorageReverse(t *testing.T) {
	pts := []int{10, 20, 30}
	s, err := NewStorage[Cubic](NewGrowable[int](), pts)
	if err != nil {
		t.Fatal(err)
	}

	last := s.End().Prev()
	diff(t, 30, last.Value())
	diff(t, s.Begin().Add(2).Index(), last.Index())

	var got []int
	for c := s.End(); !c.Equal(s.Begin()); {
		c = c.Prev()
		got = append(got, c.Value())
	}
	diff(t, []int{30, 20, 10}, got)
}

func TestStorageBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spline")
	defer teardown()

	check := func(name string, gotLen, gotCap, wantLen, wantCap int) {
		t.Helper()
		if gotLen != wantLen || gotCap != wantCap {
			t.Errorf("%s: got len %d, cap %d, want len %d, cap %d", name, gotLen, gotCap, wantLen, wantCap)
		}
	}

	s, err := NewStorage[Cubic](NewBounded[float64](3), []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	check("cubic/3", s.Len(), s.Cap(), 7, 7)
	diff(t, []float64{1, 0, 0, 2, 0, 0, 3}, s.Slots())

	s, err = NewStorage[Cubic](NewBounded[float64](3), []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	check("cubic/2", s.Len(), s.Cap(), 4, 7)

	sl, err := NewStorage[Linear](NewBounded[float64](3), []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	check("linear/2", sl.Len(), sl.Cap(), 2, 3)
	diff(t, []float64{1, 2}, sl.Slots())
}

func TestStorageBoundedOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spline")
	defer teardown()

	b := NewBounded[float64](2)
	s, err := NewStorage[Cubic](b, []float64{1, 2, 3})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("got error %v, want %v", err, ErrCapacityExceeded)
	}
	if s != nil {
		t.Errorf("got storage %v for failed construction", s)
	}
	if !strings.Contains(err.Error(), "need 7 slots, have 4") {
		t.Errorf("unexpected error message %q", err)
	}

	// A failed construction leaves the backing usable.
	s, err = NewStorage[Cubic](b, []float64{4, 5})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{4, 0, 0, 5}, s.Slots())
}

func TestStorageSharedBacking(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		b := NewBounded[int](3)
		s1, err := NewStorage[Cubic](b, []int{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		s1.Slots()[1] = 9

		s2, err := NewStorage[Cubic](b, []int{7, 8})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, []int{7, 0, 0, 8}, s2.Slots())
		diff(t, []int{1, 9, 0, 2, 0, 0, 3}, s1.Slots())

		s2.Slots()[0] = -1
		diff(t, 1, s1.Begin().Value())
	})
	t.Run("growable", func(t *testing.T) {
		g := NewGrowable[int]()
		s1, err := New[Linear](g, []int{1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		s2, err := New[Linear](g, []int{4})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, []int{1, 2, 3}, collect(&s1))
		diff(t, []int{4}, collect(&s2))
	})
}

func TestStorageZeroValue(t *testing.T) {
	var s Storage[Point, Cubic, *Bounded[Point]]
	if !s.Empty() || s.Len() != 0 || s.Cap() != 0 {
		t.Errorf("zero storage: got Empty = %t, Len = %d, Cap = %d", s.Empty(), s.Len(), s.Cap())
	}
	if !s.Begin().Equal(s.End()) {
		t.Error("zero storage: Begin and End differ")
	}

	var g Storage[Point, Linear, *Growable[Point]]
	if g.Cap() != 0 {
		t.Errorf("zero growable storage: got Cap = %d, want 0", g.Cap())
	}
}
