package spline

import "errors"

// ErrCapacityExceeded is returned when a bounded backing store cannot hold
// the physical slots required for a sequence of control points. Errors
// returned by this package wrap it with the required and available sizes; use
// [errors.Is] to test for it.
var ErrCapacityExceeded = errors.New("spline: capacity exceeded")
