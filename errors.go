package ternary

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the ternary package.
var (
	// ErrZeroScale is returned when the ternary sum is configured as zero.
	ErrZeroScale = errors.New("ternary: ternary sum must be non-zero")

	// ErrZeroSum is returned when a triple whose components sum to zero is
	// normalized or projected.
	ErrZeroSum = errors.New("ternary: triple components sum to zero")

	// ErrDegenerateTriangle is returned when the three corners are collinear.
	ErrDegenerateTriangle = errors.New("ternary: triangle corners are collinear")

	// ErrSingularMatrix is returned when an affine matrix cannot be inverted.
	ErrSingularMatrix = errors.New("ternary: matrix is not invertible")

	// ErrDegenerateView is returned when a view box or viewport has no area.
	ErrDegenerateView = errors.New("ternary: view box has no area")
)

// LimitError reports view limits that cannot be satisfied, either because
// a value is not finite or because an interval is empty after clamping.
type LimitError struct {
	Axis   Axis
	Limits Limits
	Reason string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("ternary: invalid %s limits [%g, %g]: %s",
		e.Axis, e.Limits[e.Axis].Min, e.Limits[e.Axis].Max, e.Reason)
}

// InvalidOptionError is returned when an enumerated option receives a value
// outside its allowed set.
type InvalidOptionError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("ternary: invalid %s %q (allowed: %s)",
		e.Option, e.Value, strings.Join(e.Allowed, ", "))
}
