package ternary

import (
	"fmt"
	"math"
)

// limitTolerance absorbs rounding when checking min <= max after clamping.
const limitTolerance = 1e-12

// Interval is a closed range of one ternary axis in data units.
type Interval struct {
	Min, Max float64
}

// Span returns Max-Min.
func (iv Interval) Span() float64 { return iv.Max - iv.Min }

// Limits are the view limits of the three ternary axes, indexed by Axis.
type Limits [3]Interval

// FullLimits returns the limits showing the whole triangle for sum s.
func FullLimits(s float64) Limits {
	return Limits{{0, s}, {0, s}, {0, s}}
}

// selectMin returns the smaller value in the orientation of sum s:
// the arithmetic minimum for s > 0, the maximum for s < 0.
func selectMin(a, b, s float64) float64 {
	if s < 0 {
		return math.Max(a, b)
	}
	return math.Min(a, b)
}

// selectMax is the counterpart of selectMin.
func selectMax(a, b, s float64) float64 {
	if s < 0 {
		return math.Min(a, b)
	}
	return math.Max(a, b)
}

// ordered reports a <= b in the orientation of sum s, within tol.
func ordered(a, b, s, tol float64) bool {
	if s < 0 {
		return a >= b-tol
	}
	return a <= b+tol
}

// Oriented returns lim with each interval swapped where its span has the
// opposite sign to s.
func (lim Limits) Oriented(s float64) Limits {
	for i, iv := range lim {
		if iv.Span()*s < 0 {
			lim[i] = Interval{Min: iv.Max, Max: iv.Min}
		}
	}
	return lim
}

// Clamp restricts each bound by the sum constraint of the other two axes so
// that every extreme of every axis is reachable:
//
//	min_i = selectMax(min_i, s - max_j - max_k)
//	max_i = selectMin(max_i, s - min_j - min_k)
//
// All six bounds are computed from the input simultaneously.
func (lim Limits) Clamp(s float64) Limits {
	var out Limits
	for _, a := range allAxes {
		j, k := a.next(1), a.next(2)
		out[a] = Interval{
			Min: selectMax(lim[a].Min, s-lim[j].Max-lim[k].Max, s),
			Max: selectMin(lim[a].Max, s-lim[j].Min-lim[k].Min, s),
		}
	}
	return out
}

// Validate checks that all bounds are finite and every interval is
// non-empty in the orientation of s.
func (lim Limits) Validate(s float64) error {
	for _, a := range allAxes {
		iv := lim[a]
		for _, v := range [2]float64{iv.Min, iv.Max} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &LimitError{Axis: a, Limits: lim, Reason: "bound is not finite"}
			}
		}
		tol := limitTolerance * math.Max(1, math.Abs(s))
		if !ordered(iv.Min, iv.Max, s, tol) {
			return &LimitError{Axis: a, Limits: lim,
				Reason: fmt.Sprintf("empty after applying the sum constraint %g", s)}
		}
	}
	return nil
}

// Mins returns the minimum of every axis as a triple.
func (lim Limits) Mins() Triple {
	return Triple{T: lim[T].Min, L: lim[L].Min, R: lim[R].Min}
}

// Maxes returns the maximum of every axis as a triple.
func (lim Limits) Maxes() Triple {
	return Triple{T: lim[T].Max, L: lim[L].Max, R: lim[R].Max}
}

// Scaled returns lim with every bound multiplied by k.
func (lim Limits) Scaled(k float64) Limits {
	for i := range lim {
		lim[i].Min *= k
		lim[i].Max *= k
	}
	return lim
}

// Hexagon returns the six vertices of the visible region in cyclic order:
// tmax/lmin, tmax/rmin, lmax/rmin, lmax/tmin, rmax/tmin, rmax/lmin. The
// third component of each vertex follows from the sum s. Consecutive
// vertices share an edge; at full limits pairs of vertices coincide at the
// triangle corners.
func (lim Limits) Hexagon(s float64) [6]Triple {
	var out [6]Triple
	for n, a := range allAxes {
		j, k := a.next(1), a.next(2)
		mx := lim[a].Max
		// a at max, k at min; then a at max, j at min.
		out[2*n] = Triple{}.With(a, mx).With(k, lim[k].Min).With(j, s-mx-lim[k].Min)
		out[2*n+1] = Triple{}.With(a, mx).With(j, lim[j].Min).With(k, s-mx-lim[j].Min)
	}
	// Reorder to tmax/lmin, tmax/rmin, lmax/rmin, lmax/tmin, rmax/tmin, rmax/lmin.
	return [6]Triple{out[1], out[0], out[3], out[2], out[5], out[4]}
}

// MinTriangle returns the triangle spanned by the three minimums: vertex a
// has every other axis at its minimum and axis a at the remainder of s.
// Ticks are laid out along its edges.
func (lim Limits) MinTriangle(s float64) [3]Triple {
	var out [3]Triple
	for _, a := range allAxes {
		j, k := a.next(1), a.next(2)
		out[a] = Triple{}.With(j, lim[j].Min).With(k, lim[k].Min).With(a, s-lim[j].Min-lim[k].Min)
	}
	return out
}

// TickHeight returns the data span from an axis minimum to the apex of the
// tick triangle, s minus the three minimums.
func (lim Limits) TickHeight(s float64) float64 {
	return s - lim[T].Min - lim[L].Min - lim[R].Min
}

// Contains reports whether t lies inside the limits, within tol.
func (lim Limits) Contains(t Triple, s, tol float64) bool {
	for _, a := range allAxes {
		v := t.At(a)
		if !ordered(lim[a].Min, v, s, tol) || !ordered(v, lim[a].Max, s, tol) {
			return false
		}
	}
	return true
}

// Gridline returns the end points of the line where axis a equals v,
// clipped to the limits. ok is false when the line misses the visible region.
func (lim Limits) Gridline(a Axis, v, s float64) (from, to Triple, ok bool) {
	j, k := a.next(1), a.next(2)
	lo := selectMax(lim[j].Min, s-v-lim[k].Max, s)
	hi := selectMin(lim[j].Max, s-v-lim[k].Min, s)
	tol := limitTolerance * math.Max(1, math.Abs(s))
	if !ordered(lo, hi, s, tol) ||
		!ordered(lim[a].Min, v, s, tol) || !ordered(v, lim[a].Max, s, tol) {
		return Triple{}, Triple{}, false
	}
	from = Triple{}.With(a, v).With(j, lo).With(k, s-v-lo)
	to = Triple{}.With(a, v).With(j, hi).With(k, s-v-hi)
	return from, to, true
}
