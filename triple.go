package ternary

import "math"

// Triple is a ternary coordinate (t, l, r) in data units.
type Triple struct {
	T, L, R float64
}

// Tri is a convenience function to create a Triple.
func Tri(t, l, r float64) Triple {
	return Triple{T: t, L: l, R: r}
}

// At returns the component for axis a.
func (t Triple) At(a Axis) float64 {
	switch a {
	case T:
		return t.T
	case L:
		return t.L
	default:
		return t.R
	}
}

// With returns a copy of t with the component for axis a replaced by v.
func (t Triple) With(a Axis, v float64) Triple {
	switch a {
	case T:
		t.T = v
	case L:
		t.L = v
	default:
		t.R = v
	}
	return t
}

// Sum returns t+l+r.
func (t Triple) Sum() float64 {
	return t.T + t.L + t.R
}

// Mul returns t with every component multiplied by k.
func (t Triple) Mul(k float64) Triple {
	return Triple{T: t.T * k, L: t.L * k, R: t.R * k}
}

// Add returns the component-wise sum.
func (t Triple) Add(u Triple) Triple {
	return Triple{T: t.T + u.T, L: t.L + u.L, R: t.R + u.R}
}

// Neg returns -t.
func (t Triple) Neg() Triple {
	return Triple{T: -t.T, L: -t.L, R: -t.R}
}

// Normalize rescales t so that its components sum to sum.
// It fails with ErrZeroSum if the components of t sum to zero.
func (t Triple) Normalize(sum float64) (Triple, error) {
	s := t.Sum()
	if s == 0 || math.IsNaN(s) {
		return Triple{}, ErrZeroSum
	}
	return t.Mul(sum / s), nil
}

// IsFinite reports whether all components are finite numbers.
func (t Triple) IsFinite() bool {
	for _, v := range [3]float64{t.T, t.L, t.R} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
