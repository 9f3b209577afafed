package ternary

import "math"

// Transform is an invertible mapping between two coordinate spaces.
// Apply maps In to Out and Invert maps back; every transform in this package
// supplies both directions so that display-space gestures can be carried
// back to ternary limits.
type Transform[In, Out any] interface {
	Apply(in In) Out
	Invert(out Out) In
}

type composed[A, B, C any] struct {
	first  Transform[A, B]
	second Transform[B, C]
}

func (c composed[A, B, C]) Apply(a A) C  { return c.second.Apply(c.first.Apply(a)) }
func (c composed[A, B, C]) Invert(x C) A { return c.first.Invert(c.second.Invert(x)) }

// Compose returns the transform that applies first and then second.
// Its inverse applies the inverses in reverse order. Composition is
// associative.
func Compose[A, B, C any](first Transform[A, B], second Transform[B, C]) Transform[A, C] {
	return composed[A, B, C]{first: first, second: second}
}

type chain[T any] []Transform[T, T]

func (c chain[T]) Apply(v T) T {
	for _, t := range c {
		v = t.Apply(v)
	}
	return v
}

func (c chain[T]) Invert(v T) T {
	for i := len(c) - 1; i >= 0; i-- {
		v = c[i].Invert(v)
	}
	return v
}

// Chain composes same-space transforms in order. An empty chain is the
// identity.
func Chain[T any](ts ...Transform[T, T]) Transform[T, T] {
	return chain[T](append([]Transform[T, T](nil), ts...))
}

type inverted[A, B any] struct {
	t Transform[A, B]
}

func (i inverted[A, B]) Apply(b B) A  { return i.t.Invert(b) }
func (i inverted[A, B]) Invert(a A) B { return i.t.Apply(a) }

// Inverse returns t with its directions swapped.
func Inverse[A, B any](t Transform[A, B]) Transform[B, A] {
	if i, ok := t.(inverted[B, A]); ok {
		return i.t
	}
	return inverted[A, B]{t: t}
}

// ScaleTransform divides triples by the ternary sum; its inverse multiplies.
type ScaleTransform struct {
	sum float64
}

// NewScaleTransform returns the transform for ternary sum s.
// It fails with ErrZeroScale if s is zero or not finite.
func NewScaleTransform(s float64) (ScaleTransform, error) {
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return ScaleTransform{}, ErrZeroScale
	}
	return ScaleTransform{sum: s}, nil
}

// Sum returns the ternary sum.
func (s ScaleTransform) Sum() float64 { return s.sum }

// Apply implements Transform.
func (s ScaleTransform) Apply(t Triple) Triple { return t.Mul(1 / s.sum) }

// Invert implements Transform.
func (s ScaleTransform) Invert(t Triple) Triple { return t.Mul(s.sum) }

// BarycentricTransform maps triples to the weighted combination of the
// triangle corners. Apply first normalizes the triple to sum 1; a triple
// whose components sum to zero yields NaN coordinates, so callers holding
// unchecked data go through Axes.Project instead.
type BarycentricTransform struct {
	corners [3]Point
	// inverse of the 2x2 matrix with columns L-T and R-T
	i00, i01, i10, i11 float64
}

// NewBarycentricTransform builds the projection onto tri.
// It fails with ErrDegenerateTriangle if the corners are collinear.
func NewBarycentricTransform(tri Triangle) (*BarycentricTransform, error) {
	c := tri.corners
	u := c[1].Sub(c[0])
	v := c[2].Sub(c[0])
	det := u.Cross(v)
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, ErrDegenerateTriangle
	}
	return &BarycentricTransform{
		corners: c,
		i00:     v.Y / det,
		i01:     -v.X / det,
		i10:     -u.Y / det,
		i11:     u.X / det,
	}, nil
}

// Corners returns the corners in T, L, R order.
func (b *BarycentricTransform) Corners() [3]Point { return b.corners }

// Apply implements Transform.
func (b *BarycentricTransform) Apply(t Triple) Point {
	s := t.Sum()
	wt, wl, wr := t.T/s, t.L/s, t.R/s
	c := b.corners
	return Point{
		X: wt*c[0].X + wl*c[1].X + wr*c[2].X,
		Y: wt*c[0].Y + wl*c[1].Y + wr*c[2].Y,
	}
}

// Invert implements Transform. The result sums to 1.
func (b *BarycentricTransform) Invert(p Point) Triple {
	d := p.Sub(b.corners[0])
	wl := b.i00*d.X + b.i01*d.Y
	wr := b.i10*d.X + b.i11*d.Y
	return Triple{T: 1 - wl - wr, L: wl, R: wr}
}

// AffineTransform is a Matrix with its precomputed inverse.
type AffineTransform struct {
	m, inv Matrix
}

// NewAffineTransform fails with ErrSingularMatrix if m cannot be inverted.
func NewAffineTransform(m Matrix) (AffineTransform, error) {
	inv, err := m.Invert()
	if err != nil {
		return AffineTransform{}, err
	}
	return AffineTransform{m: m, inv: inv}, nil
}

// Matrix returns the forward matrix.
func (a AffineTransform) Matrix() Matrix { return a.m }

// Apply implements Transform.
func (a AffineTransform) Apply(p Point) Point { return a.m.TransformPoint(p) }

// Invert implements Transform.
func (a AffineTransform) Invert(p Point) Point { return a.inv.TransformPoint(p) }

// AxisTransform maps (value, side) for one ternary axis onto the reference
// plane. X is the axis value in data units, Y selects the edge: 0 is the
// tick1 edge joining the axis corner with the next corner, 1 is the tick2
// edge joining it with the corner after that. Values between min and the
// tick-triangle apex are spread over the tick triangle, whose corners are
// supplied in T, L, R order.
type AxisTransform struct {
	axis    Axis
	corners [3]Point // rolled: axis, axis+1, axis+2
	min     float64
	height  float64
	tri     *BarycentricTransform
}

// NewAxisTransform builds the per-axis transform for axis a over the tick
// triangle corners. min is the axis minimum and height the data span from
// min to the apex. A zero height collapses every input onto the axis corner.
func NewAxisTransform(a Axis, corners [3]Point, min, height float64) (*AxisTransform, error) {
	rolled := [3]Point{corners[a], corners[a.next(1)], corners[a.next(2)]}
	tri, err := NewBarycentricTransform(Triangle{corners: rolled})
	if err != nil {
		return nil, err
	}
	return &AxisTransform{axis: a, corners: rolled, min: min, height: height, tri: tri}, nil
}

// Axis returns the ternary axis this transform serves.
func (t *AxisTransform) Axis() Axis { return t.axis }

// Apply implements Transform.
func (t *AxisTransform) Apply(in Point) Point {
	v := 1.0
	if t.height != 0 {
		v = (in.X - t.min) / t.height
	}
	s := in.Y
	return t.tri.Apply(Triple{T: v, L: (1 - v) * (1 - s), R: (1 - v) * s})
}

// Invert implements Transform. At the axis corner, where every side meets,
// the side is reported as 0.
func (t *AxisTransform) Invert(p Point) Point {
	w := t.tri.Invert(p)
	rest := w.L + w.R
	side := 0.0
	if math.Abs(rest) > limitTolerance {
		side = w.R / rest
	}
	return Point{X: t.min + w.T*t.height, Y: side}
}
