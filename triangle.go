package ternary

import "math"

// collinearTolerance bounds |signed area| relative to the squared longest
// side below which corners are treated as collinear.
const collinearTolerance = 1e-12

// Triangle holds the three corner points of a ternary diagram in the
// reference plane, indexed by Axis: the corner of axis a is where that
// component reaches the full ternary sum.
type Triangle struct {
	corners [3]Point
	custom  bool
}

// RegularTriangle returns the equilateral triangle with the T corner on top:
// T=(0.5, √3/2), L=(0, 0), R=(1, 0). Its winding is counterclockwise.
func RegularTriangle() Triangle {
	return Triangle{corners: [3]Point{
		{X: 0.5, Y: math.Sqrt(3) / 2},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}}
}

// NewTriangle returns a triangle with custom corners.
// It fails with ErrDegenerateTriangle if the corners are collinear or not
// finite.
func NewTriangle(t, l, r Point) (Triangle, error) {
	tri := Triangle{corners: [3]Point{t, l, r}, custom: true}
	if !t.IsFinite() || !l.IsFinite() || !r.IsFinite() {
		return Triangle{}, ErrDegenerateTriangle
	}
	longest := math.Max(t.Distance(l), math.Max(l.Distance(r), r.Distance(t)))
	if longest == 0 || math.Abs(tri.SignedArea()) <= collinearTolerance*longest*longest {
		return Triangle{}, ErrDegenerateTriangle
	}
	return tri, nil
}

// Corner returns the corner of axis a.
func (tri Triangle) Corner(a Axis) Point {
	return tri.corners[a]
}

// Corners returns the corners in T, L, R order.
func (tri Triangle) Corners() [3]Point {
	return tri.corners
}

// Custom reports whether the corners were supplied by the caller.
func (tri Triangle) Custom() bool {
	return tri.custom
}

// SignedArea returns the signed area of (T, L, R); positive for
// counterclockwise winding in a y-up plane.
func (tri Triangle) SignedArea() float64 {
	return signedArea(tri.corners[0], tri.corners[1], tri.corners[2])
}

// Clockwise reports whether T, L, R wind clockwise.
func (tri Triangle) Clockwise() bool {
	return tri.SignedArea() < 0
}

// Centroid returns the mean of the corners.
func (tri Triangle) Centroid() Point {
	c := tri.corners
	return Point{X: (c[0].X + c[1].X + c[2].X) / 3, Y: (c[0].Y + c[1].Y + c[2].Y) / 3}
}

// Rotated returns the triangle rotated counterclockwise by deg degrees about
// its centroid.
func (tri Triangle) Rotated(deg float64) Triangle {
	m := RotateAbout(deg*math.Pi/180, tri.Centroid())
	if m.IsIdentity() {
		return tri
	}
	out := tri
	for i, p := range tri.corners {
		out.corners[i] = m.TransformPoint(p)
	}
	return out
}

// Bounds returns the bounding box of the corners.
func (tri Triangle) Bounds() Rect {
	return BoundsOf(tri.corners[:]...)
}

func signedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}
