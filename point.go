package ternary

import "math"

// Point represents a 2D point or vector.
// Reference-plane and display positions both use Point; display space is
// y-up with the origin at the bottom-left of the figure.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// Positive when q is counterclockwise from p in a y-up space.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated by +90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// angleDeg returns the direction of v in degrees, in (-180, 180].
func angleDeg(v Point) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Rect is an axis-aligned box.
type Rect struct {
	Min, Max Point
}

// NewRect returns the Rect spanned by two corners given in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// BoundsOf returns the smallest Rect containing all points.
// It returns the zero Rect when pts is empty.
func BoundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Corners returns the four corners counterclockwise from Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Union returns the smallest Rect containing r and s.
func (r Rect) Union(s Rect) Rect {
	return BoundsOf(r.Min, r.Max, s.Min, s.Max)
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// ScaleAbout returns r scaled by factor around c.
func (r Rect) ScaleAbout(factor float64, c Point) Rect {
	return BoundsOf(c.Lerp(r.Min, factor), c.Lerp(r.Max, factor))
}

// FitAspect grows the smaller dimension of r, keeping its center, so that
// Height/Width equals aspect. A box with no extent at all is returned as is.
func (r Rect) FitAspect(aspect float64) Rect {
	w, h := r.Width(), r.Height()
	if w <= 0 && h <= 0 {
		return r
	}
	c := r.Center()
	if h < w*aspect {
		h = w * aspect
	} else {
		w = h / aspect
	}
	return Rect{
		Min: Point{X: c.X - w/2, Y: c.Y - h/2},
		Max: Point{X: c.X + w/2, Y: c.Y + h/2},
	}
}
