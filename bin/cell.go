package bin

import (
	"math"

	"github.com/gogpu/ternary"
)

// simplexTolerance is how far a normalized component may fall below zero
// and still be binned.
const simplexTolerance = 1e-9

// TriCell is one small triangle of a tribin grid. I, J and K are the lower
// grid coordinates of its corners along T, L and R: I+J+K is g-1 for
// upward cells and g-2 for downward cells.
type TriCell struct {
	I, J, K int
	Up      bool
}

// TribinCount returns the number of cells of a tribin grid of size g.
func TribinCount(g int) int {
	if g <= 0 {
		return 0
	}
	return g * g
}

// TribinIndex returns the serial index of the cell containing t, whose
// components must sum to 1. Upward cells come first, row by row along T,
// followed by the downward cells. Points on a shared edge go to the upward
// cell. It returns -1 for g <= 0 or points outside the triangle.
func TribinIndex(t ternary.Triple, g int) int {
	c, ok := tribinCell(t, g)
	if !ok {
		return -1
	}
	return c.index(g)
}

func tribinCell(t ternary.Triple, g int) (TriCell, bool) {
	if g <= 0 || !inSimplex(t) {
		return TriCell{}, false
	}
	var c, frac [3]float64
	var s int
	for a, v := range [3]float64{t.T, t.L, t.R} {
		x := math.Max(v, 0) * float64(g)
		c[a] = math.Min(math.Floor(x), float64(g-1))
		frac[a] = x - c[a]
		s += int(c[a])
	}
	// The fractional parts sum to g-s, so s is g-1 or g-2 except on grid
	// points (s == g) or after rounding.
	for s > g-1 {
		a := pick(func(a, b int) bool { return frac[a] < frac[b] }, func(a int) bool { return c[a] > 0 })
		c[a]--
		frac[a]++
		s--
	}
	for s < g-2 {
		a := pick(func(a, b int) bool { return frac[a] > frac[b] }, func(a int) bool { return c[a] < float64(g-1) })
		c[a]++
		frac[a]--
		s++
	}
	return TriCell{I: int(c[0]), J: int(c[1]), K: int(c[2]), Up: s == g-1}, true
}

// pick returns the eligible component that sorts first under less.
func pick(less func(a, b int) bool, eligible func(a int) bool) int {
	best := -1
	for a := range 3 {
		if !eligible(a) {
			continue
		}
		if best < 0 || less(a, best) {
			best = a
		}
	}
	return best
}

func (c TriCell) index(g int) int {
	if c.Up {
		return TriIndex(c.I, c.J, g)
	}
	return TriangleCount(g) + TriIndex(c.I, c.J, g-1)
}

// TribinCell is the inverse of TribinIndex. ok is false when idx is out of
// range for g.
func TribinCell(idx, g int) (c TriCell, ok bool) {
	if g <= 0 || idx < 0 || idx >= TribinCount(g) {
		return TriCell{}, false
	}
	up := TriangleCount(g)
	if idx < up {
		i, j := TriCoords(idx, g)
		return TriCell{I: i, J: j, K: g - 1 - i - j, Up: true}, true
	}
	i, j := TriCoords(idx-up, g-1)
	return TriCell{I: i, J: j, K: g - 2 - i - j}, true
}

// Vertices returns the corners of the cell as triples summing to 1.
func (c TriCell) Vertices(g int) [3]ternary.Triple {
	f := 1 / float64(g)
	i, j, k := float64(c.I), float64(c.J), float64(c.K)
	if c.Up {
		return [3]ternary.Triple{
			ternary.Tri(i+1, j, k).Mul(f),
			ternary.Tri(i, j+1, k).Mul(f),
			ternary.Tri(i, j, k+1).Mul(f),
		}
	}
	return [3]ternary.Triple{
		ternary.Tri(i+1, j+1, k).Mul(f),
		ternary.Tri(i, j+1, k+1).Mul(f),
		ternary.Tri(i+1, j, k+1).Mul(f),
	}
}

// HexCell is one hexagon of a hexbin grid, centred on the grid point
// (I, J, K)/g with I+J+K == g.
type HexCell struct {
	I, J, K int
}

// HexbinCount returns the number of cells of a hexbin grid of size g.
func HexbinCount(g int) int {
	return TriangleCount(g + 1)
}

// HexbinIndex returns the serial index of the hexagon nearest to t, whose
// components must sum to 1. It returns -1 for g <= 0 or points outside the
// triangle.
func HexbinIndex(t ternary.Triple, g int) int {
	c, ok := hexbinCell(t, g)
	if !ok {
		return -1
	}
	return TriIndex(c.I, c.J, g+1)
}

// hexbinCell rounds t*g to the nearest grid point, correcting the component
// that moved furthest when the rounded coordinates do not sum to g.
func hexbinCell(t ternary.Triple, g int) (HexCell, bool) {
	if g <= 0 || !inSimplex(t) {
		return HexCell{}, false
	}
	var c, dev [3]float64
	var s int
	for a, v := range [3]float64{t.T, t.L, t.R} {
		x := math.Max(v, 0) * float64(g)
		c[a] = math.Round(x)
		dev[a] = c[a] - x
		s += int(c[a])
	}
	switch {
	case s > g:
		a := pick(func(a, b int) bool { return dev[a] > dev[b] }, func(a int) bool { return c[a] > 0 })
		c[a]--
	case s < g:
		a := pick(func(a, b int) bool { return dev[a] < dev[b] }, func(int) bool { return true })
		c[a]++
	}
	return HexCell{I: int(c[0]), J: int(c[1]), K: int(c[2])}, true
}

// HexbinCell is the inverse of HexbinIndex. ok is false when idx is out of
// range for g.
func HexbinCell(idx, g int) (c HexCell, ok bool) {
	if g <= 0 || idx < 0 || idx >= HexbinCount(g) {
		return HexCell{}, false
	}
	i, j := TriCoords(idx, g+1)
	return HexCell{I: i, J: j, K: g - i - j}, true
}

// hexOffsets are the hexagon corners around a grid point in units of 1/(3g),
// in counterclockwise barycentric order.
var hexOffsets = [6][3]float64{
	{2, -1, -1}, {1, 1, -2}, {-1, 2, -1},
	{-2, 1, 1}, {-1, -1, 2}, {1, -2, 1},
}

// Vertices returns the corners of the hexagon clipped to the triangle, as
// triples summing to 1. Hexagons on an edge have five corners or fewer.
func (c HexCell) Vertices(g int) []ternary.Triple {
	f := 1 / float64(g)
	center := ternary.Tri(float64(c.I), float64(c.J), float64(c.K)).Mul(f)
	poly := make([]ternary.Triple, 0, 8)
	for _, o := range hexOffsets {
		poly = append(poly, center.Add(ternary.Tri(o[0], o[1], o[2]).Mul(f/3)))
	}
	for _, a := range [3]ternary.Axis{ternary.T, ternary.L, ternary.R} {
		poly = clipNonNegative(poly, a)
	}
	return poly
}

// clipNonNegative clips a convex polygon to the half-space where component
// a is non-negative. Barycentric coordinates are affine, so clipping edges
// by linear interpolation is exact.
func clipNonNegative(poly []ternary.Triple, a ternary.Axis) []ternary.Triple {
	var out []ternary.Triple
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		pa, qa := p.At(a), q.At(a)
		if pa >= 0 {
			out = append(out, p)
		}
		if (pa < 0) != (qa < 0) {
			s := pa / (pa - qa)
			x := p.Add(q.Add(p.Neg()).Mul(s))
			out = append(out, x.With(a, 0))
		}
	}
	return out
}

func inSimplex(t ternary.Triple) bool {
	for _, v := range [3]float64{t.T, t.L, t.R} {
		if !(v >= -simplexTolerance && v <= 1+simplexTolerance) {
			return false
		}
	}
	return true
}
