package ternary

import "math"

// angleTolerance is the slack, in degrees or as a direction ratio, used at
// band edges and for near-vertical lines.
const angleTolerance = 1e-6

// TextGeometry is the renderer-independent placement of one label.
type TextGeometry struct {
	Text string
	// Anchor is the display point the alignment refers to.
	Anchor Point
	// Rotation in degrees, counterclockwise.
	Rotation float64
	HAlign   HAlign
	VAlign   VAlign
}

// readableAngle folds deg into [-90, 90] so that text never reads upside
// down. flipped is true when the text runs opposite to deg.
func readableAngle(deg float64) (angle float64, flipped bool) {
	deg = normalizeDeg(deg)
	switch {
	case deg > 90:
		return deg - 180, true
	case deg < -90:
		return deg + 180, true
	}
	return deg, false
}

// normalizeDeg maps deg into (-180, 180].
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// isVertical reports whether d is vertical within angleTolerance.
func isVertical(d Point) bool {
	return math.Abs(d.X) <= angleTolerance*d.Length()
}

// alongLine orients text that runs along the line origin→target. third is a
// point that fixes which side is which: for edge labels it is the opposite
// corner, for corner labels it is the labelled corner itself.
//
// The vertical anchor is the three-way XOR of corner, clockwise (the winding
// of the triangle) and whether third lies above the text line. A
// counterclockwise triangle puts the text on the far side of the line from
// the interior; flipping the winding flips top and bottom while the rotation
// keeps its magnitude. Lines within angleTolerance of vertical compare x
// coordinates instead, since the sign of the angle is meaningless there.
func alongLine(origin, target, third Point, corner, clockwise bool) (rot float64, ha HAlign, va VAlign) {
	d := target.Sub(origin)
	var thirdUp bool
	if isVertical(d) {
		// Text reads bottom to top; its up side faces -x.
		rot = 90
		thirdUp = third.X < origin.X
	} else {
		var flipped bool
		rot, flipped = readableAngle(angleDeg(d))
		ccw := d.Cross(third.Sub(origin)) > 0
		thirdUp = ccw != flipped
	}
	va = VAlignBottom
	if thirdUp != corner != clockwise {
		va = VAlignTop
	}
	return rot, HAlignCenter, va
}

// outward returns the unit normal of origin→target on the side where a label
// belongs: away from third for edges, towards it for corners.
func outward(origin, target, third Point, corner bool) Point {
	n := target.Sub(origin).Perp().Normalize()
	toward := n.Dot(third.Sub(origin)) > 0
	if toward != corner {
		n = n.Mul(-1)
	}
	return n
}

// bandAnchors picks anchors for upright text placed in direction deg from
// its anchor: the text sits left of, right of, above or below the anchor in
// bands bounded at ±15°, ±75°, ±105° and ±165°.
func bandAnchors(deg float64) (HAlign, VAlign) {
	deg = normalizeDeg(deg)
	a := math.Abs(deg)
	vert := VAlignBottom
	if deg < 0 {
		vert = VAlignTop
	}
	switch {
	case a <= 15+angleTolerance:
		return HAlignLeft, VAlignCenter
	case a >= 165-angleTolerance:
		return HAlignRight, VAlignCenter
	case a >= 75-angleTolerance && a <= 105+angleTolerance:
		return HAlignCenter, vert
	case a < 75:
		return HAlignLeft, vert
	default:
		return HAlignRight, vert
	}
}

// alongTick orients a tick label that continues the tick outward in
// direction out: the text starts at the anchor and reads away from the
// triangle.
func alongTick(out Point) (rot float64, ha HAlign, va VAlign) {
	va = VAlignCenter
	if isVertical(out) {
		if out.Y > 0 {
			return 90, HAlignLeft, va
		}
		return 90, HAlignRight, va
	}
	rot, flipped := readableAngle(angleDeg(out))
	if flipped {
		return rot, HAlignRight, va
	}
	return rot, HAlignLeft, va
}
