package ternary

import (
	"fmt"
	"math"
)

// Default lengths, in points.
const (
	defaultTickLength = 3.5
	defaultTickPad    = 3.5
	defaultLabelPad   = 4.0
)

// TernaryAxis holds the tick and label settings of one ternary axis. The
// three axes of an Axes share this single type and differ only in index.
type TernaryAxis struct {
	ax    *Axes
	index Axis

	label         string
	labelPosition LabelPosition
	labelMode     RotationMode
	labelRotation float64
	labelHA       HAlign
	labelVA       VAlign
	labelPad      float64

	tickPosition      TickPosition
	tickDirection     TickDirection
	tickLength        float64
	tickPad           float64
	tickLabelMode     RotationMode
	tickLabelRotation float64
	tickLabelHA       HAlign
	tickLabelVA       VAlign

	locator   Locator
	formatter Formatter
}

func newTernaryAxis(ax *Axes, a Axis) *TernaryAxis {
	return &TernaryAxis{
		ax:            ax,
		index:         a,
		labelPosition: LabelTick1,
		labelMode:     RotateAxis,
		labelPad:      defaultLabelPad,
		tickPosition:  TicksTick1,
		tickDirection: TickOut,
		tickLength:    defaultTickLength,
		tickPad:       defaultTickPad,
		tickLabelMode: RotateAxis,
		tickLabelVA:   VAlignCenter,
		locator:       AutoLocator{},
		formatter:     DefaultFormatter(),
	}
}

// Index returns which ternary axis this is.
func (t *TernaryAxis) Index() Axis { return t.index }

// Label returns the axis label text.
func (t *TernaryAxis) Label() string { return t.label }

// SetLabel sets the axis label text.
func (t *TernaryAxis) SetLabel(s string) { t.label = s }

// LabelPosition returns where the axis label is placed.
func (t *TernaryAxis) LabelPosition() LabelPosition { return t.labelPosition }

// SetLabelPosition places the axis label at the corner or beside a tick side.
func (t *TernaryAxis) SetLabelPosition(p LabelPosition) error {
	if p < 0 || int(p) >= len(labelPositionNames) {
		return &InvalidOptionError{Option: "label position", Value: fmt.Sprint(int(p)), Allowed: labelPositionNames}
	}
	t.labelPosition = p
	return nil
}

// SetLabelRotationMode sets how the axis label is oriented.
func (t *TernaryAxis) SetLabelRotationMode(m RotationMode) error {
	if m < 0 || int(m) >= len(rotationModeNames) {
		return &InvalidOptionError{Option: "rotation mode", Value: fmt.Sprint(int(m)), Allowed: rotationModeNames}
	}
	t.labelMode = m
	return nil
}

// SetLabelRotation switches the axis label to manual mode with the given
// rotation in degrees and anchors.
func (t *TernaryAxis) SetLabelRotation(deg float64, ha HAlign, va VAlign) {
	t.labelMode = RotateManual
	t.labelRotation, t.labelHA, t.labelVA = deg, ha, va
}

// SetLabelPad sets the gap between the axis label and the axis, in points.
func (t *TernaryAxis) SetLabelPad(pt float64) { t.labelPad = pt }

// TickPosition returns on which sides ticks are drawn.
func (t *TernaryAxis) TickPosition() TickPosition { return t.tickPosition }

// SetTickPosition selects on which sides ticks are drawn.
func (t *TernaryAxis) SetTickPosition(p TickPosition) error {
	if p < 0 || int(p) >= len(tickPositionNames) {
		return &InvalidOptionError{Option: "tick position", Value: fmt.Sprint(int(p)), Allowed: tickPositionNames}
	}
	t.tickPosition = p
	return nil
}

// SetTickDirection selects whether ticks point in, out or both ways.
func (t *TernaryAxis) SetTickDirection(d TickDirection) error {
	if d < 0 || int(d) >= len(tickDirectionNames) {
		return &InvalidOptionError{Option: "tick direction", Value: fmt.Sprint(int(d)), Allowed: tickDirectionNames}
	}
	t.tickDirection = d
	return nil
}

// SetTickLength sets the tick mark length and the gap between tick and tick
// label, both in points.
func (t *TernaryAxis) SetTickLength(length, pad float64) {
	t.tickLength, t.tickPad = length, pad
}

// SetTickLabelRotationMode sets how tick labels are oriented.
func (t *TernaryAxis) SetTickLabelRotationMode(m RotationMode) error {
	if m < 0 || int(m) >= len(rotationModeNames) {
		return &InvalidOptionError{Option: "rotation mode", Value: fmt.Sprint(int(m)), Allowed: rotationModeNames}
	}
	t.tickLabelMode = m
	return nil
}

// SetTickLabelRotation switches tick labels to manual mode.
func (t *TernaryAxis) SetTickLabelRotation(deg float64, ha HAlign, va VAlign) {
	t.tickLabelMode = RotateManual
	t.tickLabelRotation, t.tickLabelHA, t.tickLabelVA = deg, ha, va
}

// SetLocator replaces the tick locator.
func (t *TernaryAxis) SetLocator(l Locator) { t.locator = l }

// SetFormatter replaces the tick label formatter.
func (t *TernaryAxis) SetFormatter(f Formatter) { t.formatter = f }

// Tick is the geometry of one tick mark and its label, in display pixels.
type Tick struct {
	Value float64
	// Side is 0 for the tick1 edge and 1 for the tick2 edge.
	Side int
	// Position is where the tick meets the edge.
	Position Point
	// Start is the outer end of the tick mark, End the inner end.
	Start, End Point
	// Angle is the outward direction of the tick mark in degrees.
	Angle float64
	Label TextGeometry
}

// Segment is a line between two display points.
type Segment struct {
	From, To Point
}

// tickTolerance is the relative slack for deciding that a tick lies on the
// visible boundary.
const tickTolerance = 1e-9

// Ticks computes the tick marks and tick labels of this axis for the
// current limits and display. Ticks whose position falls outside the visible
// region are dropped. Directions are recomputed on every call.
func (t *TernaryAxis) Ticks() []Tick {
	ax := t.ax
	a := t.index
	lim := ax.limits[a]
	values := t.locator.Locate(lim.Min, lim.Max)
	labels := t.formatter.Format(values)
	toDisplay := ax.AxisTransform(a)
	length := ax.PointsToPixels(t.tickLength)
	pad := ax.PointsToPixels(t.tickPad)
	fo, fi := t.tickDirection.extents()

	var ticks []Tick
	for _, side := range t.tickPosition.sides() {
		normal := t.edgeNormal(side)
		for i, v := range values {
			if !t.onBoundary(v, side) {
				continue
			}
			p := toDisplay.Apply(Pt(v, float64(side)))
			q := toDisplay.Apply(Pt(v, float64(1-side)))
			out := p.Sub(q).Normalize()
			if out == (Point{}) {
				// The apex, where both sides meet.
				out = normal
			}
			tk := Tick{
				Value:    v,
				Side:     side,
				Position: p,
				Start:    p.Add(out.Mul(fo * length)),
				End:      p.Sub(out.Mul(fi * length)),
				Angle:    angleDeg(out),
			}
			tk.Label = t.tickLabel(labels[i], tk.Start.Add(normal.Mul(pad)), out, normal)
			ticks = append(ticks, tk)
		}
	}
	return ticks
}

func (t *TernaryAxis) tickLabel(text string, anchor, out, normal Point) TextGeometry {
	g := TextGeometry{Text: text, Anchor: anchor}
	switch t.tickLabelMode {
	case RotateAxis:
		g.Rotation, g.HAlign, g.VAlign = alongTick(out)
	case RotateHorizontal:
		g.HAlign, g.VAlign = bandAnchors(angleDeg(normal))
	default:
		g.Rotation, g.HAlign, g.VAlign = t.tickLabelRotation, t.tickLabelHA, t.tickLabelVA
	}
	return g
}

// onBoundary reports whether the tick at v on side lies on the visible
// boundary: the held axis sits at its minimum and the remaining component
// must stay within its own limits.
func (t *TernaryAxis) onBoundary(v float64, side int) bool {
	ax := t.ax
	s := ax.sum
	a := t.index
	held, free := a.next(2), a.next(1)
	if side == 1 {
		held, free = free, held
	}
	tol := tickTolerance * math.Abs(s)
	rest := s - v - ax.limits[held].Min
	lim := ax.limits
	return ordered(lim[a].Min, v, s, tol) && ordered(v, lim[a].Max, s, tol) &&
		ordered(lim[free].Min, rest, s, tol) && ordered(rest, lim[free].Max, s, tol)
}

// edgeCorners returns (origin, target, third) in display pixels for a side
// of this axis: the edge runs from the axis corner of the tick triangle to
// the next (side 0) or the one after (side 1).
func (t *TernaryAxis) edgeCorners(side int) (origin, target, third Point) {
	c := t.ax.TickTriangle()
	a := t.index
	if side == 0 {
		return c[a], c[a.next(1)], c[a.next(2)]
	}
	return c[a], c[a.next(2)], c[a.next(1)]
}

// edgeNormal returns the current outward unit normal of a tick side.
func (t *TernaryAxis) edgeNormal(side int) Point {
	origin, target, third := t.edgeCorners(side)
	return outward(origin, target, third, false)
}

// Gridlines returns the grid lines through the tick values, clipped to the
// visible region, in display pixels.
func (t *TernaryAxis) Gridlines() []Segment {
	ax := t.ax
	lim := ax.limits[t.index]
	var out []Segment
	for _, v := range t.locator.Locate(lim.Min, lim.Max) {
		from, to, ok := ax.limits.Gridline(t.index, v, ax.sum)
		if !ok {
			continue
		}
		out = append(out, Segment{From: ax.data.Apply(from), To: ax.data.Apply(to)})
	}
	return out
}

// labelFrame is the placement of the axis label before its final offset:
// the point on the triangle it is attached to, the unit direction it is
// pushed along, and the line and third point that orient it.
type labelFrame struct {
	base, normal          Point
	origin, target, third Point
	corner                bool
	side                  int
}

func (t *TernaryAxis) labelFrame() labelFrame {
	ax := t.ax
	a := t.index
	lim := ax.limits[a]
	toDisplay := ax.AxisTransform(a)
	c := ax.TickTriangle()

	var f labelFrame
	switch t.labelPosition {
	case LabelCorner:
		f.origin, f.target, f.third = c[a.next(1)], c[a.next(2)], c[a]
		f.corner = true
		f.side = -1
		f.base = toDisplay.Apply(Pt(lim.Max, 0.5))
	case LabelTick2:
		f.origin, f.target, f.third = c[a], c[a.next(2)], c[a.next(1)]
		f.side = 1
		f.base = toDisplay.Apply(Pt((lim.Min+lim.Max)/2, 1))
	default:
		f.origin, f.target, f.third = c[a], c[a.next(1)], c[a.next(2)]
		f.side = 0
		f.base = toDisplay.Apply(Pt((lim.Min+lim.Max)/2, 0))
	}
	f.normal = outward(f.origin, f.target, f.third, f.corner)
	return f
}

// clearance returns the default distance, in pixels, between the axis and
// its label before any text is measured: tick marks and their pad on the
// label's side.
func (t *TernaryAxis) clearance(f labelFrame) float64 {
	if f.corner || !t.hasTicksOn(f.side) {
		return 0
	}
	fo, _ := t.tickDirection.extents()
	return t.ax.PointsToPixels(fo*t.tickLength + t.tickPad)
}

func (t *TernaryAxis) hasTicksOn(side int) bool {
	for _, s := range t.tickPosition.sides() {
		if s == side {
			return true
		}
	}
	return false
}

// LabelGeometry computes the placement of the axis label without measuring
// any text.
func (t *TernaryAxis) LabelGeometry() TextGeometry {
	f := t.labelFrame()
	return t.labelAt(f, t.clearance(f))
}

func (t *TernaryAxis) labelAt(f labelFrame, offset float64) TextGeometry {
	g := TextGeometry{
		Text:   t.label,
		Anchor: f.base.Add(f.normal.Mul(offset + t.ax.PointsToPixels(t.labelPad))),
	}
	switch t.labelMode {
	case RotateAxis:
		g.Rotation, g.HAlign, g.VAlign = alongLine(f.origin, f.target, f.third, f.corner, t.ax.Clockwise())
	case RotateHorizontal:
		g.HAlign, g.VAlign = bandAnchors(angleDeg(f.normal))
	default:
		g.Rotation, g.HAlign, g.VAlign = t.labelRotation, t.labelHA, t.labelVA
	}
	return g
}
