package ternary

import "math"

// TextExtent is the size of a line of text in display pixels.
type TextExtent struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent+Descent.
func (e TextExtent) Height() float64 { return e.Ascent + e.Descent }

// TextMeasurer measures a single line of text. The text package provides an
// implementation backed by a real font; layouts that only need anchors can
// skip measuring entirely.
type TextMeasurer interface {
	MeasureText(s string) TextExtent
}

// TextBox is the rotated bounding box of a label in display pixels, in
// counterclockwise order starting at the bottom-left of the text.
type TextBox [4]Point

// Bounds returns the axis-aligned bounds of the box.
func (b TextBox) Bounds() Rect { return BoundsOf(b[:]...) }

// Origin returns the start of the text baseline for the given extent: the
// point a renderer draws from after rotating by Rotation.
func (g TextGeometry) Origin(ext TextExtent) Point {
	x, y := g.localOrigin(ext)
	return g.Anchor.Add(g.RotationMatrix().TransformVector(Pt(x, y)))
}

// RotationMatrix returns the rotation of the text about its anchor. Level
// text gets the identity.
func (g TextGeometry) RotationMatrix() Matrix {
	if g.Rotation == 0 {
		return Identity()
	}
	return Rotate(g.Rotation * math.Pi / 180)
}

// localOrigin returns the baseline start relative to the anchor before
// rotation.
func (g TextGeometry) localOrigin(ext TextExtent) (x, y float64) {
	switch g.HAlign {
	case HAlignCenter:
		x = -ext.Width / 2
	case HAlignRight:
		x = -ext.Width
	}
	switch g.VAlign {
	case VAlignCenter:
		y = (ext.Descent - ext.Ascent) / 2
	case VAlignTop:
		y = -ext.Ascent
	case VAlignBottom:
		y = ext.Descent
	}
	return x, y
}

// Box returns the rotated box the text occupies for the given extent.
func (g TextGeometry) Box(ext TextExtent) TextBox {
	x, y := g.localOrigin(ext)
	rot := g.RotationMatrix()
	local := [4]Point{
		{x, y - ext.Descent},
		{x + ext.Width, y - ext.Descent},
		{x + ext.Width, y + ext.Ascent},
		{x, y + ext.Ascent},
	}
	var b TextBox
	for i, p := range local {
		b[i] = g.Anchor.Add(rot.TransformVector(p))
	}
	return b
}

// AxisLayout is the measured decoration of one ternary axis.
type AxisLayout struct {
	Axis      Axis
	Ticks     []Tick
	TickBoxes []TextBox
	Gridlines []Segment
	Label     TextGeometry
	LabelBox  TextBox
}

// Layout is the measured decoration of an Axes in display pixels.
type Layout struct {
	Boundary []Point
	Axes     [3]AxisLayout
	// Bounds encloses the boundary, every tick and every label.
	Bounds Rect
}

// Layout measures every tick label and axis label with m and places the axis
// labels clear of the tick labels on their side. The result reflects the
// current limits and display; call it again after any change.
func (ax *Axes) Layout(m TextMeasurer) Layout {
	out := Layout{Boundary: ax.BoundaryPolygon()}
	bounds := BoundsOf(out.Boundary...)
	for _, a := range allAxes {
		al := ax.axes[a].layout(m)
		for _, tk := range al.Ticks {
			bounds = bounds.Union(BoundsOf(tk.Start, tk.End))
		}
		for _, b := range al.TickBoxes {
			bounds = bounds.Union(b.Bounds())
		}
		if al.Label.Text != "" {
			bounds = bounds.Union(al.LabelBox.Bounds())
		}
		out.Axes[a] = al
	}
	out.Bounds = bounds
	return out
}

func (t *TernaryAxis) layout(m TextMeasurer) AxisLayout {
	al := AxisLayout{Axis: t.index, Ticks: t.Ticks(), Gridlines: t.Gridlines()}
	f := t.labelFrame()
	offset := t.clearance(f)
	for _, tk := range al.Ticks {
		box := tk.Label.Box(m.MeasureText(tk.Label.Text))
		al.TickBoxes = append(al.TickBoxes, box)
		if tk.Side != f.side {
			continue
		}
		for _, c := range box {
			offset = math.Max(offset, c.Sub(f.base).Dot(f.normal))
		}
	}
	al.Label = t.labelAt(f, offset)
	ext := m.MeasureText(t.label)
	al.LabelBox = al.Label.Box(ext)

	// Text hanging back towards the axis is pushed out until its box
	// starts where the anchor would.
	reach := al.Label.Anchor.Sub(f.base).Dot(f.normal)
	for _, c := range al.LabelBox {
		reach = math.Min(reach, c.Sub(f.base).Dot(f.normal))
	}
	if back := al.Label.Anchor.Sub(f.base).Dot(f.normal) - reach; back > 0 {
		al.Label.Anchor = al.Label.Anchor.Add(f.normal.Mul(back))
		al.LabelBox = al.Label.Box(ext)
	}
	return al
}
