package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ternary"
)

// PathSink receives glyph outlines in device coordinates.
// *vector.Rasterizer from golang.org/x/image/vector satisfies it.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(bx, by, cx, cy float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// AppendOutline adds the outline of label g to p. The label is laid out in
// display space (y-up) from g's anchor, alignment and rotation; toDevice
// maps display points to the sink's coordinates, typically flipping y.
func (f *Face) AppendOutline(p PathSink, g ternary.TextGeometry, toDevice func(ternary.Point) ternary.Point) error {
	sf, _, err := f.source.fonts()
	if err != nil {
		return err
	}
	if !f.valid() {
		return ErrInvalidSize
	}
	glyphs := f.Shape(g.Text)
	if len(glyphs) == 0 {
		return nil
	}

	origin := g.Origin(f.MeasureText(g.Text))
	rot := g.RotationMatrix()
	var buf sfnt.Buffer
	for _, gl := range glyphs {
		segs, err := sf.LoadGlyph(&buf, gl.ID, toFixed(f.ppem), nil)
		if err != nil {
			return err
		}
		// Glyph segments are y-down around the pen position.
		pt := func(q fixed.Point26_6) (float32, float32) {
			local := ternary.Pt(gl.X+fromFixed(q.X), gl.Y-fromFixed(q.Y))
			d := toDevice(origin.Add(rot.TransformVector(local)))
			return float32(d.X), float32(d.Y)
		}
		open := false
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.ClosePath()
				}
				p.MoveTo(pt(s.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(s.Args[0])
				cx, cy := pt(s.Args[1])
				p.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(s.Args[0])
				cx, cy := pt(s.Args[1])
				dx, dy := pt(s.Args[2])
				p.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if open {
			p.ClosePath()
		}
	}
	return nil
}
