// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/ternary"
	"github.com/gogpu/ternary/bin"
)

// circleSegments is the number of sides of a scatter marker.
const circleSegments = 16

// Canvas is an RGBA image that ternary geometry is drawn into.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	style  Style
}

// NewCanvas creates a canvas of the given size filled with the style's
// background.
func NewCanvas(width, height int, style Style) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if style.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}
	return &Canvas{
		img:    img,
		raster: vector.NewRasterizer(width, height),
		style:  style,
	}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// toDevice maps a y-up display point to image coordinates.
func (c *Canvas) toDevice(p ternary.Point) ternary.Point {
	return ternary.Pt(p.X, float64(c.img.Bounds().Dy())-p.Y)
}

// polygon adds a closed polygon in display coordinates to the rasterizer.
func (c *Canvas) polygon(pts []ternary.Point) {
	for i, p := range pts {
		d := c.toDevice(p)
		if i == 0 {
			c.raster.MoveTo(float32(d.X), float32(d.Y))
		} else {
			c.raster.LineTo(float32(d.X), float32(d.Y))
		}
	}
	c.raster.ClosePath()
}

// segment adds a line of the given width as a rectangle.
func (c *Canvas) segment(a, b ternary.Point, width float64) {
	n := b.Sub(a).Perp().Normalize().Mul(width / 2)
	if n == (ternary.Point{}) {
		return
	}
	c.polygon([]ternary.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// paint fills everything added to the rasterizer since the last paint.
func (c *Canvas) paint(col color.Color) {
	if col != nil {
		c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	}
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
}

// FillPolygon fills a polygon given in display coordinates.
func (c *Canvas) FillPolygon(pts []ternary.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.polygon(pts)
	c.paint(col)
}

// StrokePolygon outlines a closed polygon given in display coordinates.
func (c *Canvas) StrokePolygon(pts []ternary.Point, width float64, col color.Color) {
	for i, p := range pts {
		c.segment(p, pts[(i+1)%len(pts)], width)
		// Square off the joints.
		c.disc(p, width/2)
	}
	c.paint(col)
}

func (c *Canvas) disc(center ternary.Point, r float64) {
	if r <= 0 {
		return
	}
	pts := make([]ternary.Point, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = center.Add(ternary.Pt(math.Cos(a), math.Sin(a)).Mul(r))
	}
	c.polygon(pts)
}

// DrawAxes draws the visible region, grid lines, boundary, ticks and labels
// of ax. Labels are skipped when the style has no face.
func (c *Canvas) DrawAxes(ax *ternary.Axes) error {
	var m ternary.TextMeasurer = noText{}
	if c.style.Face != nil {
		m = c.style.Face
	}
	layout := ax.Layout(m)
	ternary.Logger().Debug("render: axes layout", "bounds", layout.Bounds)

	c.FillPolygon(layout.Boundary, c.style.Patch)

	for _, al := range layout.Axes {
		for _, g := range al.Gridlines {
			c.segment(g.From, g.To, c.style.GridWidth)
		}
	}
	c.paint(c.style.Grid)

	c.StrokePolygon(layout.Boundary, c.style.BoundaryWidth, c.style.Boundary)

	for _, al := range layout.Axes {
		for _, tk := range al.Ticks {
			c.segment(tk.Start, tk.End, c.style.TickWidth)
		}
	}
	c.paint(c.style.Tick)

	if c.style.Face == nil {
		return nil
	}
	var errs []error
	for _, al := range layout.Axes {
		for _, tk := range al.Ticks {
			errs = append(errs, c.style.Face.AppendOutline(c.raster, tk.Label, c.toDevice))
		}
		errs = append(errs, c.style.Face.AppendOutline(c.raster, al.Label, c.toDevice))
	}
	c.paint(c.style.Text)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("render: labels: %w", err)
	}
	return nil
}

// Scatter draws a marker for every triple that projects inside the
// viewport. Triples summing to zero are skipped and reported in the error.
func (c *Canvas) Scatter(ax *ternary.Axes, data []ternary.Triple, col color.Color) error {
	var bad int
	for _, t := range data {
		p, err := ax.Project(t)
		if err != nil {
			bad++
			continue
		}
		c.disc(p, c.style.MarkerRadius)
	}
	c.paint(col)
	if bad > 0 {
		return fmt.Errorf("render: %d points: %w", bad, ternary.ErrZeroSum)
	}
	return nil
}

// FillCells fills the outline of every binned cell with shade(count/max),
// where max is the largest count. Empty cells are left unfilled.
func (c *Canvas) FillCells(ax *ternary.Axes, cells []bin.Cell, shade func(frac float64) color.Color) {
	var peak float64
	for _, cell := range cells {
		peak = math.Max(peak, cell.Count)
	}
	if peak == 0 {
		return
	}
	data := ax.DataTransform()
	for _, cell := range cells {
		if cell.Count == 0 {
			continue
		}
		pts := make([]ternary.Point, len(cell.Vertices))
		for i, v := range cell.Vertices {
			pts[i] = data.Apply(v)
		}
		c.FillPolygon(pts, shade(cell.Count/peak))
	}
}

// Shade returns a ramp from white to base.
func Shade(base color.RGBA) func(float64) color.Color {
	return func(f float64) color.Color {
		f = math.Min(math.Max(f, 0), 1)
		mix := func(v uint8) uint8 { return uint8(math.Round(255 - f*(255-float64(v)))) }
		return color.RGBA{mix(base.R), mix(base.G), mix(base.B), 0xff}
	}
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// noText measures every string as empty.
type noText struct{}

func (noText) MeasureText(string) ternary.TextExtent { return ternary.TextExtent{} }
