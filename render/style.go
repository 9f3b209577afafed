// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/ternary/text"
)

// Style holds the colors and line widths a Canvas draws with. Widths are in
// pixels.
type Style struct {
	Background color.Color
	Patch      color.Color
	Boundary   color.Color
	Grid       color.Color
	Tick       color.Color
	Text       color.Color

	BoundaryWidth float64
	GridWidth     float64
	TickWidth     float64
	MarkerRadius  float64

	// Face draws tick and axis labels. A nil Face skips all text.
	Face *text.Face
}

// DefaultStyle returns black lines on white with light grey grid lines.
func DefaultStyle(face *text.Face) Style {
	return Style{
		Background:    color.White,
		Patch:         color.RGBA{0xf4, 0xf4, 0xf4, 0xff},
		Boundary:      color.Black,
		Grid:          color.RGBA{0xc8, 0xc8, 0xc8, 0xff},
		Tick:          color.Black,
		Text:          color.Black,
		BoundaryWidth: 1.5,
		GridWidth:     0.8,
		TickWidth:     1,
		MarkerRadius:  3,
		Face:          face,
	}
}
