// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws ternary axes into an *image.RGBA.
//
// It is a small reference consumer of the geometry computed by the ternary
// package: the visible region, grid lines, ticks and labels come from
// ternary.Axes.Layout, and every shape is filled with the anti-aliasing
// rasterizer of golang.org/x/image/vector. Display space is y-up; Canvas
// flips y when mapping to image rows.
//
// # Usage
//
//	ax, _ := ternary.NewAxes(ternary.WithViewport(ternary.NewRect(60, 60, 540, 540)))
//	src, _ := text.NewFontSource(goregular.TTF)
//	style := render.DefaultStyle(src.Face(10, text.WithDPI(ax.DPI())))
//
//	c := render.NewCanvas(600, 600, style)
//	if err := c.DrawAxes(ax); err != nil {
//	    log.Fatal(err)
//	}
//	_ = c.Scatter(ax, data, color.RGBA{200, 30, 30, 255})
//	_ = c.SavePNG("ternary.png")
package render
