// Package ternary provides the coordinate system of a ternary plot.
//
// # Overview
//
// A ternary plot shows triples (t, l, r) whose components sum to a constant
// S on a triangle. The package maps such triples to display pixels, keeps
// the three interdependent view limits consistent while the user pans and
// zooms, and computes renderer-independent geometry for ticks, grid lines
// and labels. Drawing is left to the caller; the render subpackage draws
// the geometry into an image.
//
// # Quick Start
//
//	import "github.com/gogpu/ternary"
//
//	ax, err := ternary.NewAxes(ternary.WithScale(100))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Zoom onto the region where every component is at least 20%
//	if err := ax.SetMin(20, 20, 20); err != nil {
//		log.Fatal(err)
//	}
//
//	p, _ := ax.Project(ternary.Tri(30, 30, 40))
//	for _, tk := range ax.Axis(ternary.T).Ticks() {
//		fmt.Println(tk.Value, tk.Position, tk.Label.Text)
//	}
//
// # Transforms
//
// Data triples reach the display through a chain of invertible transforms:
//
//	ScaleTransform        divide by S
//	BarycentricTransform  weights onto the triangle corners
//	LimitsTransform       view box onto the unit square
//	ViewportTransform     unit square onto display pixels
//
// Each axis additionally has an AxisTransform that maps (value, side) onto
// the edges of the tick triangle, used to place ticks and labels.
//
// # Coordinate System
//
// The reference plane and the display are y-up: the regular triangle has
// its T corner at (0.5, √3/2) above L at (0, 0) and R at (1, 0). Angles are
// degrees, counterclockwise. Renderers drawing into y-down images flip the
// y axis themselves.
//
// # Negative Sums
//
// S may be negative. Every comparison between limits then runs the other
// way: a "minimum" is the arithmetic maximum.
package ternary

// Version is the current version of the library.
const Version = "0.1.0"
