package ternary

// Option configures an Axes during creation.
// Use functional options to customize the triangle and its placement.
//
// Example:
//
//	// Regular triangle, t+l+r = 1
//	ax, err := ternary.NewAxes()
//
//	// Percent data on a triangle rotated by 90 degrees
//	ax, err := ternary.NewAxes(ternary.WithScale(100), ternary.WithRotation(90))
type Option func(*config)

// config holds the construction-time configuration of an Axes.
type config struct {
	scale    float64
	corners  *[3]Point
	rotation float64
	viewport Rect
	dpi      float64
	group    *ShareGroup
}

// defaultConfig returns the default axes configuration.
func defaultConfig() config {
	return config{
		scale:    1,
		viewport: NewRect(0, 0, 400, 400),
		dpi:      100,
	}
}

// WithScale sets the ternary sum S that the full triangle corresponds to.
// Negative values are allowed and invert every min/max comparison; zero is
// rejected by NewAxes.
func WithScale(s float64) Option {
	return func(c *config) {
		c.scale = s
	}
}

// WithCorners replaces the regular triangle with custom corner positions
// in the reference plane. Collinear corners are rejected by NewAxes.
//
// Example:
//
//	// Right triangle with the T corner at the origin
//	ax, err := ternary.NewAxes(ternary.WithCorners(
//	    ternary.Pt(0, 0), ternary.Pt(1, 0), ternary.Pt(0, 1)))
func WithCorners(t, l, r Point) Option {
	return func(c *config) {
		c.corners = &[3]Point{t, l, r}
	}
}

// WithRotation rotates the triangle counterclockwise by deg degrees about
// the centroid of its corners.
func WithRotation(deg float64) Option {
	return func(c *config) {
		c.rotation = deg
	}
}

// WithViewport sets the display rectangle, in pixels, that the axes occupy.
func WithViewport(r Rect) Option {
	return func(c *config) {
		c.viewport = r
	}
}

// WithDPI sets the display resolution used to convert lengths in points
// (tick length, label padding) to pixels.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		c.dpi = dpi
	}
}

// WithShareGroup joins the axes to g. Limit changes on any member are
// applied to every other member.
func WithShareGroup(g *ShareGroup) Option {
	return func(c *config) {
		c.group = g
	}
}
