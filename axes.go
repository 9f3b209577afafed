package ternary

import (
	"fmt"
	"math"
)

// unitSquare is the normalized axes box between the view limits and the
// viewport.
var unitSquare = NewRect(0, 0, 1, 1)

// Axes is a ternary coordinate system placed on a 2D display.
//
// It owns the ternary sum, the triangle, the three interdependent view
// limits, the Cartesian view box derived from them, and the transform graph
// from data triples to display pixels:
//
//	Triple --ScaleTransform--> Triple (sum 1)
//	       --BarycentricTransform--> reference plane
//	       --view limits--> unit square
//	       --viewport--> display pixels (y-up)
//
// Every mutation (explicit limits, pan, zoom, shared limits) goes through one
// path that clamps the limits and rebuilds the transforms. Axes is not safe
// for concurrent use.
type Axes struct {
	sum      float64
	tri      Triangle
	limits   Limits
	view     Rect
	viewport Rect
	dpi      float64
	group    *ShareGroup

	scale   ScaleTransform
	proj    *BarycentricTransform
	viewT   AffineTransform
	portT   AffineTransform
	display Transform[Point, Point]
	data    Transform[Triple, Point]

	hexagon [6]Triple
	patch   [6]Point
	tickTri [3]Point
	axisT   [3]*AxisTransform

	axes [3]*TernaryAxis
}

// NewAxes creates a ternary coordinate system showing the full triangle.
//
// Configuration errors (zero ternary sum, collinear corners, empty viewport,
// non-positive DPI) are reported immediately.
func NewAxes(opts ...Option) (*Axes, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	scale, err := NewScaleTransform(cfg.scale)
	if err != nil {
		return nil, err
	}

	tri := RegularTriangle()
	if cfg.corners != nil {
		c := cfg.corners
		if tri, err = NewTriangle(c[0], c[1], c[2]); err != nil {
			return nil, err
		}
	}
	if math.IsNaN(cfg.rotation) || math.IsInf(cfg.rotation, 0) {
		return nil, fmt.Errorf("ternary: rotation must be finite, got %g", cfg.rotation)
	}
	tri = tri.Rotated(cfg.rotation)

	proj, err := NewBarycentricTransform(tri)
	if err != nil {
		return nil, err
	}
	if !(cfg.viewport.Width() > 0 && cfg.viewport.Height() > 0) {
		return nil, fmt.Errorf("ternary: viewport %v: %w", cfg.viewport, ErrDegenerateView)
	}
	if !(cfg.dpi > 0) || math.IsInf(cfg.dpi, 0) {
		return nil, fmt.Errorf("ternary: dpi must be positive, got %g", cfg.dpi)
	}

	ax := &Axes{
		sum:      cfg.scale,
		tri:      tri,
		limits:   FullLimits(cfg.scale),
		viewport: cfg.viewport,
		dpi:      cfg.dpi,
		scale:    scale,
		proj:     proj,
	}
	ax.view = tri.Bounds().FitAspect(ax.aspect())
	if err := ax.rebuild(); err != nil {
		return nil, err
	}
	for _, a := range allAxes {
		ax.axes[a] = newTernaryAxis(ax, a)
	}

	if g := cfg.group; g != nil {
		if len(g.members) > 0 {
			src := g.members[0]
			if err := ax.applyLimits(src.limits.Scaled(ax.sum/src.sum), true); err != nil {
				return nil, err
			}
		}
		g.join(ax)
		ax.group = g
	}
	return ax, nil
}

// Sum returns the ternary sum S.
func (ax *Axes) Sum() float64 { return ax.sum }

// Triangle returns the (rotated) triangle in the reference plane.
func (ax *Axes) Triangle() Triangle { return ax.tri }

// Limits returns the current view limits.
func (ax *Axes) Limits() Limits { return ax.limits }

// View returns the Cartesian view box in the reference plane.
func (ax *Axes) View() Rect { return ax.view }

// Viewport returns the display rectangle in pixels.
func (ax *Axes) Viewport() Rect { return ax.viewport }

// DPI returns the display resolution.
func (ax *Axes) DPI() float64 { return ax.dpi }

// Axis returns the tick and label configuration of axis a.
func (ax *Axes) Axis(a Axis) *TernaryAxis { return ax.axes[a] }

// ShareGroup returns the group the axes belong to, or nil.
func (ax *Axes) ShareGroup() *ShareGroup { return ax.group }

// PointsToPixels converts a length in points to display pixels.
func (ax *Axes) PointsToPixels(pt float64) float64 { return pt * ax.dpi / 72 }

// aspect returns the viewport height over width; the view box is kept at
// the same ratio so that the reference plane has equal scales on screen.
func (ax *Axes) aspect() float64 {
	return ax.viewport.Height() / ax.viewport.Width()
}

// SetBounds sets all six view limits at once.
//
// Each interval whose span has the opposite sign to S is swapped, then every
// bound is clamped against the sum constraint of the other two axes. The
// Cartesian view box follows the visible region, keeping its aspect ratio.
// Limits that are not finite or become empty after clamping are reported as
// a *LimitError and leave the axes unchanged. A single interval of zero
// width is allowed; the visible region then collapses to a line.
func (ax *Axes) SetBounds(tmin, tmax, lmin, lmax, rmin, rmax float64) error {
	return ax.setLimits(Limits{{tmin, tmax}, {lmin, lmax}, {rmin, rmax}})
}

// SetMin sets the three minimums; each maximum follows from the sum
// constraint, e.g. tmax = S - lmin - rmin.
func (ax *Axes) SetMin(tmin, lmin, rmin float64) error {
	s := ax.sum
	return ax.SetBounds(tmin, s-lmin-rmin, lmin, s-tmin-rmin, rmin, s-tmin-lmin)
}

// SetMax sets the three maximums; each minimum follows from the sum
// constraint, e.g. tmin = S - lmax - rmax.
func (ax *Axes) SetMax(tmax, lmax, rmax float64) error {
	s := ax.sum
	return ax.SetBounds(s-lmax-rmax, tmax, s-tmax-rmax, lmax, s-tmax-lmax, rmax)
}

// AxisLimits returns the view limits of axis a.
func (ax *Axes) AxisLimits(a Axis) Interval { return ax.limits[a] }

// SetAxisLimits replaces the limits of axis a. The other two axes are
// clamped together with it.
func (ax *Axes) SetAxisLimits(a Axis, min, max float64) error {
	lim := ax.limits
	lim[a] = Interval{Min: min, Max: max}
	return ax.setLimits(lim)
}

func (ax *Axes) setLimits(lim Limits) error {
	if err := ax.applyLimits(lim, true); err != nil {
		return err
	}
	if ax.group != nil {
		ax.group.propagate(ax)
	}
	return nil
}

// applyLimits orients, clamps, validates and stores lim, optionally maps the
// view box along with the visible region, and rebuilds the transforms. On
// error the axes are left as they were.
func (ax *Axes) applyLimits(lim Limits, refit bool) error {
	s := ax.sum
	lim = lim.Oriented(s)
	if err := lim.Validate(s); err != nil {
		return err
	}
	clamped := lim.Clamp(s)
	if err := clamped.Validate(s); err != nil {
		return err
	}
	if math.Abs(clamped.TickHeight(s)) <= limitTolerance*math.Abs(s) {
		return &LimitError{Axis: T, Limits: clamped, Reason: "limits collapse to a single point"}
	}
	if clamped != lim {
		Logger().Debug("ternary: limits clamped", "requested", lim, "clamped", clamped)
	}

	oldLimits, oldView := ax.limits, ax.view
	oldBox := ax.hexagonBounds(oldLimits)
	ax.limits = clamped
	if refit {
		ax.refitView(oldBox, ax.hexagonBounds(clamped))
	}
	if err := ax.rebuild(); err != nil {
		ax.limits, ax.view = oldLimits, oldView
		if rerr := ax.rebuild(); rerr != nil {
			Logger().Warn("ternary: restoring previous limits failed", "err", rerr)
		}
		return err
	}
	return nil
}

// hexagonBounds returns the reference-plane bounding box of the visible
// region for lim.
func (ax *Axes) hexagonBounds(lim Limits) Rect {
	hex := lim.Hexagon(ax.sum)
	var pts [6]Point
	for i, v := range hex {
		pts[i] = ax.proj.Apply(ax.scale.Apply(v))
	}
	return BoundsOf(pts[:]...)
}

// refitTolerance is the relative extent below which a region box counts as
// a line, as it does after a zero-width limit.
const refitTolerance = 1e-9

// refitView maps the view box by the affine map taking oldBox onto newBox,
// then grows one dimension so the view keeps the viewport aspect. A
// collapsed oldBox cannot be mapped from; the view then starts over from
// newBox.
func (ax *Axes) refitView(oldBox, newBox Rect) {
	view := newBox
	extent := math.Max(math.Max(oldBox.Width(), oldBox.Height()), math.Max(newBox.Width(), newBox.Height()))
	if tol := refitTolerance * extent; oldBox.Width() > tol && oldBox.Height() > tol {
		view = RectToRect(oldBox, newBox).TransformRect(ax.view)
	}
	ax.view = view.FitAspect(ax.aspect())
	Logger().Debug("ternary: view refit", "view", ax.view)
}

// rebuild regenerates the transform graph, the boundary patch and the tick
// triangle from the current limits, view and viewport.
func (ax *Axes) rebuild() error {
	viewT, err := NewAffineTransform(RectToRect(ax.view, unitSquare))
	if err != nil {
		return fmt.Errorf("ternary: view %v: %w", ax.view, ErrDegenerateView)
	}
	portT, err := NewAffineTransform(RectToRect(unitSquare, ax.viewport))
	if err != nil {
		return fmt.Errorf("ternary: viewport %v: %w", ax.viewport, ErrDegenerateView)
	}

	s := ax.sum
	hex := ax.limits.Hexagon(s)
	var patch [6]Point
	for i, v := range hex {
		patch[i] = ax.proj.Apply(ax.scale.Apply(v))
	}
	mins := ax.limits.MinTriangle(s)
	var tickTri [3]Point
	for i, v := range mins {
		tickTri[i] = ax.proj.Apply(ax.scale.Apply(v))
	}
	height := ax.limits.TickHeight(s)
	var axisT [3]*AxisTransform
	for _, a := range allAxes {
		if axisT[a], err = NewAxisTransform(a, tickTri, ax.limits[a].Min, height); err != nil {
			return fmt.Errorf("ternary: %s axis transform: %w", a, err)
		}
	}

	ax.viewT, ax.portT = viewT, portT
	ax.display = Compose[Point, Point, Point](viewT, portT)
	ax.data = Compose[Triple, Point, Point](
		Compose[Triple, Triple, Point](ax.scale, ax.proj), ax.display)
	ax.hexagon, ax.patch, ax.tickTri, ax.axisT = hex, patch, tickTri, axisT
	return nil
}

// ScaleTransform returns the normalization by the ternary sum.
func (ax *Axes) ScaleTransform() ScaleTransform { return ax.scale }

// Projection returns the barycentric projection onto the triangle.
func (ax *Axes) Projection() *BarycentricTransform { return ax.proj }

// LimitsTransform maps the view box onto the unit square.
func (ax *Axes) LimitsTransform() AffineTransform { return ax.viewT }

// ViewportTransform maps the unit square onto the viewport.
func (ax *Axes) ViewportTransform() AffineTransform { return ax.portT }

// DisplayTransform maps the reference plane to display pixels.
func (ax *Axes) DisplayTransform() Transform[Point, Point] { return ax.display }

// DataTransform maps data triples to display pixels. Triples whose
// components sum to zero map to NaN; use Project for unchecked input.
func (ax *Axes) DataTransform() Transform[Triple, Point] { return ax.data }

// AxisTransform maps (value, side) of axis a to display pixels, where value
// is in data units and side 0 or 1 selects the tick1 or tick2 edge.
func (ax *Axes) AxisTransform(a Axis) Transform[Point, Point] {
	return Compose[Point, Point, Point](ax.axisT[a], ax.display)
}

// Project maps a data triple to display pixels.
// It fails with ErrZeroSum if the components of t sum to zero.
func (ax *Axes) Project(t Triple) (Point, error) {
	if t.Sum() == 0 || !t.IsFinite() {
		return Point{}, ErrZeroSum
	}
	return ax.data.Apply(t), nil
}

// Unproject maps display pixels to the data triple summing to S.
func (ax *Axes) Unproject(p Point) Triple {
	return ax.data.Invert(p)
}

// Hexagon returns the vertices of the visible region in data units.
func (ax *Axes) Hexagon() [6]Triple { return ax.hexagon }

// BoundaryPolygon returns the visible region in display pixels, in the
// vertex order of Limits.Hexagon. Coincident vertices are kept.
func (ax *Axes) BoundaryPolygon() []Point {
	out := make([]Point, len(ax.patch))
	for i, p := range ax.patch {
		out[i] = ax.display.Apply(p)
	}
	return out
}

// TickTriangle returns the corners of the triangle spanned by the three
// minimums in display pixels, in T, L, R order. Ticks and axis labels are
// laid out along its edges; it may extend beyond the visible region.
func (ax *Axes) TickTriangle() [3]Point {
	var out [3]Point
	for i, p := range ax.tickTri {
		out[i] = ax.display.Apply(p)
	}
	return out
}

// Clockwise reports whether the T, L, R corners wind clockwise on screen.
func (ax *Axes) Clockwise() bool {
	return ax.tri.Clockwise()
}

// SetView sets the Cartesian view box directly, as a pan or zoom would, and
// derives the ternary limits from it.
func (ax *Axes) SetView(r Rect) error {
	if !(r.Width() > 0 && r.Height() > 0) {
		return fmt.Errorf("ternary: view %v: %w", r, ErrDegenerateView)
	}
	old := ax.view
	ax.view = r.FitAspect(ax.aspect())
	if err := ax.SyncFromCartesian(); err != nil {
		ax.view = old
		return err
	}
	return nil
}

// SetViewport moves the axes to a new display rectangle. The view box grows
// in one dimension to match the new aspect ratio.
func (ax *Axes) SetViewport(r Rect) error {
	if !(r.Width() > 0 && r.Height() > 0) {
		return fmt.Errorf("ternary: viewport %v: %w", r, ErrDegenerateView)
	}
	oldPort, oldView := ax.viewport, ax.view
	ax.viewport = r
	ax.view = ax.view.FitAspect(ax.aspect())
	if err := ax.rebuild(); err != nil {
		ax.viewport, ax.view = oldPort, oldView
		return err
	}
	return nil
}

// SyncFromCartesian derives the ternary limits from the Cartesian view box.
// The corners of the view are inverted through the projection, the per-axis
// extremes are intersected with [0, S] and run through the same clamping as
// SetBounds. The view box itself is left as it is.
func (ax *Axes) SyncFromCartesian() error {
	s := ax.sum
	var lim Limits
	for i, c := range ax.view.Corners() {
		t := ax.scale.Invert(ax.proj.Invert(c))
		for _, a := range allAxes {
			v := t.At(a)
			if i == 0 {
				lim[a] = Interval{Min: v, Max: v}
				continue
			}
			lim[a].Min = selectMin(lim[a].Min, v, s)
			lim[a].Max = selectMax(lim[a].Max, v, s)
		}
	}
	for _, a := range allAxes {
		lim[a].Min = selectMax(lim[a].Min, 0, s)
		lim[a].Max = selectMin(lim[a].Max, s, s)
	}
	// An axis left empty by the clip means the view misses the triangle.
	if err := lim.Validate(s); err != nil {
		return err
	}
	if err := ax.applyLimits(lim, false); err != nil {
		return err
	}
	if ax.group != nil {
		ax.group.propagate(ax)
	}
	return nil
}

// Pan moves the view so that the reference-plane point under display pixel
// from ends up under to. If the view would leave the triangle entirely the
// pan is rejected and the view restored.
func (ax *Axes) Pan(from, to Point) error {
	a := ax.display.Invert(from)
	b := ax.display.Invert(to)
	return ax.gesture("pan", ax.view.Translate(a.Sub(b)))
}

// ZoomRect zooms onto the display rectangle spanned by p and q.
func (ax *Axes) ZoomRect(p, q Point) error {
	r := BoundsOf(ax.display.Invert(p), ax.display.Invert(q))
	if !(r.Width() > 0 || r.Height() > 0) {
		return fmt.Errorf("ternary: zoom rectangle: %w", ErrDegenerateView)
	}
	return ax.gesture("zoom", r.FitAspect(ax.aspect()))
}

// Zoom scales the view by factor about display pixel at; factors above 1
// zoom in.
func (ax *Axes) Zoom(factor float64, at Point) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("ternary: zoom factor must be positive, got %g", factor)
	}
	c := ax.display.Invert(at)
	return ax.gesture("zoom", ax.view.ScaleAbout(1/factor, c))
}

func (ax *Axes) gesture(kind string, view Rect) error {
	old := ax.view
	ax.view = view
	if err := ax.SyncFromCartesian(); err != nil {
		ax.view = old
		Logger().Warn("ternary: gesture rejected", "kind", kind, "err", err)
		return err
	}
	return nil
}
