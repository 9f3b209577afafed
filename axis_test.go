package ternary

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAxisDefaults(t *testing.T) {
	ax := newTestAxes(t)
	for _, a := range allAxes {
		ta := ax.Axis(a)
		if ta.Index() != a {
			t.Errorf("Axis(%v).Index() = %v", a, ta.Index())
		}
		if ta.LabelPosition() != LabelTick1 || ta.TickPosition() != TicksTick1 {
			t.Errorf("axis %v starts at %v/%v, want tick1/tick1", a, ta.LabelPosition(), ta.TickPosition())
		}
	}
}

func TestAxisSettersRejectUnknownValues(t *testing.T) {
	ta := newTestAxes(t).Axis(T)
	tests := []struct {
		name string
		set  func() error
	}{
		{"label position", func() error { return ta.SetLabelPosition(LabelPosition(3)) }},
		{"negative label position", func() error { return ta.SetLabelPosition(-1) }},
		{"tick position", func() error { return ta.SetTickPosition(TickPosition(7)) }},
		{"tick direction", func() error { return ta.SetTickDirection(TickDirection(5)) }},
		{"label rotation mode", func() error { return ta.SetLabelRotationMode(RotationMode(9)) }},
		{"tick label rotation mode", func() error { return ta.SetTickLabelRotationMode(-2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var oe *InvalidOptionError
			if err := tt.set(); !errors.As(err, &oe) {
				t.Fatalf("error = %v, want *InvalidOptionError", err)
			}
		})
	}
	if ta.LabelPosition() != LabelTick1 || ta.TickPosition() != TicksTick1 {
		t.Error("rejected setters changed the axis")
	}
}

func TestTicksFullTriangle(t *testing.T) {
	ax := newTestAxes(t)
	ta := ax.Axis(T)
	ticks := ta.Ticks()
	if len(ticks) != 11 {
		t.Fatalf("got %d ticks, want 11", len(ticks))
	}
	c := ax.TickTriangle()
	length := ax.PointsToPixels(defaultTickLength)
	for _, tk := range ticks {
		if tk.Side != 0 {
			t.Errorf("tick %v on side %d", tk.Value, tk.Side)
		}
		// Tick1 of T runs along the T-L edge.
		edge := c[L].Sub(c[T])
		if d := math.Abs(edge.Cross(tk.Position.Sub(c[T]))) / edge.Length(); d > 1e-9 {
			t.Errorf("tick %v is %v px off the edge", tk.Value, d)
		}
		if d := tk.Start.Distance(tk.Position); math.Abs(d-length) > 1e-9 {
			t.Errorf("tick %v length %v, want %v", tk.Value, d, length)
		}
		if tk.End != tk.Position {
			t.Errorf("outward tick %v ends at %v, want %v", tk.Value, tk.End, tk.Position)
		}
		if tk.Value > 0 && tk.Value < 1 {
			// T gridlines are horizontal, so ticks point straight left.
			if math.Abs(tk.Angle-180) > 1e-6 && math.Abs(tk.Angle+180) > 1e-6 {
				t.Errorf("tick %v angle %v, want 180", tk.Value, tk.Angle)
			}
			if tk.Label.HAlign != HAlignRight || math.Abs(tk.Label.Rotation) > 1e-6 {
				t.Errorf("tick %v label %+v, want right aligned and level", tk.Value, tk.Label)
			}
		}
	}
	if ticks[0].Label.Text != "0.0" || ticks[10].Label.Text != "1.0" {
		t.Errorf("labels %q...%q, want 0.0...1.0", ticks[0].Label.Text, ticks[10].Label.Text)
	}

	// At the apex both sides meet; the tick follows the edge normal.
	apex := ticks[10]
	if diff := cmp.Diff(c[T], apex.Position, approx); diff != "" {
		t.Errorf("apex tick position mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(apex.Angle-150) > 1e-6 {
		t.Errorf("apex tick angle %v, want 150", apex.Angle)
	}
}

func TestTicksDroppedOutsideRegion(t *testing.T) {
	ax := newTestAxes(t)
	if err := ax.SetBounds(0, 1, 0, 1, 0, 0.5); err != nil {
		t.Fatal(err)
	}
	ta := ax.Axis(T)
	ta.SetLocator(FixedLocator{0, 0.25, 0.5, 0.75, 1})

	tests := []struct {
		pos  TickPosition
		want []float64
	}{
		// Along R = 0 every T value is reachable.
		{TicksTick1, []float64{0, 0.25, 0.5, 0.75, 1}},
		// Along L = 0, R = 1 - T must stay below 0.5.
		{TicksTick2, []float64{0.5, 0.75, 1}},
		{TicksBoth, []float64{0, 0.25, 0.5, 0.75, 1, 0.5, 0.75, 1}},
		{TicksNone, nil},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			if err := ta.SetTickPosition(tt.pos); err != nil {
				t.Fatal(err)
			}
			var got []float64
			for _, tk := range ta.Ticks() {
				got = append(got, tk.Value)
				tr := ax.Unproject(tk.Position)
				if !ax.Limits().Contains(tr, 1, 1e-9) {
					t.Errorf("tick %v at %v outside the limits", tk.Value, tr)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tick values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTicksNegativeSum(t *testing.T) {
	ax := newTestAxes(t, WithScale(-1))
	ta := ax.Axis(L)
	ta.SetLocator(FixedLocator{0, -0.5, -1})
	ticks := ta.Ticks()
	if len(ticks) != 3 {
		t.Fatalf("got %d ticks, want 3", len(ticks))
	}
	pos := newTestAxes(t)
	want := pos.Axis(L)
	want.SetLocator(FixedLocator{0, 0.5, 1})
	wantTicks := want.Ticks()
	// FixedLocator sorts ascending, so the negative ticks come in reverse.
	for i, tk := range ticks {
		w := wantTicks[len(wantTicks)-1-i]
		if diff := cmp.Diff(w.Position, tk.Position, approx); diff != "" {
			t.Errorf("tick %v position mismatch (-S=1 +S=-1):\n%s", tk.Value, diff)
		}
	}
}

func TestTickDirection(t *testing.T) {
	ax := newTestAxes(t)
	ta := ax.Axis(R)
	ta.SetLocator(FixedLocator{0.5})
	length := ax.PointsToPixels(defaultTickLength)
	tests := []struct {
		dir     TickDirection
		out, in float64
	}{
		{TickOut, 1, 0},
		{TickIn, 0, 1},
		{TickInOut, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if err := ta.SetTickDirection(tt.dir); err != nil {
				t.Fatal(err)
			}
			ticks := ta.Ticks()
			if len(ticks) != 1 {
				t.Fatalf("got %d ticks, want 1", len(ticks))
			}
			tk := ticks[0]
			if d := tk.Start.Distance(tk.Position); math.Abs(d-tt.out*length) > 1e-9 {
				t.Errorf("outer extent %v, want %v", d, tt.out*length)
			}
			if d := tk.End.Distance(tk.Position); math.Abs(d-tt.in*length) > 1e-9 {
				t.Errorf("inner extent %v, want %v", d, tt.in*length)
			}
		})
	}
}

func TestGridlines(t *testing.T) {
	ax := newTestAxes(t)
	lines := ax.Axis(T).Gridlines()
	if len(lines) != 11 {
		t.Fatalf("got %d gridlines, want 11", len(lines))
	}
	for _, s := range lines {
		if math.Abs(s.From.Y-s.To.Y) > 1e-9 {
			t.Errorf("T gridline %v is not horizontal", s)
		}
	}

	if err := ax.SetBounds(0.2, 0.6, 0.1, 0.5, 0.3, 0.7); err != nil {
		t.Fatal(err)
	}
	ta := ax.Axis(L)
	ta.SetLocator(FixedLocator{0, 0.3, 0.45, 0.9})
	lines = ta.Gridlines()
	if len(lines) != 2 {
		t.Fatalf("got %d gridlines in the zoomed view, want 2", len(lines))
	}
	for _, s := range lines {
		for _, p := range []Point{s.From, s.To} {
			if tr := ax.Unproject(p); !ax.Limits().Contains(tr, 1, 1e-9) {
				t.Errorf("gridline end %v outside the limits", tr)
			}
		}
	}
}

func TestLabelGeometry(t *testing.T) {
	ax := newTestAxes(t)
	ta := ax.Axis(T)
	ta.SetLabel("Top")
	c := ax.TickTriangle()
	px := ax.PointsToPixels

	g := ta.LabelGeometry()
	mid := c[T].Lerp(c[L], 0.5)
	normal := Pt(-math.Sqrt(3)/2, 0.5)
	wantAnchor := mid.Add(normal.Mul(px(defaultTickLength + defaultTickPad + defaultLabelPad)))
	if diff := cmp.Diff(wantAnchor, g.Anchor, approx); diff != "" {
		t.Errorf("tick1 anchor mismatch (-want +got):\n%s", diff)
	}
	if g.Text != "Top" || math.Abs(g.Rotation-60) > 1e-9 || g.HAlign != HAlignCenter || g.VAlign != VAlignBottom {
		t.Errorf("tick1 label = %+v, want Top at 60 degrees, center/bottom", g)
	}

	// Without ticks on its side the label sits just the pad away.
	if err := ta.SetLabelPosition(LabelTick2); err != nil {
		t.Fatal(err)
	}
	g = ta.LabelGeometry()
	mid = c[T].Lerp(c[R], 0.5)
	wantAnchor = mid.Add(Pt(math.Sqrt(3)/2, 0.5).Mul(px(defaultLabelPad)))
	if diff := cmp.Diff(wantAnchor, g.Anchor, approx); diff != "" {
		t.Errorf("tick2 anchor mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(g.Rotation+60) > 1e-9 || g.VAlign != VAlignBottom {
		t.Errorf("tick2 label = %+v, want -60 degrees, bottom", g)
	}

	if err := ta.SetLabelPosition(LabelCorner); err != nil {
		t.Fatal(err)
	}
	g = ta.LabelGeometry()
	if diff := cmp.Diff(c[T].Add(Pt(0, px(defaultLabelPad))), g.Anchor, approx); diff != "" {
		t.Errorf("corner anchor mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(g.Rotation) > 1e-9 || g.HAlign != HAlignCenter || g.VAlign != VAlignBottom {
		t.Errorf("corner label = %+v, want level, center/bottom", g)
	}

	if err := ta.SetLabelRotationMode(RotateHorizontal); err != nil {
		t.Fatal(err)
	}
	if err := ta.SetLabelPosition(LabelTick1); err != nil {
		t.Fatal(err)
	}
	g = ta.LabelGeometry()
	if g.Rotation != 0 || g.HAlign != HAlignRight || g.VAlign != VAlignBottom {
		t.Errorf("horizontal label = %+v, want level, right/bottom", g)
	}

	ta.SetLabelRotation(30, HAlignLeft, VAlignTop)
	g = ta.LabelGeometry()
	if g.Rotation != 30 || g.HAlign != HAlignLeft || g.VAlign != VAlignTop {
		t.Errorf("manual label = %+v, want 30 degrees, left/top", g)
	}
}
