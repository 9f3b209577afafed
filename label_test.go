package ternary

import (
	"fmt"
	"math"
	"testing"
)

func TestReadableAngle(t *testing.T) {
	tests := []struct {
		in      float64
		want    float64
		flipped bool
	}{
		{0, 0, false},
		{45, 45, false},
		{90, 90, false},
		{-90, -90, false},
		{120, -60, true},
		{-120, 60, true},
		{180, 0, true},
		{-180, 0, true},
		{270, -90, false},
		{405, 45, false},
	}
	for _, tt := range tests {
		got, flipped := readableAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-12 || flipped != tt.flipped {
			t.Errorf("readableAngle(%v) = %v, %v; want %v, %v", tt.in, got, flipped, tt.want, tt.flipped)
		}
	}
}

func TestBandAnchors(t *testing.T) {
	tests := []struct {
		deg float64
		ha  HAlign
		va  VAlign
	}{
		{0, HAlignLeft, VAlignCenter},
		{15, HAlignLeft, VAlignCenter},
		{45, HAlignLeft, VAlignBottom},
		{-45, HAlignLeft, VAlignTop},
		{75, HAlignCenter, VAlignBottom},
		{90, HAlignCenter, VAlignBottom},
		{-90, HAlignCenter, VAlignTop},
		{135, HAlignRight, VAlignBottom},
		{-135, HAlignRight, VAlignTop},
		{165, HAlignRight, VAlignCenter},
		{180, HAlignRight, VAlignCenter},
		{360, HAlignLeft, VAlignCenter},
	}
	for _, tt := range tests {
		ha, va := bandAnchors(tt.deg)
		if ha != tt.ha || va != tt.va {
			t.Errorf("bandAnchors(%v) = %v, %v; want %v, %v", tt.deg, ha, va, tt.ha, tt.va)
		}
	}
}

func TestAlongTick(t *testing.T) {
	tests := []struct {
		name string
		out  Point
		rot  float64
		ha   HAlign
	}{
		{"right", Pt(1, 0), 0, HAlignLeft},
		{"left", Pt(-1, 0), 0, HAlignRight},
		{"up", Pt(0, 1), 90, HAlignLeft},
		{"down", Pt(0, -1), 90, HAlignRight},
		{"down left", Pt(-1, -1), 45, HAlignRight},
		{"up right", Pt(1, 1), 45, HAlignLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot, ha, va := alongTick(tt.out)
			if math.Abs(rot-tt.rot) > 1e-9 || ha != tt.ha || va != VAlignCenter {
				t.Errorf("alongTick(%v) = %v, %v, %v; want %v, %v, center", tt.out, rot, ha, va, tt.rot, tt.ha)
			}
		})
	}
}

func TestAlongLineVertical(t *testing.T) {
	origin, target := Pt(0, 0), Pt(0, 10)
	// Interior on the right: the label goes left, above the text.
	rot, _, va := alongLine(origin, target, Pt(5, 5), false, false)
	if rot != 90 || va != VAlignBottom {
		t.Errorf("interior right: %v, %v; want 90, bottom", rot, va)
	}
	rot, _, va = alongLine(origin, target, Pt(-5, 5), false, false)
	if rot != 90 || va != VAlignTop {
		t.Errorf("interior left: %v, %v; want 90, top", rot, va)
	}
	// A clockwise triangle flips the anchor.
	if _, _, va = alongLine(origin, target, Pt(5, 5), false, true); va != VAlignTop {
		t.Errorf("interior right, clockwise: %v, want top", va)
	}
}

// textSide returns +1 if text with rotation deg and vertical anchor va lies
// on the side of its anchor that n points to, -1 if on the other side.
func textSide(deg float64, va VAlign, n Point) float64 {
	rad := deg * math.Pi / 180
	up := Pt(-math.Sin(rad), math.Cos(rad))
	side := math.Copysign(1, up.Dot(n))
	if va == VAlignTop {
		side = -side
	}
	return side
}

func TestAxisLabelAnchorsFollowWinding(t *testing.T) {
	mirrored := []Option{WithCorners(Pt(0.5, -math.Sqrt(3)/2), Pt(0, 0), Pt(1, 0))}
	for _, winding := range [][]Option{nil, mirrored} {
		for deg := 0.0; deg < 360; deg += 15 {
			ax := newTestAxes(t, append([]Option{WithRotation(deg)}, winding...)...)
			// Counterclockwise text sits on the outer side of its anchor;
			// clockwise text hangs back towards the axis.
			want := 1.0
			if ax.Clockwise() {
				want = -1
			}
			for _, a := range allAxes {
				ta := ax.Axis(a)
				for _, pos := range []LabelPosition{LabelTick1, LabelTick2, LabelCorner} {
					if err := ta.SetLabelPosition(pos); err != nil {
						t.Fatal(err)
					}
					g := ta.LabelGeometry()
					f := ta.labelFrame()
					if g.HAlign != HAlignCenter {
						t.Errorf("rotation %v clockwise %v %s %s: ha = %v, want center",
							deg, ax.Clockwise(), a, pos, g.HAlign)
					}
					if got := textSide(g.Rotation, g.VAlign, f.normal); got != want {
						t.Errorf("rotation %v clockwise %v %s %s: text side %v, want %v (rot %v, va %v)",
							deg, ax.Clockwise(), a, pos, got, want, g.Rotation, g.VAlign)
					}
					if g.Rotation < -90-1e-9 || g.Rotation > 90+1e-9 {
						t.Errorf("rotation %v %s %s: label upside down at %v", deg, a, pos, g.Rotation)
					}
				}
			}
		}
	}
}

func TestLabelAnchorsFlipWithSwappedCorners(t *testing.T) {
	h := math.Sqrt(3) / 2
	// Swapping L and R mirrors the triangle; rotating the mirror the other
	// way keeps the two figures mirror images.
	for _, deg := range []float64{0, 15, 45} {
		t.Run(fmt.Sprint(deg), func(t *testing.T) {
			regular := newTestAxes(t, WithRotation(deg))
			swapped := newTestAxes(t, WithCorners(Pt(0.5, h), Pt(1, 0), Pt(0, 0)), WithRotation(-deg))
			if !swapped.Clockwise() {
				t.Fatal("swapping two corners kept the winding")
			}
			for _, a := range allAxes {
				for _, pos := range []LabelPosition{LabelTick1, LabelTick2} {
					for _, ax := range []*Axes{regular, swapped} {
						if err := ax.Axis(a).SetLabelPosition(pos); err != nil {
							t.Fatal(err)
						}
					}
					want := regular.Axis(a).LabelGeometry()
					got := swapped.Axis(a).LabelGeometry()
					if math.Abs(math.Abs(got.Rotation)-math.Abs(want.Rotation)) > 1e-9 {
						t.Errorf("%s %s: rotation %v, want magnitude %v", a, pos, got.Rotation, math.Abs(want.Rotation))
					}
					if got.VAlign == want.VAlign {
						t.Errorf("%s %s: va %v did not flip", a, pos, got.VAlign)
					}
				}
			}
		})
	}
}

func TestCornerLabelsCentered(t *testing.T) {
	ax := newTestAxes(t)
	for _, a := range allAxes {
		ta := ax.Axis(a)
		if err := ta.SetLabelPosition(LabelCorner); err != nil {
			t.Fatal(err)
		}
		if g := ta.LabelGeometry(); g.HAlign != HAlignCenter {
			t.Errorf("%s corner label ha = %v, want center", a, g.HAlign)
		}
	}
}

func TestTickLabelsFaceOutward(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 30 {
		ax := newTestAxes(t, WithRotation(deg))
		for _, a := range allAxes {
			ta := ax.Axis(a)
			if err := ta.SetTickPosition(TicksBoth); err != nil {
				t.Fatal(err)
			}
			for _, tk := range ta.Ticks() {
				rad := tk.Label.Rotation * math.Pi / 180
				reading := Pt(math.Cos(rad), math.Sin(rad))
				if tk.Label.HAlign == HAlignRight {
					reading = reading.Mul(-1)
				}
				out := tk.Start.Sub(tk.Position)
				if reading.Dot(out) <= 0 {
					t.Errorf("rotation %v %s tick %v side %d: label reads into the triangle",
						deg, a, tk.Value, tk.Side)
				}
			}
		}
	}
}
