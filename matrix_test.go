package ternary

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats, including inside Points, Triples and Rects.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate about", RotateAbout(math.Pi, Pt(1, 1)), Pt(2, 1), Pt(0, 1)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 0)), Pt(0, 0), Pt(2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("TransformPoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5).Multiply(Scale(2, 2))
	if got := m.TransformVector(Pt(1, 1)); got != Pt(2, 2) {
		t.Errorf("TransformVector = %v, want (2, 2)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, -1).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, err := m.Invert()
	if err != nil {
		t.Fatal(err)
	}
	if !m.Multiply(inv).isNear(Identity()) {
		t.Errorf("m * inv = %+v, want identity", m.Multiply(inv))
	}

	for _, bad := range []Matrix{{}, Scale(0, 1), Scale(math.NaN(), 1), Scale(math.Inf(1), 1)} {
		if _, err := bad.Invert(); !errors.Is(err, ErrSingularMatrix) {
			t.Errorf("Invert(%+v) error = %v, want ErrSingularMatrix", bad, err)
		}
	}
}

func (m Matrix) isNear(o Matrix) bool {
	return cmp.Equal(m, o, approx)
}

func TestRectToRect(t *testing.T) {
	from := NewRect(1, 1, 3, 5)
	to := NewRect(0, 0, 1, 1)
	m := RectToRect(from, to)
	if diff := cmp.Diff(to, m.TransformRect(from), approx); diff != "" {
		t.Errorf("TransformRect mismatch (-want +got):\n%s", diff)
	}
	if _, err := RectToRect(NewRect(0, 0, 0, 1), to).Invert(); err == nil {
		t.Error("RectToRect from a zero-width box should be singular")
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}

func TestRectFitAspect(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		aspect float64
		want   Rect
	}{
		{"grow height", NewRect(0, 0, 2, 1), 1, NewRect(0, -0.5, 2, 1.5)},
		{"grow width", NewRect(0, 0, 1, 2), 1, NewRect(-0.5, 0, 1.5, 2)},
		{"already fit", NewRect(0, 0, 2, 1), 0.5, NewRect(0, 0, 2, 1)},
		{"line", NewRect(0, 0, 2, 0), 1, NewRect(0, -1, 2, 1)},
		{"point", NewRect(1, 1, 1, 1), 1, NewRect(1, 1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.r.FitAspect(tt.aspect), approx); diff != "" {
				t.Errorf("FitAspect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPointHelpers(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("Length = %v, want 5", p.Length())
	}
	if got := p.Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Normalize().Length() = %v, want 1", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
	if got := Pt(1, 0).Perp(); got != Pt(0, 1) {
		t.Errorf("Perp = %v, want (0, 1)", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := angleDeg(Pt(0, -1)); got != -90 {
		t.Errorf("angleDeg(0, -1) = %v, want -90", got)
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("NaN point reported finite")
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, 0).Lerp(Pt(4, 2), 0.25); got != Pt(1, 0.5) {
		t.Errorf("Lerp = %v, want (1, 0.5)", got)
	}
}

func TestNewRect(t *testing.T) {
	want := Rect{Min: Pt(1, 2), Max: Pt(3, 5)}
	for _, r := range []Rect{NewRect(1, 2, 3, 5), NewRect(3, 5, 1, 2), NewRect(1, 5, 3, 2)} {
		if r != want {
			t.Errorf("NewRect = %v, want %v", r, want)
		}
	}
	if got := want.ScaleAbout(2, Pt(1, 2)); got != NewRect(1, 2, 5, 8) {
		t.Errorf("ScaleAbout = %v, want (1, 2)-(5, 8)", got)
	}
	if got := want.ScaleAbout(0.5, want.Center()); got.Center() != want.Center() || got.Width() != 1 {
		t.Errorf("ScaleAbout around the center = %v", got)
	}
}
