package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ternary"
)

// loadTestFont loads the embedded Go font.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return source
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded, want error")
	}
	if _, err := NewFontSourceFromFile("does/not/exist.ttf"); err == nil {
		t.Error("NewFontSourceFromFile(missing) succeeded, want error")
	}
}

func TestFontSourceName(t *testing.T) {
	source := loadTestFont(t)
	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
}

func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12},
		{"size 24", 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := source.Face(tt.size).Metrics()
			if m.Ascent <= 0 {
				t.Errorf("Ascent should be positive, got %f", m.Ascent)
			}
			if m.Descent <= 0 {
				t.Errorf("Descent should be positive, got %f", m.Descent)
			}
			if m.LineGap < 0 {
				t.Errorf("LineGap should be non-negative, got %f", m.LineGap)
			}
			if got, want := m.LineHeight(), m.Ascent+m.Descent+m.LineGap; got != want {
				t.Errorf("LineHeight() = %f, want %f", got, want)
			}
		})
	}

	ratio := source.Face(24).Metrics().Ascent / source.Face(12).Metrics().Ascent
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("metrics scaling ratio = %f, want ~2", ratio)
	}
}

func TestFaceDPI(t *testing.T) {
	source := loadTestFont(t)
	at72 := source.Face(10).Advance("100")
	at144 := source.Face(10, WithDPI(144)).Advance("100")
	if at72 <= 0 {
		t.Fatalf("Advance = %f, want positive", at72)
	}
	if math.Abs(at144/at72-2) > 0.05 {
		t.Errorf("advance ratio at 144 dpi = %f, want ~2", at144/at72)
	}
}

func TestFaceAdvance(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(12)

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %f, want 0", got)
	}
	one := face.Advance("0")
	three := face.Advance("000")
	// Digits are tabular in the Go font.
	if math.Abs(three-3*one) > 1e-6 {
		t.Errorf("Advance(\"000\") = %f, want %f", three, 3*one)
	}
	if face.Advance("0.25") <= face.Advance("0.2") {
		t.Error("longer string should advance further")
	}
}

func TestFaceShapeCached(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithCacheLimit(2))
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(12)
	for _, s := range []string{"a", "b", "c", "a"} {
		if len(face.Shape(s)) != 1 {
			t.Fatalf("Shape(%q) returned %d glyphs, want 1", s, len(face.Shape(s)))
		}
	}
	if n := face.shaped.len(); n != 2 {
		t.Errorf("cache holds %d entries, want 2", n)
	}
}

func TestFaceMeasureText(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(12)

	var _ ternary.TextMeasurer = face

	if got := face.MeasureText(""); got != (ternary.TextExtent{}) {
		t.Errorf("MeasureText(\"\") = %+v, want zero", got)
	}
	ext := face.MeasureText("0.5")
	m := face.Metrics()
	if ext.Width != face.Advance("0.5") || ext.Ascent != m.Ascent || ext.Descent != m.Descent {
		t.Errorf("MeasureText = %+v, metrics %+v", ext, m)
	}
}

func TestFaceClosedSource(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(12)
	if err := source.Close(); err != nil {
		t.Fatal(err)
	}
	if got := face.Metrics(); got != (Metrics{}) {
		t.Errorf("Metrics after Close = %+v, want zero", got)
	}
	if got := face.Shape("x"); got != nil {
		t.Errorf("Shape after Close = %v, want nil", got)
	}
	err := face.AppendOutline(&recorder{}, ternary.TextGeometry{Text: "x"}, identity)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("AppendOutline after Close error = %v, want ErrClosed", err)
	}
}

func TestFaceInvalidSize(t *testing.T) {
	source := loadTestFont(t)
	for _, size := range []float64{0, -3, math.Inf(1)} {
		face := source.Face(size)
		if got := face.Advance("x"); got != 0 {
			t.Errorf("size %g: Advance = %f, want 0", size, got)
		}
		err := face.AppendOutline(&recorder{}, ternary.TextGeometry{Text: "x"}, identity)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %g: AppendOutline error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestFontSourceCopyCheck(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		if recover() == nil {
			t.Error("copied FontSource did not panic")
		}
	}()
	cp := &FontSource{addr: source}
	cp.Name()
}
