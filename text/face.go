package text

import (
	"math"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ternary"
)

// Metrics holds font metrics in pixels at a face's size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Glyph is a shaped glyph positioned relative to the start of the baseline,
// in pixels with y pointing up.
type Glyph struct {
	ID      sfnt.GlyphIndex
	X, Y    float64
	Advance float64
}

// Face is a font at a specific size and resolution.
// Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	ppem   float64
	lang   language.Language
	shaped *cache[string, []Glyph]
}

func newFace(s *FontSource, size float64, config faceConfig) *Face {
	return &Face{
		source: s,
		size:   size,
		ppem:   size * config.dpi / 72,
		lang:   language.NewLanguage(config.language),
		shaped: newCache[string, []Glyph](s.config.cacheLimit),
	}
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in points.
func (f *Face) Size() float64 { return f.size }

// PixelsPerEm returns the em size in pixels.
func (f *Face) PixelsPerEm() float64 { return f.ppem }

// valid reports whether the size can be rendered.
func (f *Face) valid() bool {
	return f.ppem > 0 && !math.IsInf(f.ppem, 0)
}

// Metrics returns the font metrics at this face's size. A closed source or
// an invalid size yields zero metrics.
func (f *Face) Metrics() Metrics {
	sf, _, err := f.source.fonts()
	if err != nil || !f.valid() {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := sf.Metrics(&buf, toFixed(f.ppem), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent, descent := fromFixed(m.Ascent), math.Abs(fromFixed(m.Descent))
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: math.Max(fromFixed(m.Height)-ascent-descent, 0),
	}
}

// Shape returns the positioned glyphs of s. Results are cached per face.
func (f *Face) Shape(s string) []Glyph {
	if s == "" || !f.valid() {
		return nil
	}
	if g, ok := f.shaped.get(s); ok {
		return g
	}
	_, gf, err := f.source.fonts()
	if err != nil {
		return nil
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(gf),
		Size:      toFixed(f.ppem),
		Script:    detectScript(runes),
		Language:  f.lang,
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph IDs fit in 16 bits
			X:       x + fromFixed(g.XOffset),
			Y:       fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	f.shaped.set(s, glyphs)
	return glyphs
}

// Advance returns the total advance width of s in pixels.
func (f *Face) Advance(s string) float64 {
	var w float64
	for _, g := range f.Shape(s) {
		w += g.Advance
	}
	return w
}

// MeasureText implements ternary.TextMeasurer. Ascent and descent are the
// font's, not the string's, so labels on one axis line up.
func (f *Face) MeasureText(s string) ternary.TextExtent {
	if s == "" {
		return ternary.TextExtent{}
	}
	m := f.Metrics()
	return ternary.TextExtent{Width: f.Advance(s), Ascent: m.Ascent, Descent: m.Descent}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
