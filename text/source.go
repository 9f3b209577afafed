package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation.
type FontSource struct {
	// addr must point to the FontSource itself; see copyCheck.
	addr *FontSource

	mu     sync.RWMutex
	sfnt   *opentype.Font
	shaped *gotext.Font
	name   string
	closed bool

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data is parsed twice: once by x/image for metrics and outlines and
// once by go-text for shaping.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	// go-text keeps a reader over the data, so it gets its own copy.
	face, err := gotext.ParseTTF(bytes.NewReader(bytes.Clone(data)))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		sfnt:   f,
		shaped: face.Font,
		config: config,
	}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in points.
// Panics if s is nil (e.g. when the error from NewFontSource was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil; check the error from NewFontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newFace(s, size, config)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases the parsed font. Faces created from s stop measuring and
// drawing after Close.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sfnt, s.shaped, s.closed = nil, nil, true
	return nil
}

// fonts returns the parsed fonts, or ErrClosed.
func (s *FontSource) fonts() (*opentype.Font, *gotext.Font, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, nil, ErrClosed
	}
	return s.sfnt, s.shaped, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func fontName(f *opentype.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if n, err := f.Name(nil, id); err == nil && n != "" {
			return n
		}
	}
	return "Unknown Font"
}
