package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrClosed is returned when a closed FontSource is used.
	ErrClosed = errors.New("text: font source is closed")

	// ErrInvalidSize is returned for non-positive or non-finite face sizes.
	ErrInvalidSize = errors.New("text: invalid face size")
)
