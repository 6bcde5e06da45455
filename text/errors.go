package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFont is returned when font data cannot be parsed or a face
	// cannot be created at the requested size.
	ErrInvalidFont = errors.New("text: invalid font")
)
