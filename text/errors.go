package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoGlyph is returned when the font maps no glyph to a code point.
	ErrNoGlyph = errors.New("text: no glyph for code point")

	// ErrClosed is returned by faces of a closed FontSource.
	ErrClosed = errors.New("text: font source closed")
)

// FontIndexError is returned when the requested member of a font
// collection does not exist.
type FontIndexError struct {
	Index    int
	NumFonts int
}

func (e *FontIndexError) Error() string {
	return fmt.Sprintf("text: font index %d out of range, file has %d font(s)", e.Index, e.NumFonts)
}

// GlyphError reports a failure to load or rasterize one glyph.
type GlyphError struct {
	Rune rune
	Op   string // "load", "bounds", "advance" or "rasterize"
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: %s glyph U+%04X: %v", e.Op, e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }
