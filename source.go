package glyphatlas

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/text"
)

// GlyphSource is the font engine a bake draws from. All values are measured
// at the oversampled size, so the source must have been created with the
// same oversample factor as Options.Oversample. *text.Face implements it.
type GlyphSource interface {
	// HasGlyph reports whether the font has a glyph for r.
	HasGlyph(r rune) bool

	// InkBox returns the size of the pixel-aligned ink box of r.
	InkBox(r rune) (width, height fixed.Int26_6, err error)

	// Rasterize renders r into a coverage bitmap.
	Rasterize(r rune) (*text.Bitmap, error)

	// Ascender returns the font ascent.
	Ascender() (fixed.Int26_6, error)
}

var _ GlyphSource = (*text.Face)(nil)
