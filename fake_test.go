package glyphatlas

import (
	"errors"
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/text"
)

// fakeGlyph describes a glyph of fakeSource in oversampled pixels.
type fakeGlyph struct {
	w, h     int
	top      int
	advance  fixed.Int26_6
	bearingX fixed.Int26_6

	// pix returns the coverage at (x, y); nil means fully covered.
	pix func(x, y int) uint8

	inkErr, rasterErr error
}

// fakeSource is a GlyphSource with hand-made bitmaps.
type fakeSource struct {
	glyphs   map[rune]fakeGlyph
	ascender fixed.Int26_6
}

var errFake = errors.New("fake engine failure")

func (f *fakeSource) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

func (f *fakeSource) InkBox(r rune) (fixed.Int26_6, fixed.Int26_6, error) {
	g := f.glyphs[r]
	if g.inkErr != nil {
		return 0, 0, g.inkErr
	}
	return fixed.I(g.w), fixed.I(g.h), nil
}

func (f *fakeSource) Rasterize(r rune) (*text.Bitmap, error) {
	g, ok := f.glyphs[r]
	if !ok {
		return nil, text.ErrNoGlyph
	}
	if g.rasterErr != nil {
		return nil, g.rasterErr
	}
	mask := image.NewAlpha(image.Rect(0, 0, g.w, g.h))
	for y := range g.h {
		for x := range g.w {
			v := uint8(0xFF)
			if g.pix != nil {
				v = g.pix(x, y)
			}
			mask.Pix[y*mask.Stride+x] = v
		}
	}
	return &text.Bitmap{
		Mask:     mask,
		Top:      g.top,
		Advance:  g.advance,
		BearingX: g.bearingX,
		BearingY: fixed.I(g.top),
	}, nil
}

func (f *fakeSource) Ascender() (fixed.Int26_6, error) {
	return f.ascender, nil
}

// uniformSource returns a source with n glyphs of w x h starting at 'A'.
func uniformSource(n, w, h int) (*fakeSource, []rune) {
	src := &fakeSource{glyphs: make(map[rune]fakeGlyph, n), ascender: fixed.I(h)}
	runes := make([]rune, n)
	for i := range n {
		r := 'A' + rune(i)
		runes[i] = r
		src.glyphs[r] = fakeGlyph{w: w, h: h, top: h, advance: fixed.I(w + 1)}
	}
	return src, runes
}
