package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Bitmap is a rasterized glyph at the oversampled size.
type Bitmap struct {
	// Mask holds coverage values. Its bounds start at (0, 0); row 0 is the
	// top of the ink box.
	Mask *image.Alpha

	// Left is the distance in pixels from the glyph origin to column 0.
	Left int

	// Top is the distance in pixels from the baseline up to row 0.
	Top int

	// Advance, BearingX and BearingY are the glyph metrics in 26.6.
	// BearingY is positive above the baseline.
	Advance  fixed.Int26_6
	BearingX fixed.Int26_6
	BearingY fixed.Int26_6
}

// Width returns the number of columns in the mask.
func (b *Bitmap) Width() int { return b.Mask.Rect.Dx() }

// Rows returns the number of rows in the mask.
func (b *Bitmap) Rows() int { return b.Mask.Rect.Dy() }

// At returns the coverage at column x, row y, or 0 outside the mask.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Rows() {
		return 0
	}
	return b.Mask.Pix[y*b.Mask.Stride+x]
}

// Rasterize renders r into a coverage mask sized to its pixel-aligned ink
// box. Glyphs without ink (such as space) yield an empty mask with valid
// metrics.
func (f *Face) Rasterize(r rune) (*Bitmap, error) {
	m, err := f.GlyphMetrics(r)
	if err != nil {
		return nil, err
	}

	minX, minY := m.Bounds.Min.X.Floor(), m.Bounds.Min.Y.Floor()
	w := m.Bounds.Max.X.Floor() - minX
	h := m.Bounds.Max.Y.Floor() - minY

	bm := &Bitmap{
		Mask:     image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0))),
		Left:     minX,
		Top:      -minY,
		Advance:  m.Advance,
		BearingX: m.Bounds.Min.X,
		BearingY: -m.Bounds.Min.Y,
	}
	if w <= 0 || h <= 0 {
		return bm, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	segs, err := f.source.font.LoadGlyph(&f.buf, m.Index, f.ppem, nil)
	if err != nil {
		return nil, &GlyphError{Rune: r, Op: "rasterize", Err: err}
	}
	f.fill(bm.Mask, segs, fixed.P(-minX, -minY))
	return bm, nil
}

// fill draws segs, shifted by bias, into mask. Caller must hold f.mu.
func (f *Face) fill(mask *image.Alpha, segs sfnt.Segments, bias fixed.Point26_6) {
	size := mask.Rect.Size()
	f.rast.Reset(size.X, size.Y)
	f.rast.DrawOp = draw.Src

	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+bias.X) / 64, float32(p.Y+bias.Y) / 64
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			f.rast.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			f.rast.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			f.rast.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			f.rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	f.rast.ClosePath()
	f.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
}
