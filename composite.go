package glyphatlas

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/text"
)

// gridMasks are ORed into glyph pixels when Options.ShowGrid is set,
// cycling per slot index.
var gridMasks = [...]uint8{0x66, 0x44, 0x88}

// baseline returns the row, counted from the top of a cell interior, that
// glyphs sit on in fixed-height mode.
func baseline(ascender fixed.Int26_6, opts *Options) int {
	return text.CeilDiv(ascender.Ceil(), opts.Oversample) + opts.YOffset
}

// compositor writes glyph bitmaps into the atlas. It owns dst for the
// duration of composition.
type compositor struct {
	src      GlyphSource
	opts     *Options
	dst      *Surface
	baseline int
	diags    *diagnostics
}

// composeAll renders every packed, non-empty slot.
func (c *compositor) composeAll(slots []Slot) {
	for i := range slots {
		s := &slots[i]
		if s.Status != SlotPending {
			continue
		}
		c.compose(s)
	}
}

// compose rasterizes one slot and writes it into its cell.
func (c *compositor) compose(s *Slot) {
	bm, err := c.src.Rasterize(s.CodePoint)
	if err != nil {
		s.Status = SlotFailed
		c.diags.add(Diagnostic{Kind: DiagGlyphLoad, Slot: s.Index, CodePoint: s.CodePoint, Err: err})
		return
	}
	s.metrics = glyphMetrics{
		advance:  bm.Advance,
		bearingX: bm.BearingX,
		bearingY: bm.BearingY,
	}
	// Nothing to draw, and nothing that could overflow the cell.
	if bm.Rows() == 0 || bm.Width() == 0 {
		return
	}

	p := s.Placement
	pad := c.opts.Padding
	os := c.opts.Oversample
	cellW := max(p.W-2*pad, 0)
	cellH := max(p.H-2*pad, 0)

	// Vertical placement inside the cell, in destination rows.
	dstY := 0
	if c.opts.fixedHeight() {
		dstY = c.baseline - text.CeilDiv(bm.Top, os)
	}
	rows := text.CeilDiv(bm.Rows(), os)
	srcY := 0
	if dstY < 0 {
		c.crop(s, CropTop, -dstY)
		srcY = -dstY * os
		rows += dstY
		dstY = 0
	}
	if over := dstY + rows - cellH; over > 0 {
		c.crop(s, CropBottom, over)
		rows -= over
	}

	cols := text.CeilDiv(bm.Width(), os)
	if over := cols - cellW; over > 0 {
		c.crop(s, CropRight, over)
		cols = cellW
	}

	// From here on 0 <= dstY, dstY+rows <= cellH and cols <= cellW, so
	// every write stays inside the slot's interior.
	var grid uint8
	if c.opts.ShowGrid {
		grid = gridMasks[s.Index%len(gridMasks)]
	}
	x0, y0 := p.X+pad, p.Y+pad+dstY
	for y := range max(rows, 0) {
		out := c.dst.row(x0, y0+y, cols)
		sy := srcY + y*os
		for x := range out {
			v := downsample(bm, x*os, sy, os)
			out[x] = remapAlpha(v, c.opts.AlphaMin, c.opts.AlphaMax) | grid
		}
	}
}

func (c *compositor) crop(s *Slot, edge CropEdge, amount int) {
	c.diags.add(Diagnostic{Kind: DiagCrop, Slot: s.Index, CodePoint: s.CodePoint, Edge: edge, Amount: amount})
}

// downsample averages the os x os block of bm whose top-left sample is
// (sx, sy). Samples outside the bitmap count as 0.
func downsample(bm *text.Bitmap, sx, sy, os int) int {
	sum := 0
	for yy := range os {
		for xx := range os {
			sum += int(bm.At(sx+xx, sy+yy))
		}
	}
	return (sum + os/2) / (os * os)
}

// remapAlpha stretches [lo, hi] to [0, 255]. A range narrower than two
// levels thresholds at lo instead.
func remapAlpha(v, lo, hi int) uint8 {
	span := hi - lo
	if span > 1 {
		return uint8(min(255, max(0, v-lo)*255/span))
	}
	if v > lo {
		return 255
	}
	return 0
}
