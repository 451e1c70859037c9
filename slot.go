package glyphatlas

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/pack"
)

// Rect is a half-open texture rectangle [X, X+W) x [Y, Y+H) in atlas pixels.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// GlyphRecord is the placement metadata of one requested code point.
// Code points without a glyph keep their CodePoint and are otherwise zero.
type GlyphRecord struct {
	CodePoint rune

	// Tex is the glyph's texture rectangle, padding excluded.
	Tex Rect

	// XOffset is the horizontal bearing. YOffset is the vertical bearing
	// and is only set when Options.GlyphHeight is positive.
	XOffset, YOffset float64

	// XAdvance is the horizontal advance.
	XAdvance float64
}

// SlotStatus tracks how far a slot made it through the pipeline.
type SlotStatus int

const (
	// SlotPending: measured, waiting for composition.
	SlotPending SlotStatus = iota
	// SlotMissing: the font has no glyph.
	SlotMissing
	// SlotFailed: the font engine returned an error.
	SlotFailed
	// SlotDone: composed and finalized.
	SlotDone
)

// glyphMetrics are the render-time metrics the finalizer needs, 26.6 at
// the oversampled size.
type glyphMetrics struct {
	advance  fixed.Int26_6
	bearingX fixed.Int26_6
	bearingY fixed.Int26_6
}

// Slot is one requested code point as it moves through the pipeline: its
// packing request, where it was placed, and its final record. Every stage
// reads and writes the same []Slot, so index alignment between requests,
// placements and records holds by construction.
type Slot struct {
	Index     int
	CodePoint rune
	Status    SlotStatus

	// Size is the packing request, padding included. Zero for missing or
	// failed glyphs.
	Size pack.Size

	// Placement is where the packer put the request.
	Placement pack.Placement

	// Record is filled in by the finalizer.
	Record GlyphRecord

	metrics glyphMetrics
}

// sizes returns the packing requests in slot order.
func sizes(slots []Slot) []pack.Size {
	out := make([]pack.Size, len(slots))
	for i := range slots {
		out[i] = slots[i].Size
	}
	return out
}

// records returns the final records in slot order.
func records(slots []Slot) []GlyphRecord {
	out := make([]GlyphRecord, len(slots))
	for i := range slots {
		out[i] = slots[i].Record
	}
	return out
}
