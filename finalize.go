package glyphatlas

import "github.com/gogpu/glyphatlas/text"

// finalize turns each slot's placement and render metrics into its record.
// Missing and failed slots get an all-zero record.
func finalize(slots []Slot, opts *Options) {
	pad, os := opts.Padding, opts.Oversample

	for i := range slots {
		s := &slots[i]
		s.Record = GlyphRecord{CodePoint: s.CodePoint}
		if s.Status != SlotPending {
			continue
		}

		p := s.Placement
		if p.W > 0 && p.H > 0 {
			s.Record.Tex = Rect{
				X: p.X + pad,
				Y: p.Y + pad,
				W: p.W - 2*pad,
				H: p.H - 2*pad,
			}
		}
		s.Record.XAdvance = text.Pixels(s.metrics.advance, os)
		s.Record.XOffset = text.Pixels(s.metrics.bearingX, os)
		if opts.fixedHeight() {
			s.Record.YOffset = text.Pixels(s.metrics.bearingY, os)
		}
		s.Status = SlotDone
	}
}
