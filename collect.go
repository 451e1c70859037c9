package glyphatlas

import (
	"github.com/gogpu/glyphatlas/pack"
	"github.com/gogpu/glyphatlas/text"
)

// collect measures every requested code point and builds its slot.
// Missing and failing glyphs get a zero-sized request and a diagnostic.
func collect(src GlyphSource, codepoints []rune, opts *Options, diags *diagnostics) []Slot {
	slots := make([]Slot, len(codepoints))
	pad2 := 2 * opts.Padding

	for i, r := range codepoints {
		s := &slots[i]
		s.Index = i
		s.CodePoint = r

		if !src.HasGlyph(r) {
			s.Status = SlotMissing
			diags.add(Diagnostic{Kind: DiagMissingGlyph, Slot: i, CodePoint: r})
			continue
		}

		w, h, err := src.InkBox(r)
		if err != nil {
			s.Status = SlotFailed
			diags.add(Diagnostic{Kind: DiagGlyphLoad, Slot: i, CodePoint: r, Err: err})
			continue
		}

		s.Size = pack.Size{
			W: text.CeilPixels(w, opts.Oversample) + pad2,
			H: text.CeilPixels(h, opts.Oversample) + pad2,
		}
		if opts.fixedHeight() {
			s.Size.H = opts.GlyphHeight + pad2
		}
		diags.log.Debug("glyph measured", "codepoint", r, "w", s.Size.W, "h", s.Size.H)
	}
	return slots
}
