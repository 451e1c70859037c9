package glyphatlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphatlas/charset"
	"github.com/gogpu/glyphatlas/pack"
	"github.com/gogpu/glyphatlas/text"
)

// Result is a baked atlas.
type Result struct {
	// Surface holds the atlas pixels.
	Surface *Surface

	// Glyphs has one record per requested code point, in request order.
	Glyphs []GlyphRecord

	// Slots carries the full per-glyph pipeline state, in request order.
	Slots []Slot

	// Baseline is the cell row glyphs sit on in fixed-height mode.
	Baseline int

	// Attempts is the number of atlas sizes tried.
	Attempts int

	// Diagnostics lists every per-glyph problem in the order found.
	Diagnostics []Diagnostic

	// Options are the options the atlas was baked with.
	Options Options
}

// Bake packs and renders codepoints from src into a single atlas.
//
// Per-glyph problems never abort a bake: they are logged, recorded in
// Result.Diagnostics, and the glyph gets an all-zero record. Bake fails
// with *ConfigError for invalid options or an empty request, and with
// *pack.OverflowError (matching ErrPackingOverflow) when the glyphs do not
// fit. With Options.ErrorOnCrop, a complete Result is returned together
// with a *CropError if any glyph was cropped.
func Bake(src GlyphSource, codepoints []rune, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(codepoints) == 0 {
		return nil, &ConfigError{Field: "CodePoints", Reason: "must not be empty", Err: ErrNoCodePoints}
	}
	if src == nil {
		return nil, &ConfigError{Field: "GlyphSource", Reason: "must not be nil"}
	}

	log := Logger()
	diags := &diagnostics{log: log}

	slots := collect(src, codepoints, &opts, diags)

	gcfg := pack.GrowConfig{
		MaxSize:   opts.MaxAtlasSize,
		Margin:    opts.Padding,
		Heuristic: opts.Heuristic,
		OnAttempt: func(w, h int, ok bool) {
			log.Debug("packing attempt", "width", w, "height", h, "ok", ok)
		},
	}
	if opts.fixedSize() {
		gcfg.Width, gcfg.Height = opts.AtlasWidth, opts.AtlasHeight
	}
	packed, err := pack.Grow(sizes(slots), gcfg)
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: %w", err)
	}
	for i := range slots {
		slots[i].Placement = packed.Placements[i]
	}

	asc, err := src.Ascender()
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: font ascender: %w", err)
	}

	c := &compositor{
		src:      src,
		opts:     &opts,
		dst:      NewSurface(packed.Width, packed.Height),
		baseline: baseline(asc, &opts),
		diags:    diags,
	}
	c.composeAll(slots)
	finalize(slots, &opts)

	res := &Result{
		Surface:     c.dst,
		Glyphs:      records(slots),
		Slots:       slots,
		Baseline:    c.baseline,
		Attempts:    packed.Attempts,
		Diagnostics: diags.list,
		Options:     opts,
	}
	log.Info("atlas baked",
		"width", packed.Width, "height", packed.Height,
		"glyphs", len(slots), "attempts", packed.Attempts,
		"diagnostics", len(diags.list))

	if opts.ErrorOnCrop {
		if crops := diags.crops(); len(crops) > 0 {
			return res, &CropError{Crops: crops}
		}
	}
	return res, nil
}

// BakeRanges expands ranges in order and bakes them. Ranges are validated
// first; an invalid range is a *ConfigError wrapping the *charset.RangeError.
func BakeRanges(src GlyphSource, ranges []charset.Range, opts Options) (*Result, error) {
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return nil, &ConfigError{Field: "Ranges", Reason: r.String(), Err: err}
		}
	}
	return Bake(src, charset.Expand(ranges), opts)
}

// BakeFont creates a face from fs with opts.FontSize, opts.Oversample and
// opts.RenderMode, then bakes ranges from it.
func BakeFont(fs *text.FontSource, ranges []charset.Range, opts Options) (*Result, error) {
	if fs == nil {
		return nil, &ConfigError{Field: "FontSource", Reason: "must not be nil"}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	face := fs.Face(opts.FontSize,
		text.WithOversample(opts.Oversample),
		text.WithRenderMode(opts.RenderMode),
	)
	return BakeRanges(face, ranges, opts)
}

// IsOverflow reports whether err is a packing overflow.
func IsOverflow(err error) bool {
	return errors.Is(err, ErrPackingOverflow)
}
