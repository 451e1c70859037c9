package glyphatlas

import (
	"github.com/gogpu/glyphatlas/pack"
	"github.com/gogpu/glyphatlas/text"
)

// Limits enforced by Options.Validate.
const (
	MaxOversample       = 32
	DefaultMaxAtlasSize = 8192
)

// Options configures a single bake. The zero value is not valid; start from
// DefaultOptions.
//
// Example:
//
//	opts := glyphatlas.DefaultOptions()
//	opts.FontSize = 24
//	opts.Oversample = 4
//	res, err := glyphatlas.BakeFont(src, ranges, opts)
type Options struct {
	// FontSize is the pixel size glyphs are rendered at.
	FontSize float64

	// Oversample renders glyphs at Oversample times FontSize and box-filters
	// them back down. 1 disables oversampling.
	Oversample int

	// Padding is the number of empty pixels kept around every glyph.
	Padding int

	// AtlasWidth and AtlasHeight fix the atlas size. Both zero selects
	// automatic sizing, starting at 8x8 and doubling the shorter side.
	AtlasWidth, AtlasHeight int

	// MaxAtlasSize bounds automatic sizing. 0 means unbounded.
	MaxAtlasSize int

	// GlyphHeight, when positive, gives every glyph a cell of exactly this
	// many rows, with glyphs aligned on a common baseline. Padding is added
	// on top, so the packed cell is GlyphHeight + 2*Padding rows tall.
	GlyphHeight int

	// AlphaMin and AlphaMax define the coverage range stretched to 0..255.
	// When they are less than two apart, coverage is thresholded at AlphaMin.
	AlphaMin, AlphaMax int

	// YOffset shifts the baseline down, in pixels.
	YOffset int

	// RenderMode selects normal or light glyph fitting.
	RenderMode text.RenderMode

	// ShowGrid ORs a per-glyph pattern into the output to make cell
	// boundaries visible.
	ShowGrid bool

	// ErrorOnCrop makes Bake fail with *CropError when any glyph was cropped.
	ErrorOnCrop bool

	// Heuristic selects the rectangle packer.
	Heuristic pack.Heuristic
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		FontSize:     32,
		Oversample:   1,
		Padding:      1,
		MaxAtlasSize: DefaultMaxAtlasSize,
		AlphaMin:     0,
		AlphaMax:     255,
		RenderMode:   text.RenderNormal,
		Heuristic:    pack.Skyline,
	}
}

// Validate checks if the configuration is valid.
func (o *Options) Validate() error {
	if !(o.FontSize > 0) {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	if o.Oversample < 1 {
		return &ConfigError{Field: "Oversample", Reason: "must be at least 1"}
	}
	if o.Oversample > MaxOversample {
		return &ConfigError{Field: "Oversample", Reason: "must be at most 32"}
	}
	if o.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if o.AtlasWidth < 0 || o.AtlasHeight < 0 {
		return &ConfigError{Field: "AtlasWidth", Reason: "atlas dimensions must be non-negative"}
	}
	if (o.AtlasWidth > 0) != (o.AtlasHeight > 0) {
		return &ConfigError{Field: "AtlasHeight", Reason: "width and height must both be set or both be zero"}
	}
	if o.AtlasWidth > 0 && (o.AtlasWidth <= 2*o.Padding || o.AtlasHeight <= 2*o.Padding) {
		return &ConfigError{Field: "AtlasWidth", Reason: "fixed atlas leaves no room inside the padding"}
	}
	if o.MaxAtlasSize < 0 {
		return &ConfigError{Field: "MaxAtlasSize", Reason: "must be non-negative"}
	}
	if o.GlyphHeight < 0 {
		return &ConfigError{Field: "GlyphHeight", Reason: "must be non-negative"}
	}
	if o.AlphaMin < 0 || o.AlphaMin > 255 {
		return &ConfigError{Field: "AlphaMin", Reason: "must be in 0..255"}
	}
	if o.AlphaMax < 0 || o.AlphaMax > 255 {
		return &ConfigError{Field: "AlphaMax", Reason: "must be in 0..255"}
	}
	if o.AlphaMin > o.AlphaMax {
		return &ConfigError{Field: "AlphaMin", Reason: "must not exceed AlphaMax"}
	}
	if o.RenderMode != text.RenderNormal && o.RenderMode != text.RenderLight {
		return &ConfigError{Field: "RenderMode", Reason: "unknown render mode"}
	}
	if o.Heuristic != pack.Skyline && o.Heuristic != pack.Shelf {
		return &ConfigError{Field: "Heuristic", Reason: "unknown packing heuristic"}
	}
	return nil
}

// fixedSize reports whether the atlas size is fixed.
func (o *Options) fixedSize() bool {
	return o.AtlasWidth > 0 && o.AtlasHeight > 0
}

// fixedHeight reports whether glyph cells share one height.
func (o *Options) fixedHeight() bool {
	return o.GlyphHeight > 0
}
