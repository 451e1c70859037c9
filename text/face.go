package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphatlas/internal/cache"
)

// Face is a FontSource at a specific pixel size, oversample factor and
// render mode. Every metric it returns is measured at size × oversample.
//
// Face is safe for concurrent use; outline loading is serialized because
// the underlying sfnt.Buffer is shared.
type Face struct {
	source  *FontSource
	size    float64
	config  faceConfig
	ppem    fixed.Int26_6
	hinting font.Hinting

	mu   sync.Mutex
	buf  sfnt.Buffer
	rast vector.Rasterizer

	present *runeToBoolMap
	glyphs  *cache.Cache[rune, glyphEntry]
}

// GlyphMetrics describes one glyph at the oversampled size.
type GlyphMetrics struct {
	Index sfnt.GlyphIndex

	// Bounds is the ink box widened to whole pixels, relative to the glyph
	// origin on the baseline, with Y growing downwards.
	Bounds fixed.Rectangle26_6

	// Advance is the horizontal advance. RenderNormal rounds it to a whole
	// pixel.
	Advance fixed.Int26_6
}

// glyphEntry is what the per-face cache stores. Errors are cached too so a
// broken glyph is reported once per face, not once per stage.
type glyphEntry struct {
	metrics GlyphMetrics
	err     error
}

func newFace(s *FontSource, size float64, config faceConfig) *Face {
	return &Face{
		source:  s,
		size:    size,
		config:  config,
		ppem:    FromFloat(size * float64(config.oversample)),
		hinting: config.mode.hinting(),
		present: newRuneToBoolMap(),
		glyphs:  cache.New[rune, glyphEntry](config.cacheLimit),
	}
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the nominal pixel size, before oversampling.
func (f *Face) Size() float64 { return f.size }

// Oversample returns the oversample factor.
func (f *Face) Oversample() int { return f.config.oversample }

// RenderMode returns the render mode.
func (f *Face) RenderMode() RenderMode { return f.config.mode }

// HasGlyph reports whether the font has a glyph for r.
func (f *Face) HasGlyph(r rune) bool {
	return f.present.lookup(r, f.source.HasGlyph)
}

// GlyphMetrics returns the ink box and advance of r. The result is cached.
func (f *Face) GlyphMetrics(r rune) (GlyphMetrics, error) {
	e := f.glyphs.GetOrCreate(r, func() glyphEntry {
		m, err := f.loadMetrics(r)
		return glyphEntry{metrics: m, err: err}
	})
	return e.metrics, e.err
}

// InkBox returns the width and height of the pixel-aligned ink box of r.
// Both are whole pixels expressed in 26.6.
func (f *Face) InkBox(r rune) (width, height fixed.Int26_6, err error) {
	m, err := f.GlyphMetrics(r)
	if err != nil {
		return 0, 0, err
	}
	return m.Bounds.Max.X - m.Bounds.Min.X, m.Bounds.Max.Y - m.Bounds.Min.Y, nil
}

// Ascender returns the font ascent (positive, above the baseline).
func (f *Face) Ascender() (fixed.Int26_6, error) {
	m, err := f.fontMetrics()
	if err != nil {
		return 0, err
	}
	return m.Ascent, nil
}

// Metrics returns the font metrics in final pixels.
func (f *Face) Metrics() (Metrics, error) {
	m, err := f.fontMetrics()
	if err != nil {
		return Metrics{}, err
	}
	os := f.config.oversample
	return Metrics{
		Ascent:    Pixels(m.Ascent, os),
		Descent:   Pixels(m.Descent, os),
		LineGap:   Pixels(m.Height-m.Ascent-m.Descent, os),
		XHeight:   Pixels(m.XHeight, os),
		CapHeight: Pixels(m.CapHeight, os),
	}, nil
}

func (f *Face) fontMetrics() (font.Metrics, error) {
	if f.source.isClosed() {
		return font.Metrics{}, ErrClosed
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.source.font.Metrics(&f.buf, f.ppem, f.hinting)
}

// loadMetrics resolves r and measures its outline.
func (f *Face) loadMetrics(r rune) (GlyphMetrics, error) {
	if f.source.isClosed() {
		return GlyphMetrics{}, ErrClosed
	}
	idx, ok := f.source.glyphIndex(r)
	if !ok {
		return GlyphMetrics{}, &GlyphError{Rune: r, Op: "load", Err: ErrNoGlyph}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	segs, err := f.source.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		return GlyphMetrics{}, &GlyphError{Rune: r, Op: "load", Err: err}
	}
	minX, minY, maxX, maxY := pixelBounds(segs.Bounds())

	adv, err := f.source.font.GlyphAdvance(&f.buf, idx, f.ppem, f.hinting)
	if err != nil {
		return GlyphMetrics{}, &GlyphError{Rune: r, Op: "advance", Err: err}
	}

	return GlyphMetrics{
		Index: idx,
		Bounds: fixed.Rectangle26_6{
			Min: fixed.P(minX, minY),
			Max: fixed.P(maxX, maxY),
		},
		Advance: adv,
	}, nil
}
