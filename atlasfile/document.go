package atlasfile

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/charset"
	"github.com/gogpu/glyphatlas/text"
)

// Tex is a glyph's texture rectangle in the metadata document.
type Tex struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Glyph is one entry of the glyph list.
type Glyph struct {
	CodePoint int     `json:"codePoint"`
	Tex       Tex     `json:"tex"`
	XOff      float64 `json:"xOff"`
	YOff      float64 `json:"yOff"`
	XAdvance  float64 `json:"xAdvance"`
}

// Document is the JSON metadata written next to the atlas image.
type Document struct {
	Font        string  `json:"font"`
	FontSize    float64 `json:"fontSize"`
	FontIndex   int     `json:"fontIndex"`
	Baseline    int     `json:"baseline"`
	YOffset     int     `json:"yOffset"`
	Oversample  int     `json:"oversample"`
	Padding     int     `json:"padding"`
	GlyphHeight int     `json:"glyphHeight,omitempty"`
	AtlasWidth  int     `json:"atlasWidth"`
	AtlasHeight int     `json:"atlasHeight"`
	Atlas       string  `json:"atlas"`

	Description *text.Description `json:"description,omitempty"`
	Metrics     *text.Metrics     `json:"metrics,omitempty"`

	Glyphs []Glyph `json:"glyphs"`
}

// DocOption configures NewDocument.
type DocOption func(*Document)

// WithFont records the font file name and collection index.
func WithFont(name string, index int) DocOption {
	return func(d *Document) {
		d.Font = name
		d.FontIndex = index
	}
}

// WithAtlasName records the file name of the atlas image.
func WithAtlasName(name string) DocOption {
	return func(d *Document) {
		d.Atlas = name
	}
}

// WithDescription embeds the font description.
func WithDescription(desc text.Description) DocOption {
	return func(d *Document) {
		d.Description = &desc
	}
}

// WithMetrics embeds the face's vertical metrics.
func WithMetrics(m text.Metrics) DocOption {
	return func(d *Document) {
		d.Metrics = &m
	}
}

// NewDocument builds the metadata document for res.
func NewDocument(res *glyphatlas.Result, opts ...DocOption) *Document {
	o := res.Options
	d := &Document{
		FontSize:    o.FontSize,
		Baseline:    res.Baseline,
		YOffset:     o.YOffset,
		Oversample:  o.Oversample,
		Padding:     o.Padding,
		GlyphHeight: o.GlyphHeight,
		AtlasWidth:  res.Surface.Width,
		AtlasHeight: res.Surface.Height,
		Glyphs:      make([]Glyph, len(res.Glyphs)),
	}
	for i, g := range res.Glyphs {
		d.Glyphs[i] = Glyph{
			CodePoint: int(g.CodePoint),
			Tex:       Tex{X: g.Tex.X, Y: g.Tex.Y, W: g.Tex.W, H: g.Tex.H},
			XOff:      g.XOffset,
			YOff:      g.YOffset,
			XAdvance:  g.XAdvance,
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WriteJSON writes d as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("atlasfile: encode json: %w", err)
	}
	return nil
}

// ReadDocument decodes a document written by WriteJSON.
func ReadDocument(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("atlasfile: decode json: %w", err)
	}
	return &d, nil
}

// Ranges returns the code points of the glyph list as coalesced ranges.
func (d *Document) Ranges() []charset.Range {
	runes := make([]rune, len(d.Glyphs))
	for i, g := range d.Glyphs {
		runes[i] = rune(g.CodePoint)
	}
	return charset.Coalesce(runes)
}

// Glyph returns the entry for cp.
func (d *Document) Glyph(cp rune) (Glyph, bool) {
	i := slices.IndexFunc(d.Glyphs, func(g Glyph) bool { return g.CodePoint == int(cp) })
	if i < 0 {
		return Glyph{}, false
	}
	return d.Glyphs[i], true
}
