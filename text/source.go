package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data     []byte
	font     *sfnt.Font
	charMap  CharMap
	index    int
	numFonts int
	name     string

	// mu guards closed; outline access goes through per-face buffers.
	mu     sync.RWMutex
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF, OTF, TTC or OTC).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	loader, err := getCharMap(config.charMapName)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	coll, err := sfnt.ParseCollection(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if config.fontIndex < 0 || config.fontIndex >= coll.NumFonts() {
		return nil, &FontIndexError{Index: config.fontIndex, NumFonts: coll.NumFonts()}
	}
	f, err := coll.Font(config.fontIndex)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font %d: %w", config.fontIndex, err)
	}

	cm, err := loader.Load(dataCopy, config.fontIndex, f)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:     dataCopy,
		font:     f,
		charMap:  cm,
		index:    config.fontIndex,
		numFonts: coll.NumFonts(),
	}
	s.addr = s
	s.name = extractFontName(f)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified pixel size.
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newFace(s, size, config)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Index returns the collection member this source was loaded from.
func (s *FontSource) Index() int {
	s.copyCheck()
	return s.index
}

// NumFonts returns the number of fonts in the underlying file.
func (s *FontSource) NumFonts() int {
	s.copyCheck()
	return s.numFonts
}

// HasGlyph reports whether the font maps a glyph to r.
func (s *FontSource) HasGlyph(r rune) bool {
	_, ok := s.glyphIndex(r)
	return ok
}

// Close releases the font data. Faces created from s report ErrClosed
// afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.data = nil
	return nil
}

// glyphIndex resolves r through the configured char map.
func (s *FontSource) glyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	s.copyCheck()
	return s.charMap.GlyphIndex(r)
}

// isClosed reports whether Close has been called.
func (s *FontSource) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the family name, falling back to the full name.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
