package text

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// CharMap resolves code points to glyph indices of one font.
// Implementations must be safe for concurrent use.
type CharMap interface {
	// GlyphIndex returns the glyph for r, or false if the font has none.
	// Glyph 0 (.notdef) is never reported as present.
	GlyphIndex(r rune) (sfnt.GlyphIndex, bool)
}

// CharMapLoader builds a CharMap for a font. data is the complete font
// file, index the collection member, and f the member already parsed by
// x/image.
type CharMapLoader interface {
	Load(data []byte, index int, f *sfnt.Font) (CharMap, error)
}

// CharMapLoaderFunc adapts a function to CharMapLoader.
type CharMapLoaderFunc func(data []byte, index int, f *sfnt.Font) (CharMap, error)

// Load implements CharMapLoader.
func (fn CharMapLoaderFunc) Load(data []byte, index int, f *sfnt.Font) (CharMap, error) {
	return fn(data, index, f)
}

// defaultCharMapName is the name of the default char map backend.
const defaultCharMapName = "sfnt"

var (
	charMapMu       sync.RWMutex
	charMapRegistry = map[string]CharMapLoader{
		"sfnt":   CharMapLoaderFunc(loadSfntCharMap),
		"gotext": CharMapLoaderFunc(loadGoTextCharMap),
	}
)

// RegisterCharMap registers a char map backend under name, replacing any
// previous registration.
func RegisterCharMap(name string, loader CharMapLoader) {
	charMapMu.Lock()
	defer charMapMu.Unlock()
	charMapRegistry[name] = loader
}

// CharMaps returns the registered backend names in sorted order.
func CharMaps() []string {
	charMapMu.RLock()
	defer charMapMu.RUnlock()
	return slices.Sorted(maps.Keys(charMapRegistry))
}

// getCharMap returns the backend by name.
func getCharMap(name string) (CharMapLoader, error) {
	charMapMu.RLock()
	defer charMapMu.RUnlock()
	if l, ok := charMapRegistry[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("text: unknown char map %q", name)
}

// sfntCharMap looks glyphs up through x/image. sfnt.Buffer is not safe for
// concurrent use, so lookups are serialized.
type sfntCharMap struct {
	mu   sync.Mutex
	buf  sfnt.Buffer
	font *sfnt.Font
}

func loadSfntCharMap(_ []byte, _ int, f *sfnt.Font) (CharMap, error) {
	return &sfntCharMap{font: f}, nil
}

// GlyphIndex implements CharMap.
func (m *sfntCharMap) GlyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, err := m.font.GlyphIndex(&m.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return idx, true
}

// goTextCharMap reads the cmap with go-text/typesetting. font.Font is
// read-only and safe for concurrent use.
type goTextCharMap struct {
	font *gotext.Font
}

func loadGoTextCharMap(data []byte, index int, _ *sfnt.Font) (CharMap, error) {
	faces, err := gotext.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: gotext char map: %w", err)
	}
	if index < 0 || index >= len(faces) {
		return nil, &FontIndexError{Index: index, NumFonts: len(faces)}
	}
	return &goTextCharMap{font: faces[index].Font}, nil
}

// GlyphIndex implements CharMap.
func (m *goTextCharMap) GlyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	gid, ok := m.font.NominalGlyph(r)
	if !ok || gid == 0 || gid > 0xFFFF {
		return 0, false
	}
	return sfnt.GlyphIndex(gid), true
}
