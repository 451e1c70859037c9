// Package text loads fonts and renders single glyphs for atlas baking.
//
// The package follows a split between a heavyweight, shared font resource
// and lightweight sized views of it:
//
//   - FontSource: parsed font file (TTF, OTF, or one member of a TTC/OTC)
//   - Face: FontSource at a pixel size, oversample factor and render mode
//   - CharMap: pluggable code point to glyph index backend
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("NotoSans-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face := source.Face(32, text.WithOversample(4))
//	box, err := face.InkBox('g')   // 26.6 size at 128 px
//	bm, err := face.Rasterize('g') // coverage mask plus bearings
//
// All metrics are 26.6 fixed point (golang.org/x/image/math/fixed) at the
// oversampled size. Use Pixels and CeilPixels to convert them, so the
// division by 64 and by the oversample factor is never done by hand.
//
// # Pluggable Char Maps
//
// Glyph lookup is abstracted through the CharMapLoader interface. The
// default "sfnt" backend uses golang.org/x/image/font/sfnt; "gotext" reads
// the cmap with github.com/go-text/typesetting instead:
//
//	source, err := text.NewFontSource(data, text.WithCharMap("gotext"))
//
// Outlines are always read and rasterized with golang.org/x/image.
package text
