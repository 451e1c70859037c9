// Package glyphatlas bakes a font into a single packed 8-bit grayscale
// texture atlas plus per-glyph placement metadata.
//
// # Overview
//
// A bake runs four stages over one slice of Slot values, one per requested
// code point:
//
//  1. collect measures each glyph's ink box and turns it into a packing
//     request (padding included, oversampling divided out).
//  2. pack.Grow places the requests, growing an automatic atlas from 8x8
//     until everything fits.
//  3. the compositor rasterizes each placed glyph at the oversampled size,
//     box-filters it down, remaps alpha and writes it into its cell.
//  4. finalize derives texture rectangles, offsets and advances.
//
// # Quick Start
//
//	src, err := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts := glyphatlas.DefaultOptions()
//	opts.FontSize = 16
//	res, err := glyphatlas.BakeFont(src, []charset.Range{{Start: 32, End: 126}}, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.Surface holds the pixels, res.Glyphs the metadata.
//
// Use package atlasfile to write the result as PNG and JSON.
//
// # Errors
//
// Problems with individual glyphs are reported as Diagnostic values and
// logged through the logger set with SetLogger. Only invalid configuration
// (*ConfigError) and packing overflow (*pack.OverflowError) abort a bake.
// Cropping in fixed-height mode is fatal only with Options.ErrorOnCrop, and
// even then the complete Result is returned alongside the *CropError.
package glyphatlas
