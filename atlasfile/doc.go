// Package atlasfile writes baked atlases to disk: the surface as a PNG and
// the glyph records as a JSON metadata document.
//
//	res, err := glyphatlas.BakeFont(src, ranges, opts)
//	if err != nil {
//	    return err
//	}
//	_, err = atlasfile.WriteFiles("myfont", res, atlasfile.DefaultPNGOptions(),
//	    atlasfile.WithFont("myfont.ttf", 0))
//
// The document lists one glyph per requested code point, in request order,
// with texture rectangles in atlas pixels and offsets and advances in final
// pixels.
package atlasfile
