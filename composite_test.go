package glyphatlas

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas/charset"
	"github.com/gogpu/glyphatlas/pack"
	"github.com/gogpu/glyphatlas/text"
)

func TestRemapAlphaMonotonic(t *testing.T) {
	bounds := [][2]int{{0, 255}, {10, 200}, {100, 102}, {0, 2}, {254, 255}, {50, 50}}
	for _, b := range bounds {
		prev := uint8(0)
		for v := range 256 {
			got := remapAlpha(v, b[0], b[1])
			if got < prev {
				t.Errorf("remapAlpha(%d, %d, %d) = %d, below previous %d", v, b[0], b[1], got, prev)
			}
			prev = got
		}
	}
}

func TestRemapAlpha(t *testing.T) {
	tests := []struct {
		v, lo, hi int
		want      uint8
	}{
		{0, 0, 255, 0},
		{128, 0, 255, 128},
		{255, 0, 255, 255},
		{5, 10, 200, 0},
		{200, 10, 200, 255},
		{105, 10, 200, 127},
		{250, 10, 200, 255},
		// Degenerate ranges threshold at lo.
		{128, 128, 129, 0},
		{129, 128, 129, 255},
		{50, 50, 50, 0},
		{51, 50, 50, 255},
	}
	for _, tt := range tests {
		if got := remapAlpha(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("remapAlpha(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestDownsample(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 3, 2))
	copy(mask.Pix, []uint8{
		255, 0, 255,
		0, 255, 255,
	})
	bm := &text.Bitmap{Mask: mask}

	tests := []struct {
		sx, sy, os int
		want       int
	}{
		{0, 0, 1, 255},
		{1, 0, 1, 0},
		{0, 0, 2, (510 + 1) / 4},
		{2, 0, 2, (510 + 1) / 4}, // right half of the block is outside
		{0, 2, 2, 0},
	}
	for _, tt := range tests {
		if got := downsample(bm, tt.sx, tt.sy, tt.os); got != tt.want {
			t.Errorf("downsample(%d, %d, %d) = %d, want %d", tt.sx, tt.sy, tt.os, got, tt.want)
		}
	}
}

func TestBaseline(t *testing.T) {
	tests := []struct {
		asc     fixed.Int26_6
		os, off int
		want    int
	}{
		{fixed.I(15), 1, 0, 15},
		{fixed.I(15) + 1, 1, 0, 16},
		{fixed.I(15) + 1, 2, 3, 11},
		{fixed.I(60), 4, -2, 13},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Oversample, opts.YOffset = tt.os, tt.off
		if got := baseline(tt.asc, &opts); got != tt.want {
			t.Errorf("baseline(%v, os=%d, off=%d) = %d, want %d", tt.asc, tt.os, tt.off, got, tt.want)
		}
	}
}

// cropSource has one glyph whose 30-row bitmap starts 5 rows above a
// 20-row cell: baseline 15, bitmap top 20.
func cropSource() *fakeSource {
	return &fakeSource{
		ascender: fixed.I(15),
		glyphs: map[rune]fakeGlyph{
			'A': {
				w: 8, h: 30, top: 20, advance: fixed.I(9),
				pix: func(_, y int) uint8 { return uint8(y * 8) },
			},
		},
	}
}

func TestCropTopInFixedHeight(t *testing.T) {
	opts := DefaultOptions()
	opts.GlyphHeight = 20

	res, err := Bake(cropSource(), []rune{'A'}, opts)
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	if res.Baseline != 15 {
		t.Fatalf("Baseline = %d, want 15", res.Baseline)
	}

	var top, bottom *Diagnostic
	for i := range res.Diagnostics {
		d := &res.Diagnostics[i]
		if d.Kind != DiagCrop {
			continue
		}
		switch d.Edge {
		case CropTop:
			top = d
		case CropBottom:
			bottom = d
		}
	}
	if top == nil || top.Amount != 5 || top.CodePoint != 'A' {
		t.Fatalf("top crop = %+v, want 5 rows of U+0041", top)
	}
	// 25 rows remain after the top crop; the 20-row cell drops 5 more.
	if bottom == nil || bottom.Amount != 5 {
		t.Errorf("bottom crop = %+v, want 5 rows", bottom)
	}

	tex := res.Glyphs[0].Tex
	if tex.W != 8 || tex.H != 20 {
		t.Fatalf("Tex = %+v, want 8x20", tex)
	}
	// Cell row 0 shows source row 5, the last cell row source row 24.
	if got := res.Surface.At(tex.X, tex.Y); got != 5*8 {
		t.Errorf("first row = %d, want %d", got, 5*8)
	}
	if got := res.Surface.At(tex.X+7, tex.Y+19); got != 24*8 {
		t.Errorf("last row = %d, want %d", got, 24*8)
	}
	if res.Glyphs[0].YOffset != 20 {
		t.Errorf("YOffset = %v, want 20", res.Glyphs[0].YOffset)
	}
}

func TestCropIsFatalOnlyWhenRequested(t *testing.T) {
	opts := DefaultOptions()
	opts.GlyphHeight = 20
	opts.ErrorOnCrop = true

	res, err := Bake(cropSource(), []rune{'A'}, opts)
	var cerr *CropError
	if !errors.As(err, &cerr) {
		t.Fatalf("Bake() error = %v, want *CropError", err)
	}
	if res == nil || res.Surface == nil {
		t.Fatal("CropError returned without the composed result")
	}
	if len(cerr.Crops) != 2 || cerr.Crops[0].Edge != CropTop || cerr.Crops[0].Amount != 5 {
		t.Errorf("Crops = %+v", cerr.Crops)
	}
}

func TestFixedHeightNoCrop(t *testing.T) {
	src := &fakeSource{
		ascender: fixed.I(12),
		glyphs: map[rune]fakeGlyph{
			'a': {w: 6, h: 8, top: 8, advance: fixed.I(7)},
			'g': {w: 6, h: 10, top: 6, advance: fixed.I(7)},
		},
	}
	opts := DefaultOptions()
	opts.GlyphHeight = 16

	res, err := Bake(src, []rune{'a', 'g'}, opts)
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("Diagnostics = %v", res.Diagnostics)
	}
	for i, g := range res.Glyphs {
		if g.Tex.H != 16 {
			t.Errorf("glyph %d Tex.H = %d, want 16", i, g.Tex.H)
		}
	}

	// 'a' sits on the baseline: rows 4..11 of its cell are inked.
	a := res.Glyphs[0].Tex
	if res.Surface.At(a.X, a.Y+3) != 0 || res.Surface.At(a.X, a.Y+4) != 255 || res.Surface.At(a.X, a.Y+11) != 255 {
		t.Error("'a' not placed at rows 4..11")
	}
	// 'g' starts 6 rows above the baseline and descends to row 15.
	g := res.Glyphs[1].Tex
	if res.Surface.At(g.X, g.Y+5) != 0 || res.Surface.At(g.X, g.Y+6) != 255 || res.Surface.At(g.X, g.Y+15) != 255 {
		t.Error("'g' not placed at rows 6..15")
	}
}

func TestFixedHeightBlankGlyph(t *testing.T) {
	src := &fakeSource{
		ascender: fixed.I(16),
		glyphs: map[rune]fakeGlyph{
			' ': {advance: fixed.I(5)},
		},
	}
	tests := []struct {
		name    string
		padding int
		height  int
		yOffset int
	}{
		{"no padding", 0, 20, 0},
		{"baseline below cell", 1, 14, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Padding = tt.padding
			opts.GlyphHeight = tt.height
			opts.YOffset = tt.yOffset
			opts.ErrorOnCrop = true

			res, err := Bake(src, []rune{' '}, opts)
			if err != nil {
				t.Fatalf("Bake() error = %v", err)
			}
			if len(res.Diagnostics) != 0 {
				t.Errorf("Diagnostics = %v", res.Diagnostics)
			}
			if got := res.Glyphs[0].XAdvance; got != 5 {
				t.Errorf("XAdvance = %v, want 5", got)
			}
		})
	}
}

func TestFixedHeightBlankGlyphFont(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	defer src.Close()

	opts := DefaultOptions()
	opts.FontSize = 16
	opts.GlyphHeight = 20
	opts.Padding = 0
	opts.ErrorOnCrop = true

	res, err := BakeFont(src, []charset.Range{{Start: ' ', End: ' '}, {Start: 'A', End: 'A'}}, opts)
	if err != nil {
		t.Fatalf("BakeFont() error = %v", err)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v", res.Diagnostics)
	}
}

func TestShowGrid(t *testing.T) {
	src, runes := uniformSource(4, 3, 3)
	for r, g := range src.glyphs {
		g.pix = func(int, int) uint8 { return 0 }
		src.glyphs[r] = g
	}
	opts := DefaultOptions()
	opts.ShowGrid = true

	res, err := Bake(src, runes, opts)
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	for i, g := range res.Glyphs {
		want := gridMasks[i%len(gridMasks)]
		if got := res.Surface.At(g.Tex.X+1, g.Tex.Y+1); got != want {
			t.Errorf("glyph %d pixel = %#x, want %#x", i, got, want)
		}
	}
}

func TestOversampleScalesRequests(t *testing.T) {
	src := &fakeSource{
		ascender: fixed.I(40),
		glyphs: map[rune]fakeGlyph{
			'x': {w: 16, h: 13, top: 13, advance: fixed.I(18), bearingX: fixed.I(2),
				pix: func(x, y int) uint8 {
					if (x+y)%2 == 0 {
						return 255
					}
					return 0
				}},
		},
	}
	opts := DefaultOptions()
	opts.Oversample = 4
	opts.Padding = 2

	res, err := Bake(src, []rune{'x'}, opts)
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	s := res.Slots[0]
	if s.Size != (pack.Size{W: 4+4, H: 4+4}) {
		t.Errorf("request = %+v, want 8x8 (ceil(16/4), ceil(13/4) plus padding)", s.Size)
	}
	g := res.Glyphs[0]
	if g.Tex.W != 4 || g.Tex.H != 4 {
		t.Errorf("Tex = %+v, want 4x4", g.Tex)
	}
	if g.XAdvance != 4.5 || g.XOffset != 0.5 || g.YOffset != 0 {
		t.Errorf("metrics = %+v", g)
	}
	// A checkerboard averages to half coverage.
	if got := res.Surface.At(g.Tex.X, g.Tex.Y); got != (8*255+2)/16 {
		t.Errorf("downsampled pixel = %d, want %d", got, (8*255+2)/16)
	}
	// The 13th source row is alone in the last block: 2 of 16 samples set.
	if got := res.Surface.At(g.Tex.X, g.Tex.Y+3); got != (2*255+2)/16 {
		t.Errorf("partial block = %d, want %d", got, (2*255+2)/16)
	}
}

func TestMissingAndFailingGlyphs(t *testing.T) {
	src, _ := uniformSource(3, 4, 5)
	g := src.glyphs['B']
	g.inkErr = errFake
	src.glyphs['B'] = g
	g = src.glyphs['C']
	g.rasterErr = errFake
	src.glyphs['C'] = g

	res, err := Bake(src, []rune{'A', 'B', 'C', 'Z'}, DefaultOptions())
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}

	wantStatus := []SlotStatus{SlotDone, SlotFailed, SlotFailed, SlotMissing}
	for i, s := range res.Slots {
		if s.Status != wantStatus[i] {
			t.Errorf("slot %d status = %v, want %v", i, s.Status, wantStatus[i])
		}
	}
	for i := 1; i < 4; i++ {
		rec := res.Glyphs[i]
		if rec != (GlyphRecord{CodePoint: rec.CodePoint}) {
			t.Errorf("record %d = %+v, want all-zero geometry", i, rec)
		}
	}
	if res.Glyphs[3].CodePoint != 'Z' {
		t.Errorf("record 3 code point = %q", res.Glyphs[3].CodePoint)
	}
	if !res.Slots[1].Size.Empty() || !res.Slots[3].Size.Empty() {
		t.Error("missing/failed glyphs requested space")
	}

	kinds := []DiagKind{DiagGlyphLoad, DiagMissingGlyph, DiagGlyphLoad}
	if len(res.Diagnostics) != len(kinds) {
		t.Fatalf("Diagnostics = %v", res.Diagnostics)
	}
	for i, d := range res.Diagnostics {
		if d.Kind != kinds[i] {
			t.Errorf("diagnostic %d = %v, want %v", i, d.Kind, kinds[i])
		}
	}
	if !errors.Is(res.Diagnostics[0].Err, errFake) {
		t.Errorf("load diagnostic error = %v", res.Diagnostics[0].Err)
	}
}
