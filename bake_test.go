package glyphatlas

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/charset"
	"github.com/gogpu/glyphatlas/pack"
	"github.com/gogpu/glyphatlas/text"
)

var asciiRange = []charset.Range{{Start: 32, End: 126}}

func goRegular(t *testing.T) *text.FontSource {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

func TestBakeFontASCII(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSize = 16

	res, err := BakeFont(goRegular(t), asciiRange, opts)
	if err != nil {
		t.Fatalf("BakeFont() error = %v", err)
	}

	w, h := res.Surface.Width, res.Surface.Height
	if !isPow2(w) || !isPow2(h) || (w != h && w != 2*h) {
		t.Errorf("atlas %dx%d is not on the doubling sequence from 8x8", w, h)
	}
	if len(res.Glyphs) != 95 {
		t.Fatalf("len(Glyphs) = %d, want 95", len(res.Glyphs))
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v", res.Diagnostics)
	}

	bounds := Rect{W: w, H: h}.Image()
	for i, g := range res.Glyphs {
		if g.CodePoint != rune(32+i) {
			t.Fatalf("Glyphs[%d].CodePoint = %U", i, g.CodePoint)
		}
		if res.Slots[i].Status != SlotDone {
			t.Errorf("%q status = %v", g.CodePoint, res.Slots[i].Status)
		}
		if g.XAdvance <= 0 {
			t.Errorf("%q XAdvance = %v", g.CodePoint, g.XAdvance)
		}
		if g.CodePoint == ' ' {
			if !g.Tex.Empty() {
				t.Errorf("space Tex = %+v, want empty", g.Tex)
			}
			continue
		}
		if g.Tex.W < 1 || g.Tex.H < 1 {
			t.Errorf("%q Tex = %+v, want non-degenerate", g.CodePoint, g.Tex)
		}
		if !g.Tex.Image().In(bounds) {
			t.Errorf("%q Tex %+v outside %dx%d", g.CodePoint, g.Tex, w, h)
		}
	}

	// Padded cells never overlap, so neither do the texture rectangles.
	for i := range res.Slots {
		a := res.Slots[i].Placement.Rect()
		if a.Empty() {
			continue
		}
		for j := i + 1; j < len(res.Slots); j++ {
			if b := res.Slots[j].Placement.Rect(); a.Overlaps(b) {
				t.Errorf("cells %d %v and %d %v overlap", i, a, j, b)
			}
		}
	}

	// Nothing is written outside the texture rectangles.
	covered := make([]bool, len(res.Surface.Pix))
	for _, g := range res.Glyphs {
		for y := g.Tex.Y; y < g.Tex.Y+g.Tex.H; y++ {
			for x := g.Tex.X; x < g.Tex.X+g.Tex.W; x++ {
				covered[y*w+x] = true
			}
		}
	}
	for i, v := range res.Surface.Pix {
		if v != 0 && !covered[i] {
			t.Fatalf("pixel (%d, %d) = %d outside every glyph", i%w, i/w, v)
		}
	}
}

func TestBakeIdempotent(t *testing.T) {
	src := goRegular(t)
	opts := DefaultOptions()
	opts.FontSize = 20
	opts.Oversample = 2

	a, err := BakeFont(src, asciiRange, opts)
	if err != nil {
		t.Fatalf("first bake: %v", err)
	}
	b, err := BakeFont(src, asciiRange, opts)
	if err != nil {
		t.Fatalf("second bake: %v", err)
	}
	if !bytes.Equal(a.Surface.Pix, b.Surface.Pix) {
		t.Error("surfaces differ between identical bakes")
	}
	if diff := cmp.Diff(a.Glyphs, b.Glyphs); diff != "" {
		t.Errorf("Glyphs mismatch (-first +second):\n%s", diff)
	}
}

func TestBakeHeuristics(t *testing.T) {
	src := goRegular(t)
	for _, h := range []pack.Heuristic{pack.Skyline, pack.Shelf} {
		t.Run(h.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.FontSize = 12
			opts.Heuristic = h
			res, err := BakeFont(src, asciiRange, opts)
			if err != nil {
				t.Fatalf("BakeFont() error = %v", err)
			}
			if res.Attempts < 1 {
				t.Errorf("Attempts = %d", res.Attempts)
			}
		})
	}
}

func TestBakeFixedHeightFont(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSize = 16
	opts.GlyphHeight = 24

	res, err := BakeFont(goRegular(t), asciiRange, opts)
	if err != nil {
		t.Fatalf("BakeFont() error = %v", err)
	}
	for _, g := range res.Glyphs {
		if g.CodePoint != ' ' && g.Tex.H != 24 {
			t.Errorf("%q Tex.H = %d, want 24", g.CodePoint, g.Tex.H)
		}
	}
	if res.Glyphs['A'-32].YOffset <= 0 {
		t.Errorf("'A' YOffset = %v, want above baseline", res.Glyphs['A'-32].YOffset)
	}
}

func TestBakeFixedOverflow(t *testing.T) {
	src, runes := uniformSource(200, 6, 6)
	opts := DefaultOptions()
	opts.AtlasWidth, opts.AtlasHeight = 16, 16

	res, err := Bake(src, runes, opts)
	if res != nil {
		t.Error("overflow returned a result")
	}
	if !errors.Is(err, ErrPackingOverflow) || !IsOverflow(err) {
		t.Fatalf("Bake() error = %v, want ErrPackingOverflow", err)
	}
	var oerr *pack.OverflowError
	if !errors.As(err, &oerr) || oerr.Width != 16 || oerr.Height != 16 || oerr.Unplaced == 0 {
		t.Errorf("OverflowError = %+v", oerr)
	}
}

func TestBakeMaxAtlasSize(t *testing.T) {
	src, runes := uniformSource(200, 10, 10)
	opts := DefaultOptions()
	opts.MaxAtlasSize = 64

	if _, err := Bake(src, runes, opts); !IsOverflow(err) {
		t.Fatalf("Bake() error = %v, want overflow", err)
	}

	opts.MaxAtlasSize = 0
	res, err := Bake(src, runes, opts)
	if err != nil {
		t.Fatalf("unbounded Bake() error = %v", err)
	}
	if res.Surface.Width > 256 || res.Surface.Height > 256 {
		t.Errorf("atlas %dx%d larger than needed", res.Surface.Width, res.Surface.Height)
	}
}

func TestBakeErrors(t *testing.T) {
	src, runes := uniformSource(3, 4, 4)

	t.Run("empty", func(t *testing.T) {
		_, err := Bake(src, nil, DefaultOptions())
		if !errors.Is(err, ErrNoCodePoints) || !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrNoCodePoints", err)
		}
	})
	t.Run("nil source", func(t *testing.T) {
		_, err := Bake(nil, runes, DefaultOptions())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})
	t.Run("bad options", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Oversample = 0
		_, err := Bake(src, runes, opts)
		var cerr *ConfigError
		if !errors.As(err, &cerr) || cerr.Field != "Oversample" {
			t.Errorf("error = %v, want Oversample ConfigError", err)
		}
	})
	t.Run("bad range", func(t *testing.T) {
		_, err := BakeRanges(src, []charset.Range{{Start: 'z', End: 'a'}}, DefaultOptions())
		var rerr *charset.RangeError
		if !errors.Is(err, ErrInvalidConfig) || !errors.As(err, &rerr) {
			t.Errorf("error = %v, want ConfigError wrapping RangeError", err)
		}
	})
	t.Run("nil font", func(t *testing.T) {
		if _, err := BakeFont(nil, asciiRange, DefaultOptions()); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestBakeZeroPadding(t *testing.T) {
	src, runes := uniformSource(16, 4, 4)
	opts := DefaultOptions()
	opts.Padding = 0
	opts.AtlasWidth, opts.AtlasHeight = 16, 16

	res, err := Bake(src, runes, opts)
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	for i, v := range res.Surface.Pix {
		if v != 0xFF {
			t.Fatalf("pixel %d = %d, want a fully tiled atlas", i, v)
		}
	}
}

func TestSurfaceSubImage(t *testing.T) {
	s := NewSurface(4, 3)
	for i := range s.Pix {
		s.Pix[i] = uint8(i)
	}
	sub := s.SubImage(Rect{X: 1, Y: 1, W: 2, H: 2})
	want := []uint8{5, 6, 9, 10}
	if diff := cmp.Diff(want, sub.Pix); diff != "" {
		t.Errorf("SubImage mismatch (-want +got):\n%s", diff)
	}
	if s.At(-1, 0) != 0 || s.At(4, 0) != 0 {
		t.Error("At outside the surface is not 0")
	}
}
