package atlasfile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/glyphatlas"
)

// Format selects the pixel layout of the written PNG.
type Format int

const (
	// FormatRGBA expands every pixel to RGBA: the colour channels carry
	// Options.Color wherever coverage is non-zero and alpha carries coverage.
	FormatRGBA Format = iota

	// FormatGray writes the coverage values as an 8-bit grayscale PNG.
	FormatGray
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBA:
		return "rgba"
	case FormatGray:
		return "gray"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// PNGOptions configures WritePNG.
type PNGOptions struct {
	Format Format

	// Color is the RGB used for covered pixels in FormatRGBA. Its alpha is
	// ignored.
	Color color.RGBA

	// Compression is passed to png.Encoder.
	Compression png.CompressionLevel
}

// DefaultPNGOptions returns RGBA output with white glyphs.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Format: FormatRGBA,
		Color:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

// ParseColor parses a colour written as 0xRRGGBB.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("atlasfile: bad colour %q, want 0xRRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("atlasfile: bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// Image converts s to the image WritePNG encodes.
func Image(s *glyphatlas.Surface, opts PNGOptions) image.Image {
	if opts.Format == FormatGray {
		return s.Gray()
	}

	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	c := opts.Color
	for i, a := range s.Pix {
		if a == 0 {
			continue
		}
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, a
	}
	return img
}

// WritePNG encodes s to w.
func WritePNG(w io.Writer, s *glyphatlas.Surface, opts PNGOptions) error {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return ErrEmptySurface
	}
	enc := png.Encoder{CompressionLevel: opts.Compression}
	if err := enc.Encode(w, Image(s, opts)); err != nil {
		return fmt.Errorf("atlasfile: encode png: %w", err)
	}
	return nil
}
