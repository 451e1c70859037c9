package text

import (
	"fmt"

	"golang.org/x/image/font"
)

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	fontIndex   int
	charMapName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		fontIndex:   0,
		charMapName: defaultCharMapName,
	}
}

// WithFontIndex selects a member of a font collection (TTC/OTC).
// The default is 0, which is also the only valid index for a plain font.
func WithFontIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.fontIndex = i
	}
}

// WithCharMap specifies the char map backend used for glyph lookup.
// The default is "sfnt".
//
// Custom backends can be registered with RegisterCharMap.
func WithCharMap(name string) SourceOption {
	return func(c *sourceConfig) {
		c.charMapName = name
	}
}

// RenderMode selects how glyph outlines are fitted before rasterization.
type RenderMode int

const (
	// RenderNormal rounds advances and metrics to whole pixels.
	RenderNormal RenderMode = iota

	// RenderLight keeps fractional advances and metrics.
	RenderLight
)

// String returns the render mode name.
func (m RenderMode) String() string {
	switch m {
	case RenderNormal:
		return "normal"
	case RenderLight:
		return "light"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// hinting maps the render mode onto x/image hinting.
func (m RenderMode) hinting() font.Hinting {
	if m == RenderLight {
		return font.HintingNone
	}
	return font.HintingFull
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	oversample int
	mode       RenderMode
	cacheLimit int
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		oversample: 1,
		mode:       RenderNormal,
		cacheLimit: 1024,
	}
}

// WithOversample renders glyphs at n times the face size.
// Values below 1 are treated as 1.
func WithOversample(n int) FaceOption {
	return func(c *faceConfig) {
		c.oversample = max(n, 1)
	}
}

// WithRenderMode sets the render mode for the face.
func WithRenderMode(m RenderMode) FaceOption {
	return func(c *faceConfig) {
		c.mode = m
	}
}

// WithCacheLimit sets the maximum number of glyph metrics kept per face.
// A value of 0 disables the limit.
func WithCacheLimit(n int) FaceOption {
	return func(c *faceConfig) {
		c.cacheLimit = n
	}
}
