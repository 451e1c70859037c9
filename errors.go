package glyphatlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphatlas/pack"
)

// Sentinel errors for glyphatlas package.
var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("glyphatlas: invalid configuration")

	// ErrNoCodePoints is returned when nothing was requested.
	ErrNoCodePoints = errors.New("glyphatlas: no code points requested")

	// ErrPackingOverflow is returned when the glyphs do not fit the atlas.
	// The concrete error is a *pack.OverflowError.
	ErrPackingOverflow = pack.ErrOverflow
)

// ConfigError is returned when Options or the request are invalid.
type ConfigError struct {
	Field  string
	Reason string

	// Err is an optional more specific cause, such as ErrNoCodePoints.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glyphatlas: invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// Unwrap returns the specific cause, if any.
func (e *ConfigError) Unwrap() error { return e.Err }

// CropError is returned, together with a complete Result, when
// Options.ErrorOnCrop is set and at least one glyph lost ink.
type CropError struct {
	Crops []Diagnostic
}

func (e *CropError) Error() string {
	if len(e.Crops) == 0 {
		return "glyphatlas: glyphs cropped"
	}
	first := e.Crops[0]
	return fmt.Sprintf("glyphatlas: %d crop(s), first U+%04X %s by %d px",
		len(e.Crops), first.CodePoint, first.Edge, first.Amount)
}
