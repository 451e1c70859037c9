package pack

import (
	"errors"
	"fmt"
)

// ErrOverflow is matched by every *OverflowError.
var ErrOverflow = errors.New("pack: rectangles do not fit")

// OverflowError is returned when the rectangles cannot be placed: the size
// is fixed and too small, or automatic growth passed the configured maximum.
type OverflowError struct {
	// Width and Height of the last surface tried.
	Width, Height int

	// Unplaced is the number of rectangles the last attempt could not place.
	Unplaced int

	// Limit is the maximum side length that stopped growth, or 0 for a
	// fixed-size surface.
	Limit int
}

func (e *OverflowError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("pack: %d rectangles do not fit, atlas would exceed %d pixels (last tried %dx%d)",
			e.Unplaced, e.Limit, e.Width, e.Height)
	}
	return fmt.Sprintf("pack: %d rectangles do not fit in fixed %dx%d atlas", e.Unplaced, e.Width, e.Height)
}

// Unwrap makes errors.Is(err, ErrOverflow) hold.
func (e *OverflowError) Unwrap() error { return ErrOverflow }
