package text

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Pixels converts a 26.6 value measured at the oversampled size into
// final pixels: x / 64 / oversample.
func Pixels(x fixed.Int26_6, oversample int) float64 {
	return float64(x) / 64 / float64(max(oversample, 1))
}

// CeilPixels is Pixels rounded up to a whole pixel.
func CeilPixels(x fixed.Int26_6, oversample int) int {
	return int(math.Ceil(Pixels(x, oversample)))
}

// CeilDiv returns ceil(n / d) for a positive d.
func CeilDiv(n, d int) int {
	if n >= 0 {
		return (n + d - 1) / d
	}
	return -(-n / d)
}

// FromFloat converts a pixel value to 26.6, rounding to the nearest unit.
func FromFloat(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// pixelBounds widens a 26.6 rectangle to whole pixels.
func pixelBounds(r fixed.Rectangle26_6) (minX, minY, maxX, maxY int) {
	return r.Min.X.Floor(), r.Min.Y.Floor(), r.Max.X.Ceil(), r.Max.Y.Ceil()
}
