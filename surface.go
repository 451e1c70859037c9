package glyphatlas

import "image"

// Surface is the 8-bit grayscale atlas. Pix is row-major with a stride of
// Width bytes.
type Surface struct {
	Width, Height int
	Pix           []uint8
}

// NewSurface allocates a zeroed surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the pixel at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Pix[y*s.Width+x]
}

// row returns the n bytes starting at (x, y).
func (s *Surface) row(x, y, n int) []uint8 {
	off := y*s.Width + x
	return s.Pix[off : off+n]
}

// Gray returns an image.Gray sharing the surface's pixels.
func (s *Surface) Gray() *image.Gray {
	return &image.Gray{
		Pix:    s.Pix,
		Stride: s.Width,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}

// SubImage copies the pixels under r into a new image.Gray.
func (s *Surface) SubImage(r Rect) *image.Gray {
	src := s.Gray().SubImage(r.Image()).(*image.Gray)
	dst := image.NewGray(image.Rect(0, 0, src.Rect.Dx(), src.Rect.Dy()))
	for y := range dst.Rect.Dy() {
		copy(dst.Pix[y*dst.Stride:], src.Pix[y*src.Stride:y*src.Stride+src.Rect.Dx()])
	}
	return dst
}
