package pack

// SkylineAllocator packs rectangles against a skyline: the upper contour of
// everything placed so far, kept as a list of horizontal segments. Each
// rectangle goes to the lowest position it fits at, leftmost on ties
// (bottom-left rule, with y growing downwards).
type SkylineAllocator struct {
	width    int
	height   int
	segments []segment // left to right, contiguous, covering [0, width)

	usedArea int
}

// segment is a horizontal piece of the skyline: [x, x+w) at height y.
type segment struct {
	x, y, w int
}

// NewSkylineAllocator creates an empty skyline over width x height.
func NewSkylineAllocator(width, height int) *SkylineAllocator {
	s := &SkylineAllocator{
		width:    width,
		height:   height,
		segments: make([]segment, 1, 32),
	}
	s.segments[0] = segment{x: 0, y: 0, w: width}
	return s
}

// Allocate places a w x h rectangle. Returns -1, -1, false if it does not fit.
func (s *SkylineAllocator) Allocate(w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 || w > s.width || h > s.height {
		return -1, -1, false
	}

	best := -1
	bestX, bestY := 0, 0
	for i := range s.segments {
		top, fits := s.fit(i, w, h)
		if !fits {
			continue
		}
		if best < 0 || top < bestY {
			best, bestX, bestY = i, s.segments[i].x, top
		}
	}
	if best < 0 {
		return -1, -1, false
	}

	s.raise(best, bestX, bestY+h, w)
	s.usedArea += w * h
	return bestX, bestY, true
}

// fit reports the y at which a w x h rectangle rests when its left edge is at
// segment i, and whether it stays inside the surface there.
func (s *SkylineAllocator) fit(i, w, h int) (int, bool) {
	x := s.segments[i].x
	if x+w > s.width {
		return 0, false
	}
	top := 0
	remaining := w
	for j := i; remaining > 0; j++ {
		seg := s.segments[j]
		top = max(top, seg.y)
		if top+h > s.height {
			return 0, false
		}
		remaining -= seg.w - max(0, x-seg.x)
	}
	return top, true
}

// raise inserts a segment [x, x+w) at height y starting at segment index i and
// trims or removes whatever it now shadows.
func (s *SkylineAllocator) raise(i, x, y, w int) {
	end := x + w
	j := i
	for j < len(s.segments) && s.segments[j].x+s.segments[j].w <= end {
		j++
	}
	// segments[i:j] are fully covered; segments[j] may be partially covered.
	if j < len(s.segments) && s.segments[j].x < end {
		cut := end - s.segments[j].x
		s.segments[j].x = end
		s.segments[j].w -= cut
	}
	s.segments = append(s.segments[:i], append([]segment{{x: x, y: y, w: w}}, s.segments[j:]...)...)
	s.merge()
}

// merge joins neighbours at the same height.
func (s *SkylineAllocator) merge() {
	out := s.segments[:1]
	for _, seg := range s.segments[1:] {
		last := &out[len(out)-1]
		if last.y == seg.y {
			last.w += seg.w
			continue
		}
		out = append(out, seg)
	}
	s.segments = out
}

// UsedArea returns the total area used by allocations.
func (s *SkylineAllocator) UsedArea() int {
	return s.usedArea
}

// SegmentCount returns the number of skyline segments.
func (s *SkylineAllocator) SegmentCount() int {
	return len(s.segments)
}
