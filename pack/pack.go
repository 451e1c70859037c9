package pack

import (
	"fmt"
	"image"
	"slices"
)

// Size is the width and height of one rectangle to place.
type Size struct {
	W, H int
}

// Empty reports whether the rectangle has no area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Placement is where a rectangle ended up. X and Y are meaningful only when
// Placed is true.
type Placement struct {
	X, Y, W, H int
	Placed     bool
}

// Rect returns the placement as a half-open image.Rectangle.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)
}

// Heuristic selects the placement algorithm.
type Heuristic int

const (
	// Skyline is bottom-left skyline packing.
	Skyline Heuristic = iota

	// Shelf packs rows left to right, opening a new row when one is full.
	Shelf
)

// String returns the heuristic name.
func (h Heuristic) String() string {
	switch h {
	case Skyline:
		return "skyline"
	case Shelf:
		return "shelf"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps a name returned by Heuristic.String back to its value.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "skyline", "":
		return Skyline, nil
	case "shelf":
		return Shelf, nil
	default:
		return 0, fmt.Errorf("pack: unknown heuristic %q", name)
	}
}

// allocator is the common surface of SkylineAllocator and ShelfAllocator.
type allocator interface {
	Allocate(w, h int) (x, y int, ok bool)
	UsedArea() int
}

func newAllocator(h Heuristic, width, height int) allocator {
	if h == Shelf {
		return NewShelfAllocator(width, height)
	}
	return NewSkylineAllocator(width, height)
}

// Attempt places sizes into a width x height surface whose last margin
// columns and rows are kept free. Rectangles are considered tallest first
// (then widest, then by index) and the result is indexed like sizes.
//
// Attempt keeps going after a rectangle fails so that Unplaced counts are
// complete; ok is true only if every rectangle was placed.
func Attempt(sizes []Size, width, height, margin int, h Heuristic) (placements []Placement, ok bool) {
	placements = make([]Placement, len(sizes))
	areaW, areaH := width-margin, height-margin

	order := make([]int, 0, len(sizes))
	for i, s := range sizes {
		if s.Empty() {
			placements[i] = Placement{Placed: true}
			continue
		}
		placements[i] = Placement{W: s.W, H: s.H}
		order = append(order, i)
	}
	slices.SortFunc(order, func(a, b int) int {
		sa, sb := sizes[a], sizes[b]
		if sa.H != sb.H {
			return sb.H - sa.H
		}
		if sa.W != sb.W {
			return sb.W - sa.W
		}
		return a - b
	})

	ok = true
	if areaW <= 0 || areaH <= 0 {
		return placements, len(order) == 0
	}

	alloc := newAllocator(h, areaW, areaH)
	for _, i := range order {
		s := sizes[i]
		x, y, placed := alloc.Allocate(s.W, s.H)
		if !placed {
			ok = false
			continue
		}
		placements[i].X, placements[i].Y, placements[i].Placed = x, y, true
	}
	return placements, ok
}

// Unplaced counts placements that were not placed.
func Unplaced(placements []Placement) int {
	n := 0
	for _, p := range placements {
		if !p.Placed {
			n++
		}
	}
	return n
}
