package pack

import "errors"

// DefaultSeed is the side length Grow starts from when no size is fixed.
const DefaultSeed = 8

// GrowConfig controls Grow.
type GrowConfig struct {
	// Width and Height fix the surface size when both are positive. Only one
	// attempt is made in that case.
	Width, Height int

	// Seed is the starting side length for automatic sizing. Zero means
	// DefaultSeed.
	Seed int

	// MaxSize stops growth once either side would exceed it. Zero means
	// unbounded.
	MaxSize int

	// Margin is the number of free columns and rows kept at the right and
	// bottom edges of the surface.
	Margin int

	// Heuristic selects the allocator.
	Heuristic Heuristic

	// OnAttempt, if set, is called after each attempt.
	OnAttempt func(width, height int, ok bool)
}

// Result is the outcome of a successful Grow.
type Result struct {
	Width, Height int
	Placements    []Placement

	// Attempts is the number of surface sizes tried.
	Attempts int
}

var errBadSeed = errors.New("pack: seed must be positive")

// Grow packs sizes, enlarging the surface until everything fits.
//
// With a fixed size, a failed attempt returns *OverflowError with Limit 0.
// Otherwise the surface starts at Seed x Seed and the shorter side doubles
// after every failed attempt (width first on ties). Both sides only ever grow.
func Grow(sizes []Size, cfg GrowConfig) (*Result, error) {
	if cfg.Width > 0 && cfg.Height > 0 {
		placements, ok := Attempt(sizes, cfg.Width, cfg.Height, cfg.Margin, cfg.Heuristic)
		if cfg.OnAttempt != nil {
			cfg.OnAttempt(cfg.Width, cfg.Height, ok)
		}
		if !ok {
			return nil, &OverflowError{
				Width:    cfg.Width,
				Height:   cfg.Height,
				Unplaced: Unplaced(placements),
			}
		}
		return &Result{Width: cfg.Width, Height: cfg.Height, Placements: placements, Attempts: 1}, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	if seed < 0 {
		return nil, errBadSeed
	}

	w, h := seed, seed
	for attempts := 1; ; attempts++ {
		placements, ok := Attempt(sizes, w, h, cfg.Margin, cfg.Heuristic)
		if cfg.OnAttempt != nil {
			cfg.OnAttempt(w, h, ok)
		}
		if ok {
			return &Result{Width: w, Height: h, Placements: placements, Attempts: attempts}, nil
		}

		nw, nh := w, h
		if w > h {
			nh *= 2
		} else {
			nw *= 2
		}
		if cfg.MaxSize > 0 && (nw > cfg.MaxSize || nh > cfg.MaxSize) {
			return nil, &OverflowError{
				Width:    w,
				Height:   h,
				Unplaced: Unplaced(placements),
				Limit:    cfg.MaxSize,
			}
		}
		w, h = nw, nh
	}
}
