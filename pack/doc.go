// Package pack places axis-aligned rectangles into a bounded surface.
//
// Attempt is a pure function: it builds a fresh allocator for the given
// surface size, places every rectangle (tallest first) and reports where each
// one went. Nothing survives between attempts, so a failed attempt can be
// thrown away without cleanup.
//
// Grow drives Attempt for atlases whose size is not fixed. It starts from a
// small seed and doubles the shorter side until every rectangle fits:
//
//	res, err := pack.Grow(sizes, pack.GrowConfig{Margin: 1})
//	if err != nil {
//	    return err // *pack.OverflowError
//	}
//	for i, p := range res.Placements {
//	    // p.X, p.Y, p.W, p.H belong to sizes[i]
//	}
//
// Two allocators are available: Skyline (bottom-left skyline, the default,
// comparable to stb_rect_pack) and Shelf (rows of left-to-right strips).
// Zero-area rectangles are reported as placed at the origin and never take
// space.
package pack
