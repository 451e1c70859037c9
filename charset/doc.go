// Package charset builds the set of Unicode code points an atlas is baked for.
//
// Code points arrive from two places: explicit ranges given on the command line
// ("32-126") and the distinct runes found in a UTF-8 text corpus. Both feed a
// Set, which is then coalesced into sorted, maximal ranges:
//
//	var s charset.Set
//	s.AddRange(charset.Range{Start: 32, End: 126})
//	if err := s.ScanUTF8(file); err != nil {
//	    return err
//	}
//	ranges := s.Ranges()       // [(32,126) (12353,12435) ...]
//	runes := charset.Expand(ranges)
//
// The expanded order is the order in which glyphs are packed and emitted.
package charset
