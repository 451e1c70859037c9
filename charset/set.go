package charset

import (
	"maps"
	"slices"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Set is a set of code points. The zero value is an empty set ready to use.
type Set struct {
	m map[rune]struct{}
}

// Add inserts code points into the set.
func (s *Set) Add(runes ...rune) {
	if s.m == nil {
		s.m = make(map[rune]struct{}, len(runes))
	}
	for _, r := range runes {
		s.m[r] = struct{}{}
	}
}

// AddRange inserts every code point of r.
func (s *Set) AddRange(r Range) {
	if s.m == nil {
		s.m = make(map[rune]struct{}, r.Len())
	}
	for c := r.Start; c <= r.End; c++ {
		s.m[c] = struct{}{}
	}
}

// Has reports whether c is in the set.
func (s *Set) Has(c rune) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of distinct code points.
func (s *Set) Len() int {
	return len(s.m)
}

// Runes returns the members in ascending order.
func (s *Set) Runes() []rune {
	return slices.Sorted(maps.Keys(s.m))
}

// Ranges coalesces the set into sorted maximal runs of consecutive values.
func (s *Set) Ranges() []Range {
	sorted := s.Runes()
	if len(sorted) == 0 {
		return nil
	}
	var out []Range
	cur := Range{Start: sorted[0], End: sorted[0]}
	for _, c := range sorted[1:] {
		if c == cur.End+1 {
			cur.End = c
			continue
		}
		out = append(out, cur)
		cur = Range{Start: c, End: c}
	}
	return append(out, cur)
}

// Filter returns the members that also belong to any of tables, in
// ascending order. It is used to restrict a corpus to given scripts.
func (s *Set) Filter(tables ...*unicode.RangeTable) []rune {
	if len(tables) == 0 {
		return s.Runes()
	}
	merged := rangetable.Merge(tables...)
	var out []rune
	for _, c := range s.Runes() {
		if unicode.Is(merged, c) {
			out = append(out, c)
		}
	}
	return out
}
