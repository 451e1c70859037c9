package charset

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive interval of Unicode code points.
type Range struct {
	Start rune
	End   rune
}

// Validate reports whether r is a usable range.
func (r Range) Validate() error {
	if r.Start <= 0 {
		return &RangeError{Range: r, Reason: "start must be positive"}
	}
	if r.End < r.Start {
		return &RangeError{Range: r, Reason: "end before start"}
	}
	if r.End > maxRune {
		return &RangeError{Range: r, Reason: "end beyond U+10FFFF"}
	}
	return nil
}

// Contains reports whether c lies in r.
func (r Range) Contains(c rune) bool {
	return c >= r.Start && c <= r.End
}

// Len returns the number of code points in r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End-r.Start) + 1
}

// String formats r the way ParseRange accepts it.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseRange parses "start-end" with decimal bounds, or "0x"-prefixed hex
// bounds ("0x3041-0x3093"). A single value ("65") is a one-element range.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	start, err := parseCodePoint(lo)
	if err != nil {
		return Range{}, fmt.Errorf("charset: bad range %q: %w", s, err)
	}
	end := start
	if found {
		end, err = parseCodePoint(hi)
		if err != nil {
			return Range{}, fmt.Errorf("charset: bad range %q: %w", s, err)
		}
	}
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	base := 10
	if t, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s, base = t, 16
	} else if t, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		s, base = t, 16
	}
	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// Coalesce collapses code points into sorted, maximal runs of consecutive
// values. Duplicates are ignored; the input is not modified.
func Coalesce(runes []rune) []Range {
	var s Set
	s.Add(runes...)
	return s.Ranges()
}

// Expand lists every code point of ranges, in range order.
func Expand(ranges []Range) []rune {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}
	out := make([]rune, 0, n)
	for _, r := range ranges {
		for c := r.Start; c <= r.End; c++ {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of code points covered by ranges.
func Count(ranges []Range) int {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}
	return n
}
