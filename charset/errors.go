package charset

import (
	"errors"
	"fmt"
)

// maxRune is the largest Unicode scalar value.
const maxRune = 0x10FFFF

// ErrEmpty is returned when a set yields no ranges.
var ErrEmpty = errors.New("charset: no code points")

// RangeError describes an invalid code point range.
type RangeError struct {
	Range  Range
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("charset: invalid range %d-%d: %s", e.Range.Start, e.Range.End, e.Reason)
}

// DecodeError reports malformed UTF-8 in a scanned corpus.
type DecodeError struct {
	// Offset is the byte offset of the offending sequence in the decoded
	// stream, counted after any byte order mark.
	Offset int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("charset: malformed text at offset %d", e.Offset)
}
