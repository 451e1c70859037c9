package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ScanUTF8 adds every distinct code point found in r to the set.
//
// The input is UTF-8; a leading byte order mark is dropped, and a UTF-16
// byte order mark switches decoding to UTF-16 for the whole stream. Control
// characters below U+0020 are skipped. Malformed input stops the scan with a
// *DecodeError; code points read before the error stay in the set. An
// encoded U+FFFD is ordinary text.
func (s *Set) ScanUTF8(r io.Reader) error {
	dec := transform.NewReader(r, unicode.BOMOverride(encoding.UTF8Validator))
	br := bufio.NewReader(dec)

	var offset int64
	for {
		c, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return &DecodeError{Offset: offset}
		}
		if err != nil {
			return fmt.Errorf("charset: scan: %w", err)
		}
		// After a UTF-8 byte order mark the bytes pass through unchecked.
		if c == utf8.RuneError && size == 1 {
			return &DecodeError{Offset: offset}
		}
		offset += int64(size)
		if c < ' ' {
			continue
		}
		s.Add(c)
	}
}

// ScanFile is ScanUTF8 over the named file.
func (s *Set) ScanFile(path string) error {
	// #nosec G304 -- corpus path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("charset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := s.ScanUTF8(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
