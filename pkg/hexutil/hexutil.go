// Package hexutil converts hex-encoded text to raw bytes, classifying the two
// ways the conversion can fail: the input is not valid UTF-8 text at all
// (corrupted transport), or the text contains characters that do not parse as
// hex digits (a typo in otherwise well-formed text). Callers branch on the
// error type to tell the two apart.
package hexutil

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// InvalidUTF8Error reports input that failed UTF-8 interpretation before any
// hex parsing was attempted. Index is the byte offset of the first invalid
// sequence.
type InvalidUTF8Error struct {
	Index int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("hexutil: invalid UTF-8 sequence at byte %d", e.Index)
}

// ParseError reports text that is valid UTF-8 but does not parse as
// hex-encoded bytes. Err is the underlying *strconv.NumError, or
// strconv.ErrSyntax when the input has an odd number of digits.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hexutil: parsing hex digits: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode converts hex-encoded text to raw bytes.
//
// Interpretation happens in two stages and the returned error identifies the
// stage that failed: *InvalidUTF8Error when the input is not UTF-8 text, and
// *ParseError when a digit pair does not parse. Surrounding whitespace and a
// leading "0x" are tolerated.
func Decode(input []byte) ([]byte, error) {
	if !utf8.Valid(input) {
		return nil, &InvalidUTF8Error{Index: invalidIndex(input)}
	}

	s := strings.TrimSpace(string(input))
	s = strings.TrimPrefix(s, "0x")

	if len(s)%2 != 0 {
		return nil, &ParseError{Err: strconv.ErrSyntax}
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		b, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		out[i/2] = byte(b)
	}
	return out, nil
}

// DecodeString is Decode for string input. Go strings may carry arbitrary
// bytes, so the UTF-8 stage still applies.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// Encode renders raw bytes as lowercase hex text. Decode(Encode(b)) == b for
// every byte slice b.
func Encode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

// invalidIndex returns the offset of the first invalid UTF-8 sequence.
func invalidIndex(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
