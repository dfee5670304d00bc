package address

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/bech32"
)

// Variant sentinels for address parsing failures. Wrong-length conditions are
// deliberately distinct from malformed-content conditions at every stage so
// callers can treat "re-encode and retry" differently from "reject as
// garbage".
var (
	// ErrBech32WrongLength indicates the bech32 payload has an invalid length.
	ErrBech32WrongLength = errors.New("bech32 data is the wrong length")

	// ErrBech32InvalidBase32 indicates the text contains characters outside
	// the bech32 charset. The input is not base32 at all.
	ErrBech32InvalidBase32 = errors.New("bech32 contains characters outside the charset")

	// ErrBech32InvalidEncoding indicates the text is well-formed base32 but
	// fails validation: a bad checksum, mixed case, a missing separator, or
	// invalid bit padding.
	ErrBech32InvalidEncoding = errors.New("bech32 checksum or structure is invalid")

	// ErrHexWrongLength indicates hex input that decoded cleanly but to the
	// wrong number of bytes.
	ErrHexWrongLength = errors.New("hex input decodes to the wrong number of bytes")

	// ErrBytesWrongLength indicates a raw byte slice of the wrong length.
	ErrBytesWrongLength = errors.New("raw input is the wrong number of bytes")
)

// Error wraps every failure produced while parsing or rendering an account
// address. Err is one of the sentinels above, a *PrefixError, or a
// byte-decode error from pkg/hexutil; the set is closed and the original
// cause is always carried as a value.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("invalid address: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// PrefixError indicates a bech32 prefix that exceeds the maximum supported
// length. It wraps bounded.ErrTooLong.
type PrefixError struct {
	Prefix string
	Err    error
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("prefix %q too long: %v", e.Prefix, e.Err)
}

func (e *PrefixError) Unwrap() error { return e.Err }

// classifyBech32 maps the codec's error types onto the three variants that
// matter to callers. Length keeps its own variant; charset problems mean the
// input is not base32; every structural failure (checksum, case, separator,
// padding, bit grouping) collapses into invalid-encoding.
func classifyBech32(err error) error {
	switch err.(type) {
	case bech32.ErrInvalidLength:
		return ErrBech32WrongLength
	case bech32.ErrNonCharsetChar, bech32.ErrInvalidCharacter:
		return ErrBech32InvalidBase32
	default:
		return ErrBech32InvalidEncoding
	}
}
