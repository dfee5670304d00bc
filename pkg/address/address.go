// Package address encodes and decodes 20-byte Cosmos account addresses
// between their raw, hex, and bech32 representations. Every failure is
// reported as a *Error carrying one of a closed set of causes; see errors.go.
package address

import (
	"github.com/cosmos/btcutil/bech32"

	"github.com/celestiaorg/cosmos-client/pkg/bounded"
	"github.com/celestiaorg/cosmos-client/pkg/hexutil"
)

const (
	// Length is the size of a raw account address in bytes.
	Length = 20

	// MaxPrefixLen caps the bech32 human-readable prefix.
	MaxPrefixLen = 32
)

// Address is an account address: a bech32 prefix plus Length raw bytes.
type Address struct {
	prefix bounded.String
	data   [Length]byte
}

// FromBech32 parses a bech32-encoded account address such as
// "cosmos1v9zf9stnk2z5gdnv7t4gdmjp5xgaxkqv3tfssh".
func FromBech32(s string) (Address, error) {
	hrp, data5, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return Address{}, &Error{Err: classifyBech32(err)}
	}
	raw, err := bech32.ConvertBits(data5, 5, 8, false)
	if err != nil {
		return Address{}, &Error{Err: classifyBech32(err)}
	}
	if len(raw) != Length {
		return Address{}, &Error{Err: ErrBech32WrongLength}
	}
	return FromBytes(hrp, raw)
}

// FromHex parses Length hex-encoded bytes and attaches the given bech32
// prefix. Hex decode failures carry the pkg/hexutil classification; a clean
// decode of the wrong size is ErrHexWrongLength.
func FromHex(prefix, s string) (Address, error) {
	raw, err := hexutil.DecodeString(s)
	if err != nil {
		return Address{}, &Error{Err: err}
	}
	if len(raw) != Length {
		return Address{}, &Error{Err: ErrHexWrongLength}
	}
	return FromBytes(prefix, raw)
}

// FromBytes builds an address from exactly Length raw bytes.
func FromBytes(prefix string, raw []byte) (Address, error) {
	if len(raw) != Length {
		return Address{}, &Error{Err: ErrBytesWrongLength}
	}
	bp, err := bounded.NewString(prefix, MaxPrefixLen)
	if err != nil {
		return Address{}, &Error{Err: &PrefixError{Prefix: prefix, Err: err}}
	}
	addr := Address{prefix: bp}
	copy(addr.data[:], raw)
	return addr, nil
}

// Bech32 renders the address in its canonical bech32 form.
func (a Address) Bech32() (string, error) {
	data5, err := bech32.ConvertBits(a.data[:], 8, 5, true)
	if err != nil {
		return "", &Error{Err: classifyBech32(err)}
	}
	s, err := bech32.Encode(a.prefix.String(), data5)
	if err != nil {
		return "", &Error{Err: classifyBech32(err)}
	}
	return s, nil
}

// String implements fmt.Stringer using the bech32 form.
func (a Address) String() string {
	s, err := a.Bech32()
	if err != nil {
		return "invalid-address"
	}
	return s
}

// Prefix returns the bech32 human-readable prefix.
func (a Address) Prefix() string { return a.prefix.String() }

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, Length)
	copy(out, a.data[:])
	return out
}

// Hex renders the raw address bytes as lowercase hex.
func (a Address) Hex() string { return hexutil.Encode(a.data[:]) }

// EncodeBech32 renders an arbitrary payload in bech32 under the given
// prefix. It is the encode half of DecodeBech32.
func EncodeBech32(prefix string, payload []byte) (string, error) {
	data5, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", classifyBech32(err)
	}
	s, err := bech32.Encode(prefix, data5)
	if err != nil {
		return "", classifyBech32(err)
	}
	return s, nil
}

// DecodeBech32 decodes any bech32 string whose payload must be wantLen bytes,
// returning the prefix and raw payload. It reports failures with the same
// variant sentinels used for addresses, so layers that parse other
// bech32-encoded material (public keys) share the classification verbatim.
func DecodeBech32(s string, wantLen int) (string, []byte, error) {
	hrp, data5, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, classifyBech32(err)
	}
	raw, err := bech32.ConvertBits(data5, 5, 8, false)
	if err != nil {
		return "", nil, classifyBech32(err)
	}
	if len(raw) != wantLen {
		return "", nil, ErrBech32WrongLength
	}
	return hrp, raw, nil
}
