// Package keys holds secp256k1 key material for a Cosmos account: parsing
// public keys from their wire encodings, constructing signing keys from hex,
// raw bytes, or a BIP39 phrase plus a BIP44 path, and producing compact
// signatures over transaction sign bytes.
package keys

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Cosmos account addresses

	"github.com/celestiaorg/cosmos-client/pkg/address"
	"github.com/celestiaorg/cosmos-client/pkg/hexutil"
)

// PublicKeyLength is the size of a compressed secp256k1 public key.
const PublicKeyLength = 33

// PublicKey is a compressed secp256k1 public key.
type PublicKey struct {
	data [PublicKeyLength]byte
}

// PublicKeyFromBytes builds a public key from exactly PublicKeyLength raw
// bytes.
func PublicKeyFromBytes(raw []byte) (PublicKey, error) {
	if len(raw) != PublicKeyLength {
		return PublicKey{}, &PublicKeyError{Err: address.ErrBytesWrongLength}
	}
	var pk PublicKey
	copy(pk.data[:], raw)
	return pk, nil
}

// PublicKeyFromHex parses a hex-encoded compressed public key.
func PublicKeyFromHex(s string) (PublicKey, error) {
	raw, err := hexutil.DecodeString(s)
	if err != nil {
		return PublicKey{}, &PublicKeyError{Err: err}
	}
	if len(raw) != PublicKeyLength {
		return PublicKey{}, &PublicKeyError{Err: address.ErrHexWrongLength}
	}
	return PublicKeyFromBytes(raw)
}

// PublicKeyFromBech32 parses a bech32-encoded public key such as the
// "cosmospub1..." format. Decode failures carry the same classification used
// for addresses.
func PublicKeyFromBech32(s string) (PublicKey, error) {
	_, raw, err := address.DecodeBech32(s, PublicKeyLength)
	if err != nil {
		return PublicKey{}, &PublicKeyError{Err: err}
	}
	return PublicKeyFromBytes(raw)
}

// PublicKeyFromBase64 parses a base64-encoded compressed public key, the
// format used inside protobuf Any payloads.
func PublicKeyFromBase64(s string) (PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return PublicKey{}, &PublicKeyError{Err: &Base64DecodeError{Err: err}}
	}
	if len(raw) != PublicKeyLength {
		return PublicKey{}, &PublicKeyError{Err: address.ErrBytesWrongLength}
	}
	return PublicKeyFromBytes(raw)
}

// Bytes returns a copy of the compressed key bytes.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeyLength)
	copy(out, pk.data[:])
	return out
}

// Hex renders the compressed key as lowercase hex.
func (pk PublicKey) Hex() string { return hexutil.Encode(pk.data[:]) }

// Base64 renders the compressed key in standard base64.
func (pk PublicKey) Base64() string { return base64.StdEncoding.EncodeToString(pk.data[:]) }

// Bech32 renders the compressed key in bech32 under the given prefix.
func (pk PublicKey) Bech32(prefix string) (string, error) {
	s, err := address.EncodeBech32(prefix, pk.data[:])
	if err != nil {
		return "", &PublicKeyError{Err: err}
	}
	return s, nil
}

// AccountAddress derives the account address for this key under the given
// bech32 prefix: RIPEMD160(SHA256(pubkey)).
func (pk PublicKey) AccountAddress(prefix string) (address.Address, error) {
	sum := sha256.Sum256(pk.data[:])
	hasher := ripemd160.New()
	hasher.Write(sum[:])
	return address.FromBytes(prefix, hasher.Sum(nil))
}
