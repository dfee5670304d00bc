package keys

import (
	"crypto/sha256"
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/celestiaorg/cosmos-client/pkg/address"
	"github.com/celestiaorg/cosmos-client/pkg/hexutil"
	"github.com/celestiaorg/cosmos-client/pkg/mnemonic"
)

const (
	// PrivateKeyLength is the size of a raw secp256k1 private key.
	PrivateKeyLength = 32

	// SignatureLength is the size of a compact signature without the
	// recovery byte: 32-byte R followed by 32-byte S.
	SignatureLength = 64

	// DefaultHDPath is the BIP44 path for the Cosmos Hub coin type.
	DefaultHDPath = "m/44'/118'/0'/0/0"
)

// PrivateKey is a secp256k1 signing key. Construct one with
// PrivateKeyFromBytes, PrivateKeyFromHex, or PrivateKeyFromMnemonic.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes builds a signing key from exactly PrivateKeyLength raw
// bytes. The bytes must form a scalar in [1, n) for curve order n.
func PrivateKeyFromBytes(raw []byte) (*PrivateKey, error) {
	if len(raw) != PrivateKeyLength {
		return nil, &PrivateKeyError{Err: ErrPrivKeyWrongLength}
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return nil, &PrivateKeyError{Err: &CurveError{Reason: "scalar overflows the curve order"}}
	}
	if scalar.IsZero() {
		return nil, &PrivateKeyError{Err: &CurveError{Reason: "scalar is zero"}}
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PrivateKeyFromHex parses a hex-encoded 32-byte signing key.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	raw, err := hexutil.DecodeString(s)
	if err != nil {
		return nil, &PrivateKeyError{Err: err}
	}
	if len(raw) != PrivateKeyLength {
		return nil, &PrivateKeyError{Err: ErrPrivKeyWrongLength}
	}
	return PrivateKeyFromBytes(raw)
}

// PrivateKeyFromMnemonic derives a signing key from a BIP39 phrase under the
// given BIP44 path, such as DefaultHDPath. Phrase validation failures and
// path parse failures surface through DerivationError.
func PrivateKeyFromMnemonic(phrase, passphrase, path string) (*PrivateKey, error) {
	m, err := mnemonic.Parse(phrase)
	if err != nil {
		return nil, &PrivateKeyError{Err: &DerivationError{Err: err}}
	}
	// The path grammar omits the conventional "m/" head.
	params, err := hd.NewParamsFromPath(strings.TrimPrefix(path, "m/"))
	if err != nil {
		return nil, &PrivateKeyError{Err: &DerivationError{Err: &PathError{Spec: path, Err: err}}}
	}
	derived, err := hd.Secp256k1.Derive()(m.String(), passphrase, params.String())
	if err != nil {
		return nil, &PrivateKeyError{Err: &DerivationError{Err: err}}
	}
	return PrivateKeyFromBytes(derived)
}

// Bytes returns a copy of the raw 32-byte scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// PublicKey returns the compressed public key for this signing key.
func (k *PrivateKey) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk.data[:], k.key.PubKey().SerializeCompressed())
	return pk
}

// AccountAddress derives the account address for this key's public key.
// Failures from the encoding layer surface wrapped, never reduced to text.
func (k *PrivateKey) AccountAddress(prefix string) (address.Address, error) {
	addr, err := k.PublicKey().AccountAddress(prefix)
	if err != nil {
		return address.Address{}, &PrivateKeyError{Err: err}
	}
	return addr, nil
}

// Sign produces a 64-byte R||S signature over SHA-256 of msg, matching the
// signature format Cosmos nodes verify.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	sum := sha256.Sum256(msg)
	sig := ecdsa.SignCompact(k.key, sum[:], false)
	// SignCompact leads with the recovery code; verification does not use it.
	return sig[1:], nil
}

// SignDoc serializes a protobuf sign document and signs the resulting bytes.
func (k *PrivateKey) SignDoc(doc interface{ Marshal() ([]byte, error) }) ([]byte, error) {
	bz, err := doc.Marshal()
	if err != nil {
		return nil, &PrivateKeyError{Err: &EncodeError{Err: err}}
	}
	return k.Sign(bz)
}
