package keys

import (
	"errors"
	"fmt"
)

// ErrPrivKeyWrongLength indicates private key material of the wrong size.
var ErrPrivKeyWrongLength = errors.New("private key bytes are the wrong length")

// PublicKeyError wraps every failure produced while parsing a public key.
// Err is one of the address package's variant sentinels, a byte-decode error
// from pkg/hexutil, or a *Base64DecodeError; the set is closed.
type PublicKeyError struct {
	Err error
}

func (e *PublicKeyError) Error() string { return fmt.Sprintf("invalid public key: %v", e.Err) }

func (e *PublicKeyError) Unwrap() error { return e.Err }

// Base64DecodeError indicates public key text that is not valid base64. It
// wraps the decoder's error, typically a base64.CorruptInputError.
type Base64DecodeError struct {
	Err error
}

func (e *Base64DecodeError) Error() string { return fmt.Sprintf("base64 decode failed: %v", e.Err) }

func (e *Base64DecodeError) Unwrap() error { return e.Err }

// PrivateKeyError wraps every failure produced while constructing or using a
// signing key. Err is one of: a byte-decode error from pkg/hexutil,
// ErrPrivKeyWrongLength, *CurveError, *EncodeError, *PublicKeyError,
// *address.Error, or *DerivationError. Every failure is traceable to exactly
// one of these origins; none is ever reduced to its rendered text.
type PrivateKeyError struct {
	Err error
}

func (e *PrivateKeyError) Error() string { return fmt.Sprintf("private key: %v", e.Err) }

func (e *PrivateKeyError) Unwrap() error { return e.Err }

// CurveError indicates key material the curve rejects: a scalar of zero or
// one at or above the curve order.
type CurveError struct {
	Reason string
}

func (e *CurveError) Error() string { return fmt.Sprintf("curve error: %s", e.Reason) }

// EncodeError indicates a message that could not be serialized for signing.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode failed: %v", e.Err) }

func (e *EncodeError) Unwrap() error { return e.Err }

// DerivationError wraps failures from deriving a key out of a seed phrase:
// a mnemonic validation error or a *PathError.
type DerivationError struct {
	Err error
}

func (e *DerivationError) Error() string { return fmt.Sprintf("hd derivation: %v", e.Err) }

func (e *DerivationError) Unwrap() error { return e.Err }

// PathError indicates a derivation path that does not parse against the
// m/purpose'/coin'/account'/change/index grammar.
type PathError struct {
	Spec string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid derivation path %q: %v", e.Spec, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
