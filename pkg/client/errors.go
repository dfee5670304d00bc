package client

import (
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Codespace scopes the registered error codes below.
const Codespace = "cosmosclient"

// Flag-only failures every public operation may return. Codes are stable;
// match with errors.Is.
var (
	// ErrNoToken indicates the signing account holds none of the fee token.
	ErrNoToken = errorsmod.Register(Codespace, 2, "account holds no fee token")

	// ErrChainNotRunning indicates the node is reachable but the chain has
	// not started producing blocks.
	ErrChainNotRunning = errorsmod.Register(Codespace, 3, "chain is not producing blocks yet")

	// ErrNodeNotSynced indicates the node is catching up and its local state
	// lags consensus.
	ErrNodeNotSynced = errorsmod.Register(Codespace, 4, "node is syncing and cannot serve fresh state")

	// ErrInvalidPrefix indicates an address whose bech32 prefix does not
	// match the configured network.
	ErrInvalidPrefix = errorsmod.Register(Codespace, 5, "address prefix does not match the configured network")
)

// ConnectionError indicates transport setup against the node failed. The
// transport's error is carried verbatim.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RequestError indicates the node reported an API failure. The gRPC status
// error is carried verbatim.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("node request failed: %v", e.Err) }

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError indicates a protocol payload that could not be unmarshaled.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decoding node response: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseError indicates node-supplied text (gas prices, fee logs) that does
// not parse.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parsing node response: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// SigningError wraps a signing-key failure from pkg/keys.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string { return fmt.Sprintf("signing failed: %v", e.Err) }

func (e *SigningError) Unwrap() error { return e.Err }

// BadResponseError indicates the node answered but rejected or mangled the
// operation in a way no structured variant covers.
type BadResponseError struct {
	Description string
}

func (e *BadResponseError) Error() string { return "bad response: " + e.Description }

// BadStructError indicates a payload that decoded cleanly but has a
// semantically wrong shape, such as a missing required field.
type BadStructError struct {
	Description string
}

func (e *BadStructError) Error() string { return "malformed response structure: " + e.Description }

// BadInputError indicates a caller-supplied argument the client cannot use.
type BadInputError struct {
	Description string
}

func (e *BadInputError) Error() string { return "bad input: " + e.Description }

// InvalidAccountError indicates an account record whose embedded type
// identifier is not one this client understands. The bytes decoded fine; the
// type is simply unsupported.
type InvalidAccountError struct {
	TypeURL string
}

func (e *InvalidAccountError) Error() string {
	return fmt.Sprintf("unsupported account type %s", e.TypeURL)
}

// NoBlockError indicates the confirmation deadline passed without the chain
// producing a single new block. The chain is stalled; the transaction's fate
// is unknown.
type NoBlockError struct {
	Elapsed time.Duration
}

func (e *NoBlockError) Error() string {
	return fmt.Sprintf("no new block produced within %s", e.Elapsed)
}

// TransactionFailedError indicates a transaction that was rejected on
// execution or never appeared in a block before the deadline. Response is
// nil in the never-appeared case.
type TransactionFailedError struct {
	TxHash   string
	Elapsed  time.Duration
	Response *sdk.TxResponse
}

func (e *TransactionFailedError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("transaction %s failed with code %d: %s", e.TxHash, e.Response.Code, e.Response.RawLog)
	}
	return fmt.Sprintf("transaction %s not confirmed within %s", e.TxHash, e.Elapsed)
}

// InsufficientFeesError indicates the fee paid did not meet the node's
// minimum. The transaction may have been included; inclusion does not imply
// success.
type InsufficientFeesError struct {
	TxHash string
	Fee    FeeInfo
	RawLog string
}

func (e *InsufficientFeesError) Error() string {
	if !e.Fee.Required.IsZero() {
		return fmt.Sprintf("insufficient fees for transaction %s: paid %s, required %s", e.TxHash, e.Fee.Paid, e.Fee.Required)
	}
	return fmt.Sprintf("insufficient fees for transaction %s: %s", e.TxHash, e.RawLog)
}
