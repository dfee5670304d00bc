package client

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGasLimit is used when no TxOption overrides it.
const DefaultGasLimit uint64 = 200_000

type txConfig struct {
	gasLimit      uint64
	fee           sdk.Coins
	memo          string
	timeoutHeight uint64
}

func newTxConfig(opts []TxOption) txConfig {
	cfg := txConfig{gasLimit: DefaultGasLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// TxOption adjusts a single transaction without touching client defaults.
type TxOption func(*txConfig)

// WithGasLimit sets the gas the transaction may consume.
func WithGasLimit(limit uint64) TxOption {
	return func(cfg *txConfig) { cfg.gasLimit = limit }
}

// WithFee sets the fee explicitly, skipping the node's minimum gas price
// query.
func WithFee(fee sdk.Coins) TxOption {
	return func(cfg *txConfig) { cfg.fee = fee }
}

// WithMemo attaches a memo to the transaction.
func WithMemo(memo string) TxOption {
	return func(cfg *txConfig) { cfg.memo = memo }
}

// WithTimeoutHeight makes the transaction invalid after the given block
// height.
func WithTimeoutHeight(height uint64) TxOption {
	return func(cfg *txConfig) { cfg.timeoutHeight = height }
}
