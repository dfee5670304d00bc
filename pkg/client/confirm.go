package client

import (
	"context"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ConfirmTx waits for a broadcast transaction under the client's default
// confirmation deadline. See WaitForTx.
func (c *Client) ConfirmTx(ctx context.Context, txHash string) (*sdk.TxResponse, error) {
	return c.WaitForTx(ctx, txHash, c.confirmTimeout)
}

// WaitForTx polls the node until the transaction is committed or the
// deadline passes. Exactly one outcome is reached per call:
//
//   - the transaction executed successfully: its response is returned;
//   - it was included but underpaid: *InsufficientFeesError;
//   - it was included and failed: *TransactionFailedError with the response;
//   - the deadline passed with blocks moving but the transaction absent:
//     *TransactionFailedError with a nil response;
//   - the deadline passed without a single new block: *NoBlockError.
//
// Individual poll failures (transport hiccups, node restarts) are logged and
// retried until the deadline; they are never surfaced to the caller.
func (c *Client) WaitForTx(ctx context.Context, txHash string, timeout time.Duration) (*sdk.TxResponse, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	// The baseline is the first height observed, even a pre-genesis zero;
	// any later, larger height means the chain moved during the wait.
	var baseline int64
	baselineSeen := false
	newBlockSeen := false

	for {
		if height, err := c.LatestBlockHeight(ctx); err != nil {
			c.logger.Debug("latest block poll failed, retrying", "tx", txHash, "err", err)
		} else if !baselineSeen {
			baseline = height
			baselineSeen = true
		} else if height > baseline {
			newBlockSeen = true
		}

		resp, err := c.tx.GetTx(ctx, &sdktx.GetTxRequest{Hash: txHash})
		switch {
		case err == nil && resp.TxResponse != nil:
			txResp := resp.TxResponse
			if txResp.Code == abci.CodeTypeOK {
				return txResp, nil
			}
			// Inclusion does not imply success.
			if isInsufficientFee(txResp) {
				return nil, &InsufficientFeesError{
					TxHash: txHash,
					Fee:    parseFeeInfo(txResp.RawLog),
					RawLog: txResp.RawLog,
				}
			}
			return nil, &TransactionFailedError{
				TxHash:   txHash,
				Elapsed:  time.Since(start),
				Response: txResp,
			}
		case err != nil && status.Code(err) != codes.NotFound:
			c.logger.Debug("transaction poll failed, retrying", "tx", txHash, "err", err)
		}

		select {
		case <-ctx.Done():
			elapsed := time.Since(start)
			if !newBlockSeen {
				return nil, &NoBlockError{Elapsed: elapsed}
			}
			return nil, &TransactionFailedError{TxHash: txHash, Elapsed: elapsed}
		case <-ticker.C:
		}
	}
}
