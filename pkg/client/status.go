package client

import (
	"context"
	"time"

	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
)

// ChainStatus describes what the node can currently serve.
type ChainStatus int

const (
	// StatusWaitingToStart means the node is reachable but the chain has not
	// produced its first block.
	StatusWaitingToStart ChainStatus = iota

	// StatusSyncing means the chain is running but this node's local height
	// lags consensus.
	StatusSyncing

	// StatusMoving means the node is synced and the chain is producing
	// blocks.
	StatusMoving
)

func (s ChainStatus) String() string {
	switch s {
	case StatusWaitingToStart:
		return "waiting to start"
	case StatusSyncing:
		return "syncing"
	case StatusMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// ChainStatus reports whether the chain has started and whether this node
// has caught up to it.
func (c *Client) ChainStatus(ctx context.Context) (ChainStatus, error) {
	sync, err := c.tm.GetSyncing(ctx, &cmtservice.GetSyncingRequest{})
	if err != nil {
		return 0, &RequestError{Err: err}
	}

	height, err := c.LatestBlockHeight(ctx)
	if err != nil {
		return 0, err
	}
	if height == 0 {
		return StatusWaitingToStart, nil
	}
	if sync.Syncing {
		return StatusSyncing, nil
	}
	return StatusMoving, nil
}

// LatestBlockHeight returns the height of the newest block the node has
// committed, or 0 when the chain has not started.
func (c *Client) LatestBlockHeight(ctx context.Context) (int64, error) {
	resp, err := c.tm.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{})
	if err != nil {
		return 0, &RequestError{Err: err}
	}
	if resp.SdkBlock == nil {
		return 0, &BadStructError{Description: "latest block response carries no block"}
	}
	return resp.SdkBlock.Header.Height, nil
}

// WaitForChainStart polls until the chain produces its first block or the
// timeout passes, in which case it returns ErrChainNotRunning. A node that
// is still syncing when the chain is known to be running yields
// ErrNodeNotSynced.
func (c *Client) WaitForChainStart(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.ChainStatus(ctx)
		if err != nil {
			c.logger.Debug("chain status query failed, retrying", "err", err)
		} else {
			switch status {
			case StatusMoving:
				return nil
			case StatusSyncing:
				return ErrNodeNotSynced
			}
		}

		select {
		case <-ctx.Done():
			return ErrChainNotRunning
		case <-ticker.C:
		}
	}
}

// readyToSend gates transaction submission on node health.
func (c *Client) readyToSend(ctx context.Context) error {
	status, err := c.ChainStatus(ctx)
	if err != nil {
		return err
	}
	switch status {
	case StatusWaitingToStart:
		return ErrChainNotRunning
	case StatusSyncing:
		return ErrNodeNotSynced
	default:
		return nil
	}
}
