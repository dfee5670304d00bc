package client

import (
	"context"
	"strings"

	nodeservice "github.com/cosmos/cosmos-sdk/client/grpc/node"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FeeInfo compares the fee a transaction paid against what the node
// required. It is carried for display; the amounts are not re-validated.
type FeeInfo struct {
	Paid     sdk.Coins
	Required sdk.Coins
}

// Shortfall returns, per denom, how much the paid fee fell below the
// requirement.
func (f FeeInfo) Shortfall() sdk.Coins {
	short := sdk.NewCoins()
	for _, req := range f.Required {
		paid := f.Paid.AmountOf(req.Denom)
		if req.Amount.GT(paid) {
			short = short.Add(sdk.NewCoin(req.Denom, req.Amount.Sub(paid)))
		}
	}
	return short
}

// MinGasPrice queries the node's configured minimum gas price. A node that
// reports an unparseable price string yields *ParseError.
func (c *Client) MinGasPrice(ctx context.Context) (sdk.DecCoins, error) {
	resp, err := c.node.Config(ctx, &nodeservice.ConfigRequest{})
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	prices, err := sdk.ParseDecCoins(strings.TrimSpace(resp.GetMinimumGasPrice()))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return prices, nil
}

// parseFeeInfo extracts the paid and required amounts from an
// insufficient-fee rejection log, e.g.
// "insufficient fees; got: 10uatom required: 100uatom: insufficient fee".
// Parsing is best effort; an unrecognized log yields a zero FeeInfo and the
// caller keeps the raw text.
func parseFeeInfo(rawLog string) FeeInfo {
	const (
		gotMark = "got: "
		reqMark = "required: "
	)
	gotAt := strings.Index(rawLog, gotMark)
	reqAt := strings.Index(rawLog, reqMark)
	if gotAt < 0 || reqAt <= gotAt {
		return FeeInfo{}
	}

	paidText := strings.TrimSpace(rawLog[gotAt+len(gotMark) : reqAt])
	reqText := rawLog[reqAt+len(reqMark):]
	if cut := strings.IndexByte(reqText, ':'); cut >= 0 {
		reqText = reqText[:cut]
	}
	reqText = strings.TrimSpace(reqText)

	paid, err := sdk.ParseCoinsNormalized(paidText)
	if err != nil {
		return FeeInfo{}
	}
	required, err := sdk.ParseCoinsNormalized(reqText)
	if err != nil {
		return FeeInfo{}
	}
	return FeeInfo{Paid: paid, Required: required}
}
