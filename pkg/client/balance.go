package client

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// Balances returns every coin the address holds.
func (c *Client) Balances(ctx context.Context, addr string) (sdk.Coins, error) {
	resp, err := c.bank.AllBalances(ctx, &banktypes.QueryAllBalancesRequest{Address: addr})
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	return resp.Balances, nil
}

// Balance returns the address's holding of a single denom. A zero coin of
// that denom is returned when the account holds none.
func (c *Client) Balance(ctx context.Context, addr, denom string) (sdk.Coin, error) {
	resp, err := c.bank.Balance(ctx, &banktypes.QueryBalanceRequest{Address: addr, Denom: denom})
	if err != nil {
		return sdk.Coin{}, &RequestError{Err: err}
	}
	if resp.Balance == nil {
		return sdk.Coin{}, &BadStructError{Description: "balance query returned no coin"}
	}
	return *resp.Balance, nil
}

// checkFeeToken verifies the signer can pay fees in denom before
// broadcasting.
func (c *Client) checkFeeToken(ctx context.Context, addr, denom string) error {
	bal, err := c.Balance(ctx, addr, denom)
	if err != nil {
		return err
	}
	if bal.IsZero() {
		return errorsmod.Wrapf(ErrNoToken, "account %s holds no %s", addr, denom)
	}
	return nil
}
