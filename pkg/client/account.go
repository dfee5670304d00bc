package client

import (
	"context"

	"github.com/cosmos/gogoproto/proto"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// Account type identifiers this client understands. Anything else decoded
// from the auth module is reported as InvalidAccountError.
const (
	baseAccountTypeURL   = "/cosmos.auth.v1beta1.BaseAccount"
	moduleAccountTypeURL = "/cosmos.auth.v1beta1.ModuleAccount"
)

// Account queries the auth module for an address and returns its base
// account record, which carries the account number and sequence needed to
// sign.
func (c *Client) Account(ctx context.Context, addr string) (*authtypes.BaseAccount, error) {
	resp, err := c.auth.Account(ctx, &authtypes.QueryAccountRequest{Address: addr})
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if resp.Account == nil {
		return nil, &BadStructError{Description: "account query returned no account"}
	}

	switch resp.Account.TypeUrl {
	case baseAccountTypeURL:
		var acc authtypes.BaseAccount
		if err := proto.Unmarshal(resp.Account.Value, &acc); err != nil {
			return nil, &DecodeError{Err: err}
		}
		return &acc, nil
	case moduleAccountTypeURL:
		var acc authtypes.ModuleAccount
		if err := proto.Unmarshal(resp.Account.Value, &acc); err != nil {
			return nil, &DecodeError{Err: err}
		}
		if acc.BaseAccount == nil {
			return nil, &BadStructError{Description: "module account carries no base account"}
		}
		return acc.BaseAccount, nil
	default:
		return nil, &InvalidAccountError{TypeURL: resp.Account.TypeUrl}
	}
}
