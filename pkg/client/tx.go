package client

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdksecp256k1 "github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/celestiaorg/cosmos-client/pkg/address"
	"github.com/celestiaorg/cosmos-client/pkg/keys"
)

// BroadcastTx builds, signs, and broadcasts a transaction carrying msgs,
// returning the node's CheckTx response. It does not wait for inclusion;
// pair it with ConfirmTx or use SendTx.
func (c *Client) BroadcastTx(ctx context.Context, priv *keys.PrivateKey, msgs []sdk.Msg, opts ...TxOption) (*sdk.TxResponse, error) {
	if len(msgs) == 0 {
		return nil, &BadInputError{Description: "transaction carries no messages"}
	}
	cfg := newTxConfig(opts)

	if err := c.readyToSend(ctx); err != nil {
		return nil, err
	}

	signer, err := priv.AccountAddress(c.prefix)
	if err != nil {
		return nil, &SigningError{Err: err}
	}
	signerAddr := signer.String()

	acc, err := c.Account(ctx, signerAddr)
	if err != nil {
		return nil, err
	}

	fee, err := c.resolveFee(ctx, &cfg)
	if err != nil {
		return nil, err
	}
	if !fee.IsZero() {
		if err := c.checkFeeToken(ctx, signerAddr, fee[0].Denom); err != nil {
			return nil, err
		}
	}

	txBytes, err := c.buildAndSign(priv, msgs, cfg, fee, acc.AccountNumber, acc.Sequence)
	if err != nil {
		return nil, err
	}

	resp, err := c.tx.BroadcastTx(ctx, &sdktx.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    sdktx.BroadcastMode_BROADCAST_MODE_SYNC,
	})
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if resp.TxResponse == nil {
		return nil, &BadStructError{Description: "broadcast response carries no tx response"}
	}

	txResp := resp.TxResponse
	if txResp.Code != abci.CodeTypeOK {
		if isInsufficientFee(txResp) {
			return nil, &InsufficientFeesError{
				TxHash: txResp.TxHash,
				Fee:    parseFeeInfo(txResp.RawLog),
				RawLog: txResp.RawLog,
			}
		}
		return nil, &BadResponseError{Description: fmt.Sprintf(
			"broadcast rejected with code %d in codespace %s: %s",
			txResp.Code, txResp.Codespace, txResp.RawLog,
		)}
	}

	c.logger.Debug("transaction broadcast", "hash", txResp.TxHash, "signer", signerAddr)
	return txResp, nil
}

// SendTx broadcasts msgs and waits for inclusion under the client's
// confirmation deadline.
func (c *Client) SendTx(ctx context.Context, priv *keys.PrivateKey, msgs []sdk.Msg, opts ...TxOption) (*sdk.TxResponse, error) {
	resp, err := c.BroadcastTx(ctx, priv, msgs, opts...)
	if err != nil {
		return nil, err
	}
	return c.ConfirmTx(ctx, resp.TxHash)
}

// SendTokens transfers amount from the key's account to a bech32 recipient
// and waits for inclusion.
func (c *Client) SendTokens(ctx context.Context, priv *keys.PrivateKey, to string, amount sdk.Coins, opts ...TxOption) (*sdk.TxResponse, error) {
	recipient, err := address.FromBech32(to)
	if err != nil {
		return nil, &BadInputError{Description: fmt.Sprintf("recipient %q: %v", to, err)}
	}
	if recipient.Prefix() != c.prefix {
		return nil, errorsmod.Wrapf(ErrInvalidPrefix, "recipient uses %q, network uses %q", recipient.Prefix(), c.prefix)
	}

	signer, err := priv.AccountAddress(c.prefix)
	if err != nil {
		return nil, &SigningError{Err: err}
	}

	msg := &banktypes.MsgSend{
		FromAddress: signer.String(),
		ToAddress:   to,
		Amount:      amount,
	}
	return c.SendTx(ctx, priv, []sdk.Msg{msg}, opts...)
}

// resolveFee uses the explicit fee when one was set and otherwise prices the
// transaction's gas at the node's minimum.
func (c *Client) resolveFee(ctx context.Context, cfg *txConfig) (sdk.Coins, error) {
	if cfg.fee != nil {
		return cfg.fee, nil
	}
	prices, err := c.MinGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	fee := sdk.NewCoins()
	for _, price := range prices {
		amount := price.Amount.MulInt64(int64(cfg.gasLimit)).Ceil().TruncateInt()
		if amount.IsPositive() {
			fee = fee.Add(sdk.NewCoin(price.Denom, amount))
		}
	}
	return fee, nil
}

// buildAndSign assembles the raw transaction bytes for a SIGN_MODE_DIRECT
// single-signer transaction.
func (c *Client) buildAndSign(priv *keys.PrivateKey, msgs []sdk.Msg, cfg txConfig, fee sdk.Coins, accNum, sequence uint64) ([]byte, error) {
	anys := make([]*codectypes.Any, len(msgs))
	for i, msg := range msgs {
		a, err := codectypes.NewAnyWithValue(msg)
		if err != nil {
			return nil, &BadInputError{Description: fmt.Sprintf("message %d cannot be packed: %v", i, err)}
		}
		anys[i] = a
	}

	body := sdktx.TxBody{
		Messages:      anys,
		Memo:          cfg.memo,
		TimeoutHeight: cfg.timeoutHeight,
	}
	bodyBytes, err := body.Marshal()
	if err != nil {
		return nil, &SigningError{Err: &keys.EncodeError{Err: err}}
	}

	pubAny, err := codectypes.NewAnyWithValue(&sdksecp256k1.PubKey{Key: priv.PublicKey().Bytes()})
	if err != nil {
		return nil, &SigningError{Err: &keys.EncodeError{Err: err}}
	}
	authInfo := sdktx.AuthInfo{
		SignerInfos: []*sdktx.SignerInfo{{
			PublicKey: pubAny,
			ModeInfo: &sdktx.ModeInfo{
				Sum: &sdktx.ModeInfo_Single_{
					Single: &sdktx.ModeInfo_Single{Mode: signing.SignMode_SIGN_MODE_DIRECT},
				},
			},
			Sequence: sequence,
		}},
		Fee: &sdktx.Fee{Amount: fee, GasLimit: cfg.gasLimit},
	}
	authBytes, err := authInfo.Marshal()
	if err != nil {
		return nil, &SigningError{Err: &keys.EncodeError{Err: err}}
	}

	sig, err := priv.SignDoc(&sdktx.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authBytes,
		ChainId:       c.chainID,
		AccountNumber: accNum,
	})
	if err != nil {
		return nil, &SigningError{Err: err}
	}

	raw := sdktx.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authBytes,
		Signatures:    [][]byte{sig},
	}
	txBytes, err := raw.Marshal()
	if err != nil {
		return nil, &SigningError{Err: &keys.EncodeError{Err: err}}
	}
	return txBytes, nil
}

// isInsufficientFee reports whether a CheckTx or execution result carries
// the SDK's insufficient-fee code.
func isInsufficientFee(resp *sdk.TxResponse) bool {
	return resp.Codespace == sdkerrors.RootCodespace &&
		resp.Code == sdkerrors.ErrInsufficientFee.ABCICode()
}
