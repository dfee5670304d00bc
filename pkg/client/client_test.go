package client_test

import (
	"context"
	"strings"
	"testing"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/cosmos-client/pkg/address"
	"github.com/celestiaorg/cosmos-client/pkg/bounded"
	"github.com/celestiaorg/cosmos-client/pkg/client"
	"github.com/celestiaorg/cosmos-client/pkg/keys"
)

func testKey(t *testing.T) *keys.PrivateKey {
	priv, err := keys.PrivateKeyFromHex(strings.Repeat("00", 31) + "01")
	require.NoError(t, err)
	return priv
}

func TestChainStatus(t *testing.T) {
	tests := []struct {
		name    string
		height  int64
		syncing bool
		want    client.ChainStatus
	}{
		{name: "waiting to start", height: 0, want: client.StatusWaitingToStart},
		{name: "syncing", height: 10, syncing: true, want: client.StatusSyncing},
		{name: "moving", height: 10, want: client.StatusMoving},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chain := newMockChain(t)
			chain.tm.height = tc.height
			chain.tm.syncing = tc.syncing

			c := chain.start(t)
			got, err := c.ChainStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLatestBlockHeightMissingBlock(t *testing.T) {
	chain := newMockChain(t)
	chain.tm.nilBlock = true

	c := chain.start(t)
	_, err := c.LatestBlockHeight(context.Background())

	var structErr *client.BadStructError
	require.ErrorAs(t, err, &structErr)
}

func TestWaitForChainStart(t *testing.T) {
	t.Run("chain never starts", func(t *testing.T) {
		chain := newMockChain(t)
		chain.tm.height = 0

		c := chain.start(t)
		err := c.WaitForChainStart(context.Background(), 200*time.Millisecond)
		require.ErrorIs(t, err, client.ErrChainNotRunning)
	})

	t.Run("node lags consensus", func(t *testing.T) {
		chain := newMockChain(t)
		chain.tm.syncing = true

		c := chain.start(t)
		err := c.WaitForChainStart(context.Background(), 200*time.Millisecond)
		require.ErrorIs(t, err, client.ErrNodeNotSynced)
	})

	t.Run("chain is moving", func(t *testing.T) {
		chain := newMockChain(t)

		c := chain.start(t)
		require.NoError(t, c.WaitForChainStart(context.Background(), 200*time.Millisecond))
	})
}

func TestAccount(t *testing.T) {
	t.Run("base account", func(t *testing.T) {
		chain := newMockChain(t)

		c := chain.start(t)
		acc, err := c.Account(context.Background(), "cosmos1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq5tslrp")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), acc.AccountNumber)
		assert.Equal(t, uint64(7), acc.Sequence)
	})

	t.Run("module account unwraps to its base account", func(t *testing.T) {
		chain := newMockChain(t)
		mod, err := codectypes.NewAnyWithValue(&authtypes.ModuleAccount{
			BaseAccount: &authtypes.BaseAccount{AccountNumber: 3, Sequence: 0},
			Name:        "distribution",
		})
		require.NoError(t, err)
		chain.auth.account = mod

		c := chain.start(t)
		acc, err := c.Account(context.Background(), "any")
		require.NoError(t, err)
		assert.Equal(t, uint64(3), acc.AccountNumber)
	})

	t.Run("unsupported account type", func(t *testing.T) {
		chain := newMockChain(t)
		chain.auth.account = &codectypes.Any{
			TypeUrl: "/cosmos.vesting.v1beta1.ContinuousVestingAccount",
			Value:   []byte{0x0a, 0x00},
		}

		c := chain.start(t)
		_, err := c.Account(context.Background(), "any")

		var accErr *client.InvalidAccountError
		require.ErrorAs(t, err, &accErr)
		assert.Equal(t, "/cosmos.vesting.v1beta1.ContinuousVestingAccount", accErr.TypeURL)
	})
}

func TestBalances(t *testing.T) {
	chain := newMockChain(t)
	chain.bank.balances = sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 42),
		sdk.NewInt64Coin("uosmo", 7),
	)

	c := chain.start(t)

	coins, err := c.Balances(context.Background(), "any")
	require.NoError(t, err)
	assert.Equal(t, int64(42), coins.AmountOf("uatom").Int64())

	coin, err := c.Balance(context.Background(), "any", "uosmo")
	require.NoError(t, err)
	assert.Equal(t, int64(7), coin.Amount.Int64())
}

func TestMinGasPrice(t *testing.T) {
	t.Run("parses", func(t *testing.T) {
		chain := newMockChain(t)
		chain.node.minGasPrice = "0.025uatom"

		c := chain.start(t)
		prices, err := c.MinGasPrice(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "uatom", prices[0].Denom)
	})

	t.Run("malformed price text", func(t *testing.T) {
		chain := newMockChain(t)
		chain.node.minGasPrice = "not a decimal coin!!!"

		c := chain.start(t)
		_, err := c.MinGasPrice(context.Background())

		var parseErr *client.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestBroadcastTx(t *testing.T) {
	chain := newMockChain(t)

	var gotTxBytes []byte
	chain.tx.broadcast = func(_ context.Context, req *sdktx.BroadcastTxRequest) (*sdktx.BroadcastTxResponse, error) {
		gotTxBytes = req.TxBytes
		return &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{
			TxHash: testHash,
			Code:   abci.CodeTypeOK,
		}}, nil
	}

	c := chain.start(t)
	priv := testKey(t)

	to, err := priv.AccountAddress(c.AccountPrefix())
	require.NoError(t, err)
	msg := &banktypes.MsgSend{
		FromAddress: to.String(),
		ToAddress:   to.String(),
		Amount:      sdk.NewCoins(sdk.NewInt64Coin("uatom", 1)),
	}

	resp, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg}, client.WithMemo("ping"))
	require.NoError(t, err)
	assert.Equal(t, testHash, resp.TxHash)

	// The broadcast bytes are a well-formed raw transaction carrying one
	// compact signature.
	var raw sdktx.TxRaw
	require.NoError(t, raw.Unmarshal(gotTxBytes))
	require.Len(t, raw.Signatures, 1)
	assert.Len(t, raw.Signatures[0], keys.SignatureLength)

	var body sdktx.TxBody
	require.NoError(t, body.Unmarshal(raw.BodyBytes))
	assert.Equal(t, "ping", body.Memo)
	require.Len(t, body.Messages, 1)
}

func TestBroadcastTxFailures(t *testing.T) {
	priv := testKey(t)
	msg := &banktypes.MsgSend{Amount: sdk.NewCoins(sdk.NewInt64Coin("uatom", 1))}

	t.Run("no messages", func(t *testing.T) {
		c := newMockChain(t).start(t)
		_, err := c.BroadcastTx(context.Background(), priv, nil)
		var inputErr *client.BadInputError
		require.ErrorAs(t, err, &inputErr)
	})

	t.Run("chain not running", func(t *testing.T) {
		chain := newMockChain(t)
		chain.tm.height = 0
		c := chain.start(t)
		_, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg})
		require.ErrorIs(t, err, client.ErrChainNotRunning)
	})

	t.Run("node not synced", func(t *testing.T) {
		chain := newMockChain(t)
		chain.tm.syncing = true
		c := chain.start(t)
		_, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg})
		require.ErrorIs(t, err, client.ErrNodeNotSynced)
	})

	t.Run("no fee token", func(t *testing.T) {
		chain := newMockChain(t)
		chain.bank.balances = sdk.NewCoins()
		c := chain.start(t)
		_, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg})
		require.ErrorIs(t, err, client.ErrNoToken)
	})

	t.Run("oversized account prefix fails signing", func(t *testing.T) {
		chain := newMockChain(t)
		c := chain.start(t, client.WithAccountPrefix(strings.Repeat("p", address.MaxPrefixLen+1)))

		_, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg})

		var signErr *client.SigningError
		require.ErrorAs(t, err, &signErr)
		require.ErrorIs(t, err, bounded.ErrTooLong)
	})

	t.Run("broadcast rejected for fees", func(t *testing.T) {
		chain := newMockChain(t)
		chain.tx.broadcast = func(context.Context, *sdktx.BroadcastTxRequest) (*sdktx.BroadcastTxResponse, error) {
			return &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{
				TxHash:    testHash,
				Code:      13,
				Codespace: "sdk",
				RawLog:    "insufficient fees; got: 1uatom required: 20uatom: insufficient fee",
			}}, nil
		}
		c := chain.start(t)

		_, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg})

		var feeErr *client.InsufficientFeesError
		require.ErrorAs(t, err, &feeErr)
		assert.Equal(t, "19uatom", feeErr.Fee.Shortfall().String())
	})

	t.Run("broadcast rejected for other reasons", func(t *testing.T) {
		chain := newMockChain(t)
		chain.tx.broadcast = func(context.Context, *sdktx.BroadcastTxRequest) (*sdktx.BroadcastTxResponse, error) {
			return &sdktx.BroadcastTxResponse{TxResponse: &sdk.TxResponse{
				TxHash:    testHash,
				Code:      32,
				Codespace: "sdk",
				RawLog:    "account sequence mismatch",
			}}, nil
		}
		c := chain.start(t)

		_, err := c.BroadcastTx(context.Background(), priv, []sdk.Msg{msg})

		var respErr *client.BadResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Contains(t, respErr.Error(), "sequence mismatch")
	})
}

func TestSendTokensRejectsForeignPrefix(t *testing.T) {
	chain := newMockChain(t)
	c := chain.start(t) // network prefix is "cosmos"

	foreign, err := address.EncodeBech32("osmo", make([]byte, address.Length))
	require.NoError(t, err)

	_, err = c.SendTokens(context.Background(), testKey(t), foreign, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1)))
	require.ErrorIs(t, err, client.ErrInvalidPrefix)
}

func TestSendTokensRejectsMalformedRecipient(t *testing.T) {
	chain := newMockChain(t)
	c := chain.start(t)

	_, err := c.SendTokens(context.Background(), testKey(t), "not-bech32-at-all", sdk.NewCoins(sdk.NewInt64Coin("uatom", 1)))

	var inputErr *client.BadInputError
	require.ErrorAs(t, err, &inputErr)
}
