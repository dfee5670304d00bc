package client_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	nodeservice "github.com/cosmos/cosmos-sdk/client/grpc/node"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/celestiaorg/cosmos-client/pkg/client"
)

// Handler types let individual tests override single RPCs on the mock chain.
type (
	GetTxHandler     func(ctx context.Context, req *sdktx.GetTxRequest) (*sdktx.GetTxResponse, error)
	BroadcastHandler func(ctx context.Context, req *sdktx.BroadcastTxRequest) (*sdktx.BroadcastTxResponse, error)
)

type mockTxService struct {
	sdktx.UnimplementedServiceServer
	getTx     GetTxHandler
	broadcast BroadcastHandler
}

func (m *mockTxService) GetTx(ctx context.Context, req *sdktx.GetTxRequest) (*sdktx.GetTxResponse, error) {
	if m.getTx == nil {
		return nil, status.Error(codes.NotFound, "tx not found")
	}
	return m.getTx(ctx, req)
}

func (m *mockTxService) BroadcastTx(ctx context.Context, req *sdktx.BroadcastTxRequest) (*sdktx.BroadcastTxResponse, error) {
	if m.broadcast == nil {
		return nil, status.Error(codes.Unimplemented, "no broadcast handler configured")
	}
	return m.broadcast(ctx, req)
}

// mockTMService serves syncing state and block heights. With step > 0 every
// GetLatestBlock call advances the chain by that many blocks, up to cap when
// one is set; with step == 0 the chain is stalled.
type mockTMService struct {
	cmtservice.UnimplementedServiceServer
	mu       sync.Mutex
	height   int64
	step     int64
	cap      int64
	syncing  bool
	nilBlock bool
}

func (m *mockTMService) GetSyncing(context.Context, *cmtservice.GetSyncingRequest) (*cmtservice.GetSyncingResponse, error) {
	return &cmtservice.GetSyncingResponse{Syncing: m.syncing}, nil
}

func (m *mockTMService) GetLatestBlock(context.Context, *cmtservice.GetLatestBlockRequest) (*cmtservice.GetLatestBlockResponse, error) {
	if m.nilBlock {
		return &cmtservice.GetLatestBlockResponse{}, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	height := m.height
	m.height += m.step
	if m.cap > 0 && m.height > m.cap {
		m.height = m.cap
	}
	return &cmtservice.GetLatestBlockResponse{
		SdkBlock: &cmtservice.Block{Header: cmtservice.Header{Height: height}},
	}, nil
}

type mockAuthService struct {
	authtypes.UnimplementedQueryServer
	account *codectypes.Any
}

func (m *mockAuthService) Account(context.Context, *authtypes.QueryAccountRequest) (*authtypes.QueryAccountResponse, error) {
	return &authtypes.QueryAccountResponse{Account: m.account}, nil
}

type mockBankService struct {
	banktypes.UnimplementedQueryServer
	balances sdk.Coins
}

func (m *mockBankService) AllBalances(context.Context, *banktypes.QueryAllBalancesRequest) (*banktypes.QueryAllBalancesResponse, error) {
	return &banktypes.QueryAllBalancesResponse{Balances: m.balances}, nil
}

func (m *mockBankService) Balance(_ context.Context, req *banktypes.QueryBalanceRequest) (*banktypes.QueryBalanceResponse, error) {
	coin := sdk.NewCoin(req.Denom, m.balances.AmountOf(req.Denom))
	return &banktypes.QueryBalanceResponse{Balance: &coin}, nil
}

type mockNodeService struct {
	nodeservice.UnimplementedServiceServer
	minGasPrice string
}

func (m *mockNodeService) Config(context.Context, *nodeservice.ConfigRequest) (*nodeservice.ConfigResponse, error) {
	return &nodeservice.ConfigResponse{MinimumGasPrice: m.minGasPrice}, nil
}

// mockChain bundles the five services a Client talks to, with healthy
// defaults: a synced chain at height 1, a funded base account, and a
// parseable minimum gas price.
type mockChain struct {
	tx   *mockTxService
	tm   *mockTMService
	auth *mockAuthService
	bank *mockBankService
	node *mockNodeService
}

func newMockChain(t *testing.T) *mockChain {
	acc, err := codectypes.NewAnyWithValue(&authtypes.BaseAccount{
		Address:       "cosmos1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq5tslrp",
		AccountNumber: 1,
		Sequence:      7,
	})
	require.NoError(t, err)

	return &mockChain{
		tx:   &mockTxService{},
		tm:   &mockTMService{height: 1},
		auth: &mockAuthService{account: acc},
		bank: &mockBankService{balances: sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000))},
		node: &mockNodeService{minGasPrice: "0.1uatom"},
	}
}

// start serves the mock chain over an in-memory transport and returns a
// Client wired to it.
func (m *mockChain) start(t *testing.T, opts ...client.Option) *client.Client {
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	sdktx.RegisterServiceServer(s, m.tx)
	cmtservice.RegisterServiceServer(s, m.tm)
	authtypes.RegisterQueryServer(s, m.auth)
	banktypes.RegisterQueryServer(s, m.bank)
	nodeservice.RegisterServiceServer(s, m.node)

	go func() {
		if err := s.Serve(lis); err != nil {
			t.Logf("mock chain server exited: %v", err)
		}
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	defaults := []client.Option{
		client.WithChainID("mock-chain"),
		client.WithPollInterval(20 * time.Millisecond),
		client.WithConfirmTimeout(time.Second),
	}
	return client.New(conn, append(defaults, opts...)...)
}
