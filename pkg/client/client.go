// Package client is a gRPC client for a Cosmos chain node: chain status and
// account queries, transaction building, signing and broadcast, and a
// deadline-bounded confirmation protocol. Every public operation returns
// either a registered sentinel or one of the structured error types in
// errors.go; no failure is reduced to an anonymous string when a structured
// variant applies.
package client

import (
	"time"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	nodeservice "github.com/cosmos/cosmos-sdk/client/grpc/node"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	// DefaultAccountPrefix is the bech32 prefix assumed when none is
	// configured.
	DefaultAccountPrefix = "cosmos"

	// DefaultPollInterval is the pause between confirmation polls.
	DefaultPollInterval = time.Second

	// DefaultConfirmTimeout bounds how long ConfirmTx waits for inclusion.
	DefaultConfirmTimeout = time.Minute
)

// Client talks to a single Cosmos node over a shared gRPC connection. The
// connection is safe for concurrent queries; confirmation loops for
// different transactions share no state and may run in parallel.
type Client struct {
	conn           *grpc.ClientConn
	chainID        string
	prefix         string
	pollInterval   time.Duration
	confirmTimeout time.Duration
	logger         log.Logger

	tx   sdktx.ServiceClient
	tm   cmtservice.ServiceClient
	auth authtypes.QueryClient
	bank banktypes.QueryClient
	node nodeservice.ServiceClient
}

// Option configures a Client.
type Option func(c *Client)

// WithChainID sets the chain identity signed into every transaction.
func WithChainID(chainID string) Option {
	return func(c *Client) { c.chainID = chainID }
}

// WithAccountPrefix sets the bech32 prefix the client's network uses.
func WithAccountPrefix(prefix string) Option {
	return func(c *Client) { c.prefix = prefix }
}

// WithPollInterval sets the pause between confirmation polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// WithConfirmTimeout sets the default confirmation deadline used by
// ConfirmTx and SendTx.
func WithConfirmTimeout(d time.Duration) Option {
	return func(c *Client) { c.confirmTimeout = d }
}

// WithLogger sets the logger used for retried poll failures and broadcast
// progress. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Dial opens a plaintext connection to target and wraps it in a Client.
// Transport setup failures are reported as *ConnectionError.
func Dial(target string, opts ...Option) (*Client, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, &ConnectionError{Target: target, Err: err}
	}
	return New(conn, opts...), nil
}

// New wraps an existing connection. The caller keeps ownership of conn.
func New(conn *grpc.ClientConn, opts ...Option) *Client {
	c := &Client{
		conn:           conn,
		prefix:         DefaultAccountPrefix,
		pollInterval:   DefaultPollInterval,
		confirmTimeout: DefaultConfirmTimeout,
		logger:         log.NewNopLogger(),

		tx:   sdktx.NewServiceClient(conn),
		tm:   cmtservice.NewServiceClient(conn),
		auth: authtypes.NewQueryClient(conn),
		bank: banktypes.NewQueryClient(conn),
		node: nodeservice.NewServiceClient(conn),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChainID returns the configured chain identity.
func (c *Client) ChainID() string { return c.chainID }

// AccountPrefix returns the configured bech32 account prefix.
func (c *Client) AccountPrefix() string { return c.prefix }

// Close tears down the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }
