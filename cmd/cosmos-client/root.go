package main

import (
	"fmt"
	"os"
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/celestiaorg/cosmos-client/pkg/client"
	"github.com/celestiaorg/cosmos-client/pkg/keys"
)

type rootFlags struct {
	grpcTarget string
	chainID    string
	prefix     string
	timeout    time.Duration
	verbose    bool
}

func (f *rootFlags) dial() (*client.Client, error) {
	logger := log.NewNopLogger()
	if f.verbose {
		logger = log.NewLogger(os.Stderr)
	}
	return client.Dial(f.grpcTarget,
		client.WithChainID(f.chainID),
		client.WithAccountPrefix(f.prefix),
		client.WithConfirmTimeout(f.timeout),
		client.WithLogger(logger),
	)
}

func rootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cosmos-client",
		Short:         "Query a Cosmos node and track transactions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.grpcTarget, "grpc", "localhost:9090", "gRPC endpoint of the node")
	cmd.PersistentFlags().StringVar(&flags.chainID, "chain-id", "", "chain identity used in signatures")
	cmd.PersistentFlags().StringVar(&flags.prefix, "prefix", client.DefaultAccountPrefix, "bech32 account prefix of the network")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", client.DefaultConfirmTimeout, "confirmation deadline")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log poll retries to stderr")

	cmd.AddCommand(
		statusCommand(flags),
		balancesCommand(flags),
		waitTxCommand(flags),
		deriveCommand(flags),
	)
	return cmd
}

func statusCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the chain is running and the node is synced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := flags.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			status, err := c.ChainStatus(cmd.Context())
			if err != nil {
				return err
			}
			height, err := c.LatestBlockHeight(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chain: %s\nheight: %d\n", status, height)
			return nil
		},
	}
}

func balancesCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balances <address>",
		Short: "List every coin an account holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			coins, err := c.Balances(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if coins.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "no balances")
				return nil
			}
			for _, coin := range coins {
				fmt.Fprintln(cmd.OutOrStdout(), coin.String())
			}
			return nil
		},
	}
}

func waitTxCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "wait-tx <hash>",
		Short: "Wait until a broadcast transaction is committed or the deadline passes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.ConfirmTx(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "committed in block %d\n", resp.Height)
			return nil
		},
	}
}

func deriveCommand(flags *rootFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "derive <mnemonic>",
		Short: "Derive the account address for a seed phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := keys.PrivateKeyFromMnemonic(args[0], "", path)
			if err != nil {
				return err
			}
			addr, err := priv.AccountAddress(flags.prefix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "hd-path", keys.DefaultHDPath, "BIP44 derivation path")
	return cmd
}
