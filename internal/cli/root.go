package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/creation-code/internal/app"
	"github.com/trebuchet-org/creation-code/internal/cli/render"
	"github.com/trebuchet-org/creation-code/internal/config"
	"github.com/trebuchet-org/creation-code/internal/domain"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// cleanupKey is the context key for the timeout cancel and connection close
	cleanupKey contextKey = "cleanup"
)

// NewRootCmd creates the creation-code command
func NewRootCmd() *cobra.Command {
	var (
		disassemble bool
		withoutArgs bool
		onlyArgs    bool
	)

	rootCmd := &cobra.Command{
		Use:   "creation-code <address>",
		Short: "Fetch the creation bytecode of a deployed contract",
		Long: `Fetch the creation bytecode of a deployed contract.

The creation transaction is looked up on an Etherscan compatible explorer. For
contracts deployed by a top-level transaction its input is returned; contracts
deployed by a factory are recovered from the transaction traces, which requires
a node with trace_transaction support.

Constructor arguments are sized from the verified ABI at 32 bytes per parameter,
so contracts with dynamic constructor parameters are not split correctly.

Examples:
  creation-code 0x4200000000000000000000000000000000000006 --rpc-url base
  creation-code 0x1234... --without-args
  creation-code 0x1234... --only-args --json
  creation-code 0x1234... --disassemble`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			// Outside of a Foundry project only flags and environment apply
			projectRoot, err := config.FindProjectRoot(cwd)
			if err != nil && !errors.Is(err, config.ErrNoProject) {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			cancel := context.CancelFunc(func() {})
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			ctx = context.WithValue(ctx, cleanupKey, func() {
				cancel()
				appInstance.Close()
			})

			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// PostRun hooks are skipped when RunE fails
			defer cleanup(cmd)

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			if app.Config.Explorer != nil && app.Config.Explorer.APIKey == "" && !app.Config.JSON {
				fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning("No Etherscan API key configured, requests may be rejected or rate limited"))
			}

			result, err := app.GetCreationCode.Run(cmd.Context(), usecase.GetCreationCodeParams{
				Address:     address,
				WithoutArgs: withoutArgs,
				OnlyArgs:    onlyArgs,
			})
			if err != nil {
				return err
			}

			renderer := render.NewCreationCodeRenderer(cmd.OutOrStdout(), app.Disassembler, app.Config.JSON, disassemble)
			return renderer.Render(result)
		},
	}

	rootCmd.Flags().BoolVarP(&disassemble, "disassemble", "d", false, "Disassemble the bytecode")
	rootCmd.Flags().BoolVar(&withoutArgs, "without-args", false, "Strip the constructor arguments from the bytecode")
	rootCmd.Flags().BoolVar(&onlyArgs, "only-args", false, "Only output the constructor arguments")

	rootCmd.Flags().StringP("rpc-url", "r", "", "RPC endpoint URL or foundry.toml alias (env: ETH_RPC_URL)")
	rootCmd.Flags().StringP("network", "n", "", "Network name from foundry.toml [rpc_endpoints]")
	rootCmd.Flags().StringP("chain", "c", "", "Chain name or id for the explorer (env: CHAIN)")
	rootCmd.Flags().StringP("etherscan-api-key", "e", "", "Etherscan API key (env: ETHERSCAN_API_KEY)")
	rootCmd.Flags().String("explorer-url", "", "Etherscan compatible API URL")
	rootCmd.Flags().Bool("json", false, "Output in JSON format")
	rootCmd.Flags().Bool("debug", false, "Enable debug output")
	rootCmd.Flags().Bool("non-interactive", false, "Disable the progress spinner")
	rootCmd.Flags().Duration("timeout", 0, "Overall timeout (default 2m)")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// parseAddress validates a hex contract address
func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, domain.NewUsageError(fmt.Sprintf("invalid address %q", value))
	}
	return common.HexToAddress(value), nil
}

// cleanup cancels the command timeout and closes the node connection
func cleanup(cmd *cobra.Command) {
	if fn, ok := cmd.Context().Value(cleanupKey).(func()); ok {
		fn()
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
