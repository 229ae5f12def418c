package cmd

import (
	"fmt"
	"os"

	"github.com/ethlens/ethlens/internal/config"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/ethlens/ethlens/cmd.Version=1.2.3" .
var Version = "0.3.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "ethlens",
	Short: "Unit converter and transaction viewer for EVM chains",
	Long: `ethlens — convert between ether denominations and inspect
transactions on any EVM network.

Networks and their public RPC endpoints are discovered automatically
from the chainlist constants files and cached locally; when discovery
fails a small built-in set of major networks is used instead. Before a
lookup, every candidate endpoint is probed and the first responsive one
is chosen.

Set ETHLENS_STRICT=1 to make discovery fail loudly instead of silently
falling back — useful when debugging upstream format changes.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// ETHLENS_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("ETHLENS_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.ethlens)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		convertCmd,
		txCmd,
		networksCmd,
		rpcCmd,
		syncCmd,
	)
}
