package cmd

import (
	"context"
	"fmt"

	"github.com/ethlens/ethlens/internal/rpc"
	"github.com/ethlens/ethlens/internal/ui"
	"github.com/spf13/cobra"
)

var rpcCmd = &cobra.Command{
	Use:   "rpc",
	Short: "Inspect and manage RPC endpoints",
}

var rpcListCmd = &cobra.Command{
	Use:   "list <network>",
	Short: "List all RPC endpoints for a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		networks, _, err := loadNetworks(context.Background(), false)
		if err != nil {
			return err
		}
		info, ok := networks[key]
		if !ok {
			return fmt.Errorf("unknown network %q", key)
		}

		fmt.Println(ui.StyleTitle.Render(fmt.Sprintf("RPCs for %s (chain %d)", info.Name, info.ChainID)))

		if custom := cfg.GetRPCs(key); len(custom) > 0 {
			fmt.Println(ui.StyleHeader.Render("Custom RPCs:"))
			for _, r := range custom {
				fmt.Printf("  %s\n", r)
			}
		}

		fmt.Println(ui.StyleHeader.Render("Discovered RPCs:"))
		for _, r := range info.RPCs {
			fmt.Printf("  %s\n", r)
		}
		return nil
	},
}

var rpcProbeCmd = &cobra.Command{
	Use:   "probe <network>",
	Short: "Probe a network's endpoints and show the one that would be used",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		ctx := context.Background()

		networks, _, err := loadNetworks(ctx, false)
		if err != nil {
			return err
		}
		info, ok := networks[key]
		if !ok {
			return fmt.Errorf("unknown network %q", key)
		}

		urls := candidateRPCs(key, info)
		spin := ui.NewSpinner(fmt.Sprintf("Probing %d endpoints...", len(urls)))
		spin.Start()
		url, err := newProber().FirstReachable(ctx, urls)
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.Success("Selected " + url))
		return nil
	},
}

var rpcBenchmarkCmd = &cobra.Command{
	Use:   "benchmark <network>",
	Short: "Measure latency and block height of every endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		ctx := context.Background()

		networks, _, err := loadNetworks(ctx, false)
		if err != nil {
			return err
		}
		info, ok := networks[key]
		if !ok {
			return fmt.Errorf("unknown network %q", key)
		}

		fmt.Printf("%s\n\n", ui.StyleTitle.Render(fmt.Sprintf("Benchmarking %s RPCs...", info.Name)))

		results := rpc.Benchmark(ctx, candidateRPCs(key, info))

		t := ui.NewTable([]ui.Column{
			{Title: "RPC URL", Width: 48},
			{Title: "Latency", Width: 10},
			{Title: "Block #", Width: 12},
			{Title: "Status", Width: 10},
		})

		for _, r := range results {
			status := ui.Success("healthy")
			latency := fmt.Sprintf("%dms", r.Latency.Milliseconds())
			block := fmt.Sprintf("%d", r.BlockNumber)

			if r.Err != nil {
				status = ui.Err("down")
				latency = "—"
				block = "—"
			}

			t.AddRow(ui.Row{r.URL, latency, block, status})
		}

		fmt.Println(t.Render())
		return nil
	},
}

var rpcAddCmd = &cobra.Command{
	Use:   "add <network> <url>",
	Short: "Add a custom RPC URL for a network",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, url := args[0], args[1]
		if err := cfg.AddRPC(key, url); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Added RPC for %s: %s", ui.Network(key), url)))
		return nil
	},
}

var rpcRemoveCmd = &cobra.Command{
	Use:   "remove <network> <url>",
	Short: "Remove a custom RPC URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, url := args[0], args[1]
		if err := cfg.RemoveRPC(key, url); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed RPC for %s: %s", key, url)))
		return nil
	},
}

func init() {
	rpcCmd.AddCommand(rpcListCmd, rpcProbeCmd, rpcBenchmarkCmd, rpcAddCmd, rpcRemoveCmd)
}
