package cmd

import (
	"context"
	"fmt"

	"github.com/ethlens/ethlens/internal/ui"
	"github.com/spf13/cobra"
)

var (
	networksRefresh bool
	networksAll     bool
)

// networksListLimit keeps the default listing readable; chainlist knows
// about well over a thousand networks.
const networksListLimit = 40

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List discovered networks, popular first",
	RunE: func(cmd *cobra.Command, args []string) error {
		networks, list, err := loadNetworks(context.Background(), networksRefresh)
		if err != nil {
			return err
		}

		t := ui.NewTable([]ui.Column{
			{Title: "#", Width: 4},
			{Title: "Key", Width: 18},
			{Title: "Name", Width: 24},
			{Title: "Chain ID", Width: 10},
			{Title: "RPCs", Width: 5},
			{Title: "Explorer", Width: 36},
		})

		shown := 0
		for i, key := range list {
			if !networksAll && shown >= networksListLimit {
				break
			}
			info := networks[key]
			t.AddRow(ui.Row{
				fmt.Sprintf("%d", i+1),
				key,
				info.Name,
				fmt.Sprintf("%d", info.ChainID),
				fmt.Sprintf("%d", len(info.RPCs)),
				info.BlockExplorer,
			})
			shown++
		}

		fmt.Println(t.Render())
		if shown < len(list) {
			fmt.Println(ui.Meta(fmt.Sprintf("%d of %d networks shown — use --all for the full list", shown, len(list))))
		} else {
			fmt.Println(ui.Meta(fmt.Sprintf("%d networks total", len(list))))
		}
		return nil
	},
}

var networksUseCmd = &cobra.Command{
	Use:   "use <network>",
	Short: "Set the default network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		networks, _, err := loadNetworks(context.Background(), false)
		if err != nil {
			return err
		}
		if _, ok := networks[key]; !ok {
			return fmt.Errorf("unknown network %q — run `ethlens networks` to see all networks", key)
		}

		cfg.DefaultNetwork = key
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Println(ui.Success("Default network set to " + ui.Network(key)))
		return nil
	},
}

func init() {
	networksCmd.Flags().BoolVar(&networksRefresh, "refresh", false, "re-discover networks instead of using the cache")
	networksCmd.Flags().BoolVar(&networksAll, "all", false, "show every discovered network")
	networksCmd.AddCommand(networksUseCmd)
}
