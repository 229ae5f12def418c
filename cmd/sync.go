package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethlens/ethlens/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Re-discover networks and refresh the local cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		spin := ui.NewSpinner("Discovering networks...")
		spin.Start()
		networks, list, err := loadNetworks(context.Background(), true)
		spin.Stop()
		if err != nil {
			return err
		}

		rpcCount := 0
		for _, info := range networks {
			rpcCount += len(info.RPCs)
		}

		preview := list
		if len(preview) > 8 {
			preview = preview[:8]
		}

		fmt.Println(ui.Success(fmt.Sprintf("Synced %d networks (%d RPC endpoints)", len(networks), rpcCount)))
		fmt.Println(ui.Meta("top of list: " + strings.Join(preview, ", ")))
		return nil
	},
}
