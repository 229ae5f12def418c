package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethlens/ethlens/internal/chain"
	"github.com/ethlens/ethlens/internal/ui"
	"github.com/spf13/cobra"
)

var txNetwork string

var txCmd = &cobra.Command{
	Use:   "tx <hash>",
	Short: "Show transaction details",
	Long: `Look up a transaction by hash on the chosen network.

The network's RPC endpoints are probed concurrently and the first
responsive one is used for the lookup.

Examples:
  ethlens tx 0x2c6a...e1f0
  ethlens tx 0x2c6a...e1f0 --network base`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := normalizeTxHash(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()

		networks, list, err := loadNetworks(ctx, false)
		if err != nil {
			return err
		}

		key, err := resolveNetwork(txNetwork, networks, list)
		if err != nil {
			return err
		}
		info := networks[key]

		spin := ui.NewSpinner("Probing RPC endpoints...")
		spin.Start()

		rpcURL, err := newProber().FirstReachable(ctx, candidateRPCs(key, info))
		if err != nil {
			spin.Stop()
			return err
		}

		client := chain.NewClient(rpcURL)
		tx, err := client.TransactionByHash(ctx, hash)
		spin.Stop()
		if err != nil {
			if errors.Is(err, chain.ErrTxNotFound) {
				return fmt.Errorf("transaction %s not found on %s", ui.TruncateHash(hash), info.Name)
			}
			return err
		}

		status := ui.Meta("pending")
		gasUsed := "—"
		if !tx.Pending {
			// Receipt failures degrade the status display, not the lookup.
			if rec, rerr := client.TransactionReceipt(ctx, hash); rerr == nil {
				gasUsed = fmt.Sprintf("%d", rec.GasUsed)
				if rec.Success {
					status = ui.Success("confirmed")
				} else {
					status = ui.Err("failed")
				}
			} else {
				status = ui.Meta("mined (no receipt)")
			}
		}

		pairs := [][2]string{
			{"Hash", ui.Addr(tx.Hash)},
			{"Network", ui.Network(info.Name) + ui.Meta(fmt.Sprintf("  (chain %d)", info.ChainID))},
			{"Status", status},
			{"From", ui.Addr(tx.From)},
			{"To", ui.Addr(tx.To)},
			{"Value", ui.Val(tx.ValueEther + " ETH")},
			{"Gas Limit", fmt.Sprintf("%d", tx.Gas)},
			{"Gas Used", gasUsed},
			{"Nonce", fmt.Sprintf("%d", tx.Nonce)},
		}
		if !tx.Pending {
			pairs = append(pairs, [2]string{"Block", fmt.Sprintf("%d", tx.BlockNumber)})
		}
		if tx.GasPrice != nil {
			pairs = append(pairs, [2]string{"Gas Price", chain.WeiToGwei(tx.GasPrice) + " gwei"})
		}
		if info.BlockExplorer != "" {
			pairs = append(pairs, [2]string{"Explorer", ui.Addr(info.BlockExplorer + tx.Hash)})
		}

		fmt.Println(ui.KeyValueBlock("Transaction Details", pairs))
		if verbose {
			fmt.Println(ui.Meta("via " + rpcURL))
		}
		return nil
	},
}

// normalizeTxHash validates a 32-byte hex hash and canonicalizes its casing.
func normalizeTxHash(s string) (string, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return "", fmt.Errorf("invalid transaction hash %q — expected 0x-prefixed 32-byte hex", s)
	}
	return common.BytesToHash(b).Hex(), nil
}

func init() {
	txCmd.Flags().StringVar(&txNetwork, "network", "", "network key (default: config)")
}
