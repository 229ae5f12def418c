package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/ethlens/ethlens/internal/chain"
	"github.com/ethlens/ethlens/internal/ui"
	"github.com/spf13/cobra"
)

var convertDecimals int

var convertCmd = &cobra.Command{
	Use:   "convert <amount> [unit]",
	Short: "Convert between ETH, Gwei, Wei, hex, and token units",
	Long: `Convert between Ethereum denomination units, hex/decimal formats,
and token base units.

Units: eth, gwei, wei, hex, decimal, token, units
If no unit is given and the value starts with 0x, it's treated as hex.

Examples:
  ethlens convert 1.5 eth                  # → gwei + wei
  ethlens convert 50 gwei                  # → eth + wei
  ethlens convert 1000000000 wei           # → eth + gwei
  ethlens convert 0xff                     # → 255 (decimal)
  ethlens convert 255 hex                  # → 0xff
  ethlens convert 2.5 token --decimals 6   # → 2500000 base units
  ethlens convert 2500000 units --decimals 6  # → 2.5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := args[0]
		unit := ""
		if len(args) > 1 {
			unit = strings.ToLower(args[1])
		}

		// Auto-detect hex input.
		if unit == "" && strings.HasPrefix(strings.ToLower(amount), "0x") {
			unit = "hex_input"
		}

		switch unit {
		case "eth":
			return convertFromETH(amount)
		case "gwei":
			return convertFromGwei(amount)
		case "wei", "":
			return convertFromWei(amount)
		case "hex":
			return convertDecToHex(amount)
		case "hex_input":
			return convertHexToDec(amount)
		case "decimal", "dec":
			return convertDecToHex(amount)
		case "token":
			return convertToUnits(amount, convertDecimals)
		case "units":
			return convertFromUnits(amount, convertDecimals)
		default:
			return fmt.Errorf("unknown unit %q — use eth, gwei, wei, hex, decimal, token, or units", unit)
		}
	},
}

var (
	weiPerETH  = new(big.Float).SetUint64(params.Ether)
	gweiPerETH = new(big.Float).SetUint64(params.Ether / params.GWei)
	weiPerGwei = new(big.Float).SetUint64(params.GWei)
)

func convertFromETH(amountStr string) error {
	f, ok := new(big.Float).SetString(amountStr)
	if !ok {
		return fmt.Errorf("invalid amount: %s", amountStr)
	}

	weiF := new(big.Float).Mul(f, weiPerETH)
	gweiF := new(big.Float).Mul(f, gweiPerETH)

	wei, _ := weiF.Int(nil)
	gwei := gweiF.Text('f', 0)

	fmt.Println(ui.KeyValueBlock("Unit Conversion", [][2]string{
		{"Input", ui.Val(amountStr + " ETH")},
		{"Gwei", ui.Val(gwei + " gwei")},
		{"Wei", ui.Val(wei.String() + " wei")},
		{"Hex", ui.Val("0x" + wei.Text(16))},
	}))
	return nil
}

func convertFromGwei(amountStr string) error {
	f, ok := new(big.Float).SetString(amountStr)
	if !ok {
		return fmt.Errorf("invalid amount: %s", amountStr)
	}

	ethF := new(big.Float).Quo(f, gweiPerETH)
	weiF := new(big.Float).Mul(f, weiPerGwei)

	wei, _ := weiF.Int(nil)

	fmt.Println(ui.KeyValueBlock("Unit Conversion", [][2]string{
		{"Input", ui.Val(amountStr + " gwei")},
		{"ETH", ui.Val(ethF.Text('f', 18) + " ETH")},
		{"Wei", ui.Val(wei.String() + " wei")},
		{"Hex", ui.Val("0x" + wei.Text(16))},
	}))
	return nil
}

func convertFromWei(amountStr string) error {
	wei, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return fmt.Errorf("invalid wei amount: %s", amountStr)
	}

	fmt.Println(ui.KeyValueBlock("Unit Conversion", [][2]string{
		{"Input", ui.Val(amountStr + " wei")},
		{"ETH", ui.Val(chain.WeiToEther(wei) + " ETH")},
		{"Gwei", ui.Val(chain.WeiToGwei(wei) + " gwei")},
		{"Hex", ui.Val("0x" + wei.Text(16))},
	}))
	return nil
}

func convertHexToDec(amountStr string) error {
	clean := strings.TrimPrefix(strings.TrimPrefix(amountStr, "0x"), "0X")
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		return fmt.Errorf("invalid hex value: %s", amountStr)
	}

	fmt.Println(ui.KeyValueBlock("Hex → Decimal", [][2]string{
		{"Hex", ui.Val(amountStr)},
		{"Decimal", ui.Val(n.String())},
	}))
	return nil
}

func convertDecToHex(amountStr string) error {
	n, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return fmt.Errorf("invalid decimal value: %s", amountStr)
	}

	fmt.Println(ui.KeyValueBlock("Decimal → Hex", [][2]string{
		{"Decimal", ui.Val(amountStr)},
		{"Hex", ui.Val("0x" + n.Text(16))},
	}))
	return nil
}

// convertToUnits scales a human token amount up to raw base units.
func convertToUnits(amountStr string, decimals int) error {
	raw, ok := chain.ParseUnits(amountStr, decimals)
	if !ok {
		return fmt.Errorf("invalid amount: %s", amountStr)
	}

	fmt.Println(ui.KeyValueBlock("Token → Base Units", [][2]string{
		{"Input", ui.Val(fmt.Sprintf("%s (decimals: %d)", amountStr, decimals))},
		{"Base Units", ui.Val(raw.String())},
		{"Hex", ui.Val("0x" + raw.Text(16))},
	}))
	return nil
}

// convertFromUnits scales raw base units down to a human token amount.
func convertFromUnits(amountStr string, decimals int) error {
	raw, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return fmt.Errorf("invalid base-unit amount: %s", amountStr)
	}

	fmt.Println(ui.KeyValueBlock("Base Units → Token", [][2]string{
		{"Input", ui.Val(fmt.Sprintf("%s (decimals: %d)", amountStr, decimals))},
		{"Amount", ui.Val(chain.FormatUnits(raw, decimals))},
		{"Hex", ui.Val("0x" + raw.Text(16))},
	}))
	return nil
}

func init() {
	convertCmd.Flags().IntVar(&convertDecimals, "decimals", 18, "token decimals for token/units conversions")
}
