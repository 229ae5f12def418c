package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

var (
	weiPerEther = new(big.Float).SetUint64(params.Ether)
	weiPerGwei  = new(big.Float).SetUint64(params.GWei)
)

// WeiToEther formats a wei amount as a full-precision ether string.
func WeiToEther(wei *big.Int) string {
	f := new(big.Float).SetInt(wei)
	f.Quo(f, weiPerEther)
	return f.Text('f', 18)
}

// WeiToGwei formats a wei amount as a gwei string.
func WeiToGwei(wei *big.Int) string {
	f := new(big.Float).SetInt(wei)
	f.Quo(f, weiPerGwei)
	return f.Text('f', 9)
}

// FormatUnits scales a raw token amount down by the token's decimals.
func FormatUnits(raw *big.Int, decimals int) string {
	if decimals <= 0 {
		return raw.String()
	}
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	f := new(big.Float).SetInt(raw)
	f.Quo(f, new(big.Float).SetInt(div))
	return f.Text('f', decimals)
}

// ParseUnits scales a human token amount up by the token's decimals,
// truncating any fraction beyond them.
func ParseUnits(amount string, decimals int) (*big.Int, bool) {
	f, ok := new(big.Float).SetString(amount)
	if !ok {
		return nil, false
	}
	mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	f.Mul(f, new(big.Float).SetInt(mul))
	raw, _ := f.Int(nil)
	return raw, true
}
