package chainlist

// Fallback data used whenever live acquisition fails in non-strict mode.
// Kept in one place so both extractors share it and tests can assert
// against it directly.

// FallbackChainNames is the minimal chain-ID → network-key mapping
// substituted when the chainIds.js fetch or parse fails.
var FallbackChainNames = map[string]string{
	"1":     "ethereum",
	"10":    "optimism",
	"137":   "polygon",
	"42161": "arbitrum",
	"8453":  "base",
}

// fallbackRPCs holds one known-good public endpoint per fallback network.
var fallbackRPCs = map[string]struct {
	chainID  int64
	name     string
	rpc      string
	explorer string
}{
	"ethereum": {1, "Ethereum", "https://eth.llamarpc.com", "https://etherscan.io/tx/"},
	"optimism": {10, "Optimism", "https://mainnet.optimism.io", "https://optimistic.etherscan.io/tx/"},
	"polygon":  {137, "Polygon", "https://polygon-rpc.com", "https://polygonscan.com/tx/"},
	"arbitrum": {42161, "Arbitrum One", "https://arb1.arbitrum.io/rpc", "https://arbiscan.io/tx/"},
	"base":     {8453, "Base", "https://mainnet.base.org", "https://basescan.org/tx/"},
}

// FallbackNetworks returns a fresh copy of the hardcoded 5-network set.
// Each call allocates so callers cannot mutate shared state.
func FallbackNetworks() NetworksMap {
	m := make(NetworksMap, len(fallbackRPCs))
	for key, f := range fallbackRPCs {
		m[key] = NetworkInfo{
			Name:          f.name,
			ChainID:       f.chainID,
			RPCs:          []string{f.rpc},
			BlockExplorer: f.explorer,
		}
	}
	return m
}

// popularNetworks is the fixed ordered subset surfaced at the top of the
// network list when present in the discovered set.
var popularNetworks = []string{
	"ethereum",
	"optimism",
	"binance",
	"polygon",
	"fantom",
	"gnosis",
	"base",
	"arbitrum",
	"avax",
	"celo",
}

// knownExplorers maps the popular network keys to their real explorer
// transaction URLs. Every other key gets a guessed URL (see ExplorerURLs).
var knownExplorers = map[string]string{
	"ethereum": "https://etherscan.io/tx/",
	"optimism": "https://optimistic.etherscan.io/tx/",
	"binance":  "https://bscscan.com/tx/",
	"polygon":  "https://polygonscan.com/tx/",
	"fantom":   "https://ftmscan.com/tx/",
	"gnosis":   "https://gnosisscan.io/tx/",
	"base":     "https://basescan.org/tx/",
	"arbitrum": "https://arbiscan.io/tx/",
	"avax":     "https://snowtrace.io/tx/",
	"celo":     "https://celoscan.io/tx/",
}
