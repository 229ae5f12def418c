package chainlist

// NetworkInfo holds everything discovered about a single network during
// one acquisition cycle. Treat values as immutable once returned.
type NetworkInfo struct {
	Name          string   `json:"name"`
	ChainID       int64    `json:"chain_id"`
	RPCs          []string `json:"rpcs"`
	BlockExplorer string   `json:"block_explorer,omitempty"`
}

// NetworksMap maps a network key (e.g. "ethereum") to its metadata.
type NetworksMap map[string]NetworkInfo
