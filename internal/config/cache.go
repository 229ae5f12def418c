package config

import (
	"path/filepath"
	"time"

	"github.com/ethlens/ethlens/internal/chainlist"
)

// NetworksCache is the on-disk snapshot of the last successful network
// discovery (networks.json in the config dir).
type NetworksCache struct {
	SyncedAt time.Time             `json:"synced_at"`
	List     []string              `json:"list"`
	Networks chainlist.NetworksMap `json:"networks"`
}

// MaxCacheAge is how long a synced snapshot is trusted before commands
// re-discover automatically.
const MaxCacheAge = 24 * time.Hour

// Fresh reports whether the cache holds data recent enough to use.
func (nc *NetworksCache) Fresh() bool {
	return nc != nil && len(nc.Networks) > 0 && time.Since(nc.SyncedAt) < MaxCacheAge
}

// LoadNetworksCache reads networks.json. A missing file yields an empty
// (stale) cache, not an error.
func (c *Config) LoadNetworksCache() (*NetworksCache, error) {
	return loadJSON[NetworksCache](filepath.Join(c.configDir, networksFile))
}

// SaveNetworksCache writes networks.json.
func (c *Config) SaveNetworksCache(nc *NetworksCache) error {
	return saveJSON(filepath.Join(c.configDir, networksFile), nc)
}
