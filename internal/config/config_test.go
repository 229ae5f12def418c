package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethlens/ethlens/internal/chainlist"
)

// ---------------------------------------------------------------------------
// Load / Save
// ---------------------------------------------------------------------------

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ethereum", cfg.DefaultNetwork)
	assert.NotNil(t, cfg.CustomRPCs)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.DefaultNetwork = "base"
	require.NoError(t, cfg.AddRPC("base", "https://mainnet.base.org"))
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "base", reloaded.DefaultNetwork)
	assert.Equal(t, []string{"https://mainnet.base.org"}, reloaded.GetRPCs("base"))
}

func TestProbeTimeoutOverride(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.ProbeTimeout(), "unset means the prober default")

	cfg.ProbeTimeoutMS = 500
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, reloaded.ProbeTimeout())
}

// ---------------------------------------------------------------------------
// AddRPC / RemoveRPC
// ---------------------------------------------------------------------------

func TestAddRPCRejectsDuplicate(t *testing.T) {
	cfg := defaults(t.TempDir())

	require.NoError(t, cfg.AddRPC("ethereum", "https://rpc.example"))
	err := cfg.AddRPC("ethereum", "https://rpc.example")
	assert.Error(t, err)
	assert.Len(t, cfg.GetRPCs("ethereum"), 1)
}

func TestRemoveRPC(t *testing.T) {
	cfg := defaults(t.TempDir())
	require.NoError(t, cfg.AddRPC("ethereum", "https://a.example"))
	require.NoError(t, cfg.AddRPC("ethereum", "https://b.example"))

	require.NoError(t, cfg.RemoveRPC("ethereum", "https://a.example"))
	assert.Equal(t, []string{"https://b.example"}, cfg.GetRPCs("ethereum"))

	err := cfg.RemoveRPC("ethereum", "https://gone.example")
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// networks cache
// ---------------------------------------------------------------------------

func TestNetworksCacheRoundTrip(t *testing.T) {
	cfg := defaults(t.TempDir())

	nc := &NetworksCache{
		SyncedAt: time.Now(),
		List:     []string{"ethereum"},
		Networks: chainlist.NetworksMap{
			"ethereum": {Name: "Ethereum", ChainID: 1, RPCs: []string{"https://rpc.example"}},
		},
	}
	require.NoError(t, cfg.SaveNetworksCache(nc))

	got, err := cfg.LoadNetworksCache()
	require.NoError(t, err)
	assert.True(t, got.Fresh())
	assert.Equal(t, nc.List, got.List)
	assert.Equal(t, int64(1), got.Networks["ethereum"].ChainID)
}

func TestNetworksCacheFreshness(t *testing.T) {
	networks := chainlist.NetworksMap{"ethereum": {ChainID: 1}}

	stale := &NetworksCache{SyncedAt: time.Now().Add(-25 * time.Hour), Networks: networks}
	assert.False(t, stale.Fresh())

	empty := &NetworksCache{SyncedAt: time.Now()}
	assert.False(t, empty.Fresh(), "a cache without networks is never fresh")

	var nilCache *NetworksCache
	assert.False(t, nilCache.Fresh())
}

func TestLoadNetworksCacheMissingFile(t *testing.T) {
	cfg := defaults(t.TempDir())

	got, err := cfg.LoadNetworksCache()
	require.NoError(t, err)
	assert.False(t, got.Fresh())
}
