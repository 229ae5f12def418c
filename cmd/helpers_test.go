package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethlens/ethlens/internal/chainlist"
	"github.com/ethlens/ethlens/internal/config"
)

// withConfig swaps the package config for the test's duration.
func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestNewProberUsesConfiguredTimeout(t *testing.T) {
	withConfig(t, &config.Config{ProbeTimeoutMS: 750})

	p := newProber()
	assert.Equal(t, 750*time.Millisecond, p.Timeout)
}

func TestNewProberDefaultTimeout(t *testing.T) {
	withConfig(t, &config.Config{})

	p := newProber()
	assert.Equal(t, time.Duration(0), p.Timeout, "zero defers to the prober default")
}

func TestResolveNetworkFlagWins(t *testing.T) {
	withConfig(t, &config.Config{DefaultNetwork: "ethereum"})
	networks := chainlist.NetworksMap{
		"ethereum": {Name: "Ethereum", ChainID: 1},
		"base":     {Name: "Base", ChainID: 8453},
	}

	key, err := resolveNetwork("base", networks, []string{"ethereum", "base"})
	require.NoError(t, err)
	assert.Equal(t, "base", key)

	_, err = resolveNetwork("nope", networks, []string{"ethereum", "base"})
	assert.Error(t, err)
}

func TestResolveNetworkFallsBackToDefault(t *testing.T) {
	withConfig(t, &config.Config{DefaultNetwork: "ethereum"})
	networks := chainlist.NetworksMap{"ethereum": {Name: "Ethereum", ChainID: 1}}

	key, err := resolveNetwork("", networks, []string{"ethereum"})
	require.NoError(t, err)
	assert.Equal(t, "ethereum", key)
}

func TestResolveNetworkNonInteractiveErrors(t *testing.T) {
	// No flag, no usable default, and test stdin is not a terminal: the
	// picker must not launch, just a clean error.
	withConfig(t, &config.Config{DefaultNetwork: "gone"})
	networks := chainlist.NetworksMap{"ethereum": {Name: "Ethereum", ChainID: 1}}

	_, err := resolveNetwork("", networks, []string{"ethereum"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no network selected")
}
