package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ethlens/ethlens/internal/chainlist"
	"github.com/ethlens/ethlens/internal/config"
	"github.com/ethlens/ethlens/internal/rpc"
	"github.com/ethlens/ethlens/internal/ui"
	"github.com/mattn/go-isatty"
)

// newChainlistClient builds the discovery client. Fallback warnings are
// always shown; ETHLENS_STRICT=1 turns fallbacks into hard errors.
func newChainlistClient() *chainlist.Client {
	c := chainlist.NewClient()
	c.Strict = os.Getenv("ETHLENS_STRICT") == "1"
	c.Logf = func(format string, args ...any) {
		fmt.Println(ui.Warn(fmt.Sprintf(format, args...)))
	}
	return c
}

// newProber builds the liveness prober. The per-endpoint timeout can be
// overridden via probe_timeout_ms in config.json. Per-endpoint failures
// are only shown with --verbose; the all-failed warning is always shown.
func newProber() *rpc.Prober {
	return &rpc.Prober{
		Timeout: cfg.ProbeTimeout(),
		Logf: func(format string, args ...any) {
			if verbose {
				fmt.Println(ui.Meta(fmt.Sprintf(format, args...)))
			}
		},
	}
}

// loadNetworks returns the current network snapshot, re-discovering from
// upstream when the local cache is missing, stale, or refresh is forced.
func loadNetworks(ctx context.Context, refresh bool) (chainlist.NetworksMap, []string, error) {
	if !refresh {
		if cache, err := cfg.LoadNetworksCache(); err == nil && cache.Fresh() {
			return cache.Networks, cache.List, nil
		}
	}

	networks, list, err := newChainlistClient().Discover(ctx)
	if err != nil {
		return nil, nil, err
	}

	cache := &config.NetworksCache{
		SyncedAt: time.Now(),
		List:     list,
		Networks: networks,
	}
	if err := cfg.SaveNetworksCache(cache); err != nil && verbose {
		fmt.Println(ui.Meta(fmt.Sprintf("could not cache networks: %v", err)))
	}
	return networks, list, nil
}

// resolveNetwork picks the network key for a lookup: the explicit flag
// wins, then the configured default, then an interactive picker.
func resolveNetwork(flagValue string, networks chainlist.NetworksMap, list []string) (string, error) {
	if flagValue != "" {
		if _, ok := networks[flagValue]; !ok {
			return "", fmt.Errorf("unknown network %q — run `ethlens networks` to see all networks", flagValue)
		}
		return flagValue, nil
	}

	if _, ok := networks[cfg.DefaultNetwork]; ok {
		return cfg.DefaultNetwork, nil
	}

	// The interactive picker needs a terminal.
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no network selected — pass --network or set a default with `ethlens networks use`")
	}

	items := make([]ui.PickerItem, 0, len(list))
	for _, key := range list {
		info := networks[key]
		items = append(items, ui.PickerItem{
			Label:    info.Name,
			SubLabel: fmt.Sprintf("chain %d · %d RPCs", info.ChainID, len(info.RPCs)),
			Value:    key,
		})
	}
	key, err := ui.PickItem("Select a network", items)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", fmt.Errorf("no network selected")
	}
	return key, nil
}

// candidateRPCs merges custom endpoint overrides ahead of the discovered
// list so user-supplied endpoints are preferred by the prober.
func candidateRPCs(key string, info chainlist.NetworkInfo) []string {
	custom := cfg.GetRPCs(key)
	if len(custom) == 0 {
		return info.RPCs
	}
	urls := make([]string, 0, len(custom)+len(info.RPCs))
	urls = append(urls, custom...)
	return append(urls, info.RPCs...)
}
