package chainlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Upstream data sources. These are JavaScript source files published by
// the chainlist project, not a stable API: both are treated as untrusted,
// best-effort-parseable text.
const (
	DefaultChainIDsURL  = "https://raw.githubusercontent.com/DefiLlama/chainlist/main/constants/chainIds.js"
	DefaultExtraRPCsURL = "https://raw.githubusercontent.com/DefiLlama/chainlist/main/constants/extraRpcs.js"

	fetchTimeout = 15 * time.Second
)

// Client discovers network metadata and RPC endpoint lists by scraping
// the chainlist constants files.
//
// In the default (resilient) mode every fetch or parse failure is logged
// and replaced by the hardcoded fallback data, so acquisition never fails
// visibly. With Strict set, those failures return errors instead — use
// this in development and tests so upstream format drift is not masked.
type Client struct {
	HTTPClient *http.Client
	NamesURL   string
	RPCsURL    string
	Strict     bool

	// Logf receives fallback warnings. Nil means silent.
	Logf func(format string, args ...any)
}

// NewClient returns a Client pointed at the chainlist constants files.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: fetchTimeout},
		NamesURL:   DefaultChainIDsURL,
		RPCsURL:    DefaultExtraRPCsURL,
	}
}

func (c *Client) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// fetch GETs url and returns the body as text. Non-2xx is an error.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}

// Discover runs the full acquisition cycle: chain names first, then the
// per-chain RPC lists that depend on them. It returns the assembled
// NetworksMap plus the prioritized network list.
func (c *Client) Discover(ctx context.Context) (NetworksMap, []string, error) {
	names, err := c.ChainNames(ctx)
	if err != nil {
		return nil, nil, err
	}

	networks, err := c.Networks(ctx, names)
	if err != nil {
		return nil, nil, err
	}

	// Keep only list entries that survived RPC extraction.
	var list []string
	for _, key := range PopularFirst(names) {
		if _, ok := networks[key]; ok {
			list = append(list, key)
		}
	}
	return networks, list, nil
}
