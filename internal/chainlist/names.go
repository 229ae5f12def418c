package chainlist

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ChainNames fetches chainIds.js and decodes it into a chain-ID →
// network-key mapping. In non-strict mode any failure is logged and the
// hardcoded fallback mapping is returned instead.
func (c *Client) ChainNames(ctx context.Context) (map[string]string, error) {
	text, err := c.fetch(ctx, c.NamesURL)
	if err == nil {
		var names map[string]string
		names, err = DecodeObjectLiteral(text)
		if err == nil {
			if len(names) > 0 {
				return names, nil
			}
			err = errors.New("chain-ID mapping is empty")
		}
	}

	if c.Strict {
		return nil, err
	}

	c.logf("chain name acquisition failed (%v), using fallback set", err)
	fallback := make(map[string]string, len(FallbackChainNames))
	for id, key := range FallbackChainNames {
		fallback[id] = key
	}
	return fallback, nil
}

// PopularFirst builds the prioritized network list from a chain-ID →
// network-key mapping: the fixed popular subset first (filtered to keys
// actually present), then every other key ordered by ascending chain ID,
// duplicates excluded.
func PopularFirst(names map[string]string) []string {
	present := make(map[string]bool, len(names))
	for _, key := range names {
		present[key] = true
	}

	seen := make(map[string]bool, len(present))
	list := make([]string, 0, len(present))

	for _, key := range popularNetworks {
		if present[key] && !seen[key] {
			list = append(list, key)
			seen[key] = true
		}
	}

	ids := make([]string, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.ParseInt(ids[i], 10, 64)
		b, _ := strconv.ParseInt(ids[j], 10, 64)
		return a < b
	})

	for _, id := range ids {
		key := names[id]
		if !seen[key] {
			list = append(list, key)
			seen[key] = true
		}
	}
	return list
}

// ExplorerURLs maps every network key present in names to a transaction
// explorer URL: a curated one for the popular networks, a best-effort
// guess of the form https://{key}scan.com/tx/ for everything else.
func ExplorerURLs(names map[string]string) map[string]string {
	explorers := make(map[string]string)
	for _, key := range names {
		if url, ok := knownExplorers[key]; ok {
			explorers[key] = url
			continue
		}
		explorers[key] = "https://" + key + "scan.com/tx/"
	}
	return explorers
}

// displayName derives a human-readable name from a network key when the
// upstream data carries none.
func displayName(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
