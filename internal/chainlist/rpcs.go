package chainlist

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// URL forms recognized inside a captured rpcs array, in matching order:
// url:-field values first so the generic single-quote form does not
// consume them, then bare single-quoted strings, then double-quoted
// strings that look like endpoints. The "privacy" filter keeps the
// upstream privacy-statement fields out of the endpoint list.
var (
	reEndpoint = regexp.MustCompile(`url:\s*'([^']+)'|'([^']+)'|"(http[^"]*)"`)
	reName     = regexp.MustCompile(`name:\s*['"]([^'"]+)['"]`)
)

// Networks fetches extraRpcs.js and assembles the NetworksMap for every
// chain ID present in names. Chain IDs yielding zero endpoint URLs are
// omitted. In non-strict mode any fetch failure is logged and the
// hardcoded fallback set is returned.
func (c *Client) Networks(ctx context.Context, names map[string]string) (NetworksMap, error) {
	text, err := c.fetch(ctx, c.RPCsURL)
	if err == nil {
		networks := extractNetworks(text, names)
		if len(networks) > 0 {
			return networks, nil
		}
		err = errors.New("no RPC arrays matched any known chain ID")
	}

	if c.Strict {
		return nil, err
	}

	c.logf("RPC list acquisition failed (%v), using fallback set", err)
	return FallbackNetworks(), nil
}

// extractNetworks scans the raw script text for each known chain ID's
// rpcs array. This is pattern matching over untrusted text, not parsing:
// misses are silently skipped.
func extractNetworks(text string, names map[string]string) NetworksMap {
	explorers := ExplorerURLs(names)
	networks := make(NetworksMap)

	for id, key := range names {
		block, span := chainBlock(text, id)
		if block == "" {
			continue
		}

		urls := extractURLs(span)
		if len(urls) == 0 {
			continue
		}

		name := displayName(key)
		if m := reName.FindStringSubmatch(block); m != nil {
			name = m[1]
		}

		chainID, _ := strconv.ParseInt(id, 10, 64)
		networks[key] = NetworkInfo{
			Name:          name,
			ChainID:       chainID,
			RPCs:          urls,
			BlockExplorer: explorers[key],
		}
	}
	return networks
}

// chainBlock locates the chain ID's entry and captures its rpcs array.
// It returns the whole matched region (for the name lookup) and the inner
// content of the rpcs array.
func chainBlock(text, id string) (block, span string) {
	re := regexp.MustCompile(`(?s)\b` + regexp.QuoteMeta(id) + `:.*?rpcs:\s*\[(.*?)\]`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return m[0], m[1]
}

// extractURLs pulls endpoint URLs out of an rpcs array span in discovery
// order. Duplicates are kept; ordering is significant to the prober.
func extractURLs(span string) []string {
	var urls []string
	for _, m := range reEndpoint.FindAllStringSubmatch(span, -1) {
		switch {
		case m[1] != "":
			urls = append(urls, m[1])
		case m[2] != "":
			urls = append(urls, m[2])
		case m[3] != "" && !strings.Contains(m[3], "privacy"):
			urls = append(urls, m[3])
		}
	}
	return urls
}
