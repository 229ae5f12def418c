package rpc

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrNoEndpoints is returned when a probe is asked to pick from an empty
// candidate list. It is the only error the prober surfaces.
var ErrNoEndpoints = errors.New("no RPC endpoints provided")

// DefaultProbeTimeout bounds each individual liveness probe.
const DefaultProbeTimeout = 3 * time.Second

// blockNumberProbe is the minimal JSON-RPC call used to test an endpoint.
const blockNumberProbe = `{"jsonrpc":"2.0","id":1,"method":"eth_blockNumber","params":[]}`

// Prober checks a list of candidate RPC URLs for liveness. The zero
// value is usable; Timeout defaults to DefaultProbeTimeout and Logf to
// silent.
type Prober struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logf       func(format string, args ...any)
}

func (p *Prober) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultProbeTimeout
}

func (p *Prober) client() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}

func (p *Prober) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// FirstReachable probes every candidate concurrently and returns the
// first URL, by input order, whose probe succeeded. This deliberately
// waits for all probes to settle instead of racing: selection order is
// list position, not response latency.
//
// When every probe fails, the first candidate is returned unmodified as
// a last-resort fallback with a warning — the caller will surface any
// downstream connection failure itself. An empty candidate list is the
// only error condition.
func (p *Prober) FirstReachable(ctx context.Context, urls []string) (string, error) {
	if len(urls) == 0 {
		return "", ErrNoEndpoints
	}

	alive := make([]bool, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			if err := p.probe(ctx, u); err != nil {
				p.logf("probe %s: %v", u, err)
				return
			}
			alive[idx] = true
		}(i, url)
	}

	wg.Wait()

	for i, ok := range alive {
		if ok {
			return urls[i], nil
		}
	}

	p.logf("all %d RPC probes failed, falling back to %s unverified", len(urls), urls[0])
	return urls[0], nil
}

// probe issues one eth_blockNumber POST against url. Success is any 2xx
// response inside the probe timeout; the body is not inspected.
func (p *Prober) probe(ctx context.Context, url string) error {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodPost, url, strings.NewReader(blockNumberProbe))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New("unexpected status " + resp.Status)
	}
	return nil
}

// FirstReachable probes urls with a default Prober.
func FirstReachable(ctx context.Context, urls []string) (string, error) {
	p := &Prober{}
	return p.FirstReachable(ctx, urls)
}
