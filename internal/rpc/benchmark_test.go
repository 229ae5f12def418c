package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkResultsKeepInputOrder(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1b4"}`)) //nolint:errcheck
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()

	results := Benchmark(context.Background(), []string{bad.URL, good.URL})
	require.Len(t, results, 2)

	assert.Equal(t, bad.URL, results[0].URL)
	assert.Error(t, results[0].Err)

	assert.Equal(t, good.URL, results[1].URL)
	require.NoError(t, results[1].Err)
	assert.Equal(t, uint64(0x1b4), results[1].BlockNumber)
	assert.Greater(t, results[1].Latency.Nanoseconds(), int64(0))
}

func TestBenchmarkEmpty(t *testing.T) {
	assert.Empty(t, Benchmark(context.Background(), nil))
}
