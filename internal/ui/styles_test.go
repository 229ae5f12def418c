package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateHash(t *testing.T) {
	h := "0x" + strings.Repeat("ab", 32)
	got := TruncateHash(h)

	assert.Equal(t, "0xabab…abab", got)
	assert.True(t, strings.Contains(got, "…"))
}

func TestTruncateHashShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "0xabcd", TruncateHash("0xabcd"))
	assert.Equal(t, "", TruncateHash(""))
}

func TestMessageHelpersCarryContent(t *testing.T) {
	assert.Contains(t, Success("synced"), "synced")
	assert.Contains(t, Warn("using fallback"), "using fallback")
	assert.Contains(t, Err("probe failed"), "probe failed")
	assert.Contains(t, Network("Ethereum"), "Ethereum")
}
