package chainlist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ObjectLiteral
// ---------------------------------------------------------------------------

func TestObjectLiteralSlicesBrackets(t *testing.T) {
	text := `export default {1: "ethereum"} // trailing junk`
	assert.Equal(t, `{1: "ethereum"}`, ObjectLiteral(text))
}

func TestObjectLiteralMissingBrackets(t *testing.T) {
	assert.Equal(t, "{}", ObjectLiteral("no brackets here"))
	assert.Equal(t, "{}", ObjectLiteral(""))
	assert.Equal(t, "{}", ObjectLiteral("only open {"))
	assert.Equal(t, "{}", ObjectLiteral("} backwards {"))
}

func TestObjectLiteralSpansWholeObject(t *testing.T) {
	text := "const x = {a: {b: 1}}; other()"
	assert.Equal(t, "{a: {b: 1}}", ObjectLiteral(text))
}

// ---------------------------------------------------------------------------
// NormalizeLiteral
// ---------------------------------------------------------------------------

func TestNormalizeQuotesBareKeys(t *testing.T) {
	got := NormalizeLiteral(`{1: "ethereum", 10: "optimism"}`)
	assert.JSONEq(t, `{"1":"ethereum","10":"optimism"}`, got)
}

func TestNormalizeSingleQuotes(t *testing.T) {
	got := NormalizeLiteral(`{1: 'ethereum'}`)
	assert.JSONEq(t, `{"1":"ethereum"}`, got)
}

func TestNormalizeTrailingCommas(t *testing.T) {
	got := NormalizeLiteral(`{1: "ethereum", 10: "optimism",}`)
	assert.JSONEq(t, `{"1":"ethereum","10":"optimism"}`, got)
}

func TestNormalizeLineComments(t *testing.T) {
	literal := `{
	// mainnets
	1: "ethereum",
	10: "optimism", // the OP one
}`
	got := NormalizeLiteral(literal)
	assert.JSONEq(t, `{"1":"ethereum","10":"optimism"}`, got)
}

func TestNormalizeKeepsURLSchemes(t *testing.T) {
	// "//" inside a URL is not a comment.
	got := NormalizeLiteral(`{rpc: "https://eth.example/v1"}`)
	assert.JSONEq(t, `{"rpc":"https://eth.example/v1"}`, got)
}

// ---------------------------------------------------------------------------
// DecodeObjectLiteral
// ---------------------------------------------------------------------------

// Extraction of an embedded JS literal must yield the same mapping as
// directly parsing equivalent valid JSON.
func TestDecodeMatchesDirectJSONParse(t *testing.T) {
	script := `// chain ids
export default {
	1: 'ethereum',
	10: "optimism",
	137: 'polygon', // PoS
	42161: "arbitrum",
	8453: 'base',
}
`
	equivalent := `{"1":"ethereum","10":"optimism","137":"polygon","42161":"arbitrum","8453":"base"}`

	got, err := DecodeObjectLiteral(script)
	require.NoError(t, err)

	var want map[string]string
	require.NoError(t, json.Unmarshal([]byte(equivalent), &want))
	assert.Equal(t, want, got)
}

func TestDecodeGarbageFails(t *testing.T) {
	_, err := DecodeObjectLiteral(`{1: function() {}}`)
	require.Error(t, err)
}

func TestDecodeNoObjectYieldsEmpty(t *testing.T) {
	got, err := DecodeObjectLiteral("not a script at all")
	require.NoError(t, err)
	assert.Empty(t, got)
}
