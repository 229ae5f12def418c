package cmd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// denomination constants
// ---------------------------------------------------------------------------

func TestDenominationConstants(t *testing.T) {
	wei, _ := weiPerETH.Int(nil)
	assert.Equal(t, "1000000000000000000", wei.String())

	gwei, _ := gweiPerETH.Int(nil)
	assert.Equal(t, "1000000000", gwei.String())

	perGwei, _ := weiPerGwei.Int(nil)
	assert.Equal(t, "1000000000", perGwei.String())
}

func TestETHToWeiMath(t *testing.T) {
	f, ok := new(big.Float).SetString("1.5")
	require.True(t, ok)

	wei, _ := new(big.Float).Mul(f, weiPerETH).Int(nil)
	assert.Equal(t, "1500000000000000000", wei.String())
}

// ---------------------------------------------------------------------------
// conversion errors
// ---------------------------------------------------------------------------

func TestConvertRejectsInvalidInput(t *testing.T) {
	assert.Error(t, convertFromETH("one point five"))
	assert.Error(t, convertFromGwei("??"))
	assert.Error(t, convertFromWei("1.5")) // wei is integral
	assert.Error(t, convertHexToDec("0xzz"))
	assert.Error(t, convertDecToHex("0xff")) // hex is not a decimal
	assert.Error(t, convertToUnits("abc", 6))
	assert.Error(t, convertFromUnits("2.5", 6)) // base units are integral
}

func TestConvertAcceptsValidInput(t *testing.T) {
	assert.NoError(t, convertFromETH("1.5"))
	assert.NoError(t, convertFromGwei("50"))
	assert.NoError(t, convertFromWei("1000000000"))
	assert.NoError(t, convertHexToDec("0xff"))
	assert.NoError(t, convertDecToHex("255"))
	assert.NoError(t, convertToUnits("2.5", 6))
	assert.NoError(t, convertFromUnits("2500000", 6))
}
