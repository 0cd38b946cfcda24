package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberDecimal(t *testing.T) {
	v, err := ParseNumber("42", 10)
	require.NoError(t, err)
	assert.True(t, v.IsInteger())
	assert.Equal(t, int32(42), v.Int32())
}

func TestParseNumberHex(t *testing.T) {
	v, err := ParseNumber("FF", 16)
	require.NoError(t, err)
	assert.Equal(t, int32(255), v.Int32())
}

func TestParseNumberReal(t *testing.T) {
	v, err := ParseNumber("3.25", 10)
	require.NoError(t, err)
	assert.True(t, v.IsReal())
	assert.InDelta(t, 3.25, v.Float64(), 1e-9)
}

func TestParseNumberRealIgnoresBase(t *testing.T) {
	// Real literals parse in decimal regardless of the active base, per
	// the original implementation's atof-based parser.
	v, err := ParseNumber("1.5", 16)
	require.NoError(t, err)
	assert.True(t, v.IsReal())
	assert.InDelta(t, 1.5, v.Float64(), 1e-9)
}

func TestParseNumberNegative(t *testing.T) {
	v, err := ParseNumber("-7", 10)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), v.Int32())
}

func TestParseNumberRejectsGarbage(t *testing.T) {
	_, err := ParseNumber("12x", 10)
	assert.Error(t, err)
}

func TestFormatInBaseRoundTrip(t *testing.T) {
	for _, base := range []int{2, 8, 10, 16, 36} {
		s := FormatInBase(12345, base)
		v, err := ParseNumber(s, base)
		require.NoError(t, err)
		assert.Equal(t, int32(12345), v.Int32())
	}
}

func TestModTruncatesTowardZero(t *testing.T) {
	// Preserves the original C++ implementation's truncating remainder,
	// not a mathematical modulus: -7 MOD 2 is -1, not 1.
	r, err := modValues(Int(-7), Int(2))
	require.NoError(t, err)
	assert.Equal(t, int32(-1), r.Int32())
}

func TestModRealAlsoTruncates(t *testing.T) {
	r, err := modValues(Real(-7.5), Real(2))
	require.NoError(t, err)
	assert.InDelta(t, -1.5, r.Float64(), 1e-9)
}

func TestDivByZeroErrors(t *testing.T) {
	_, err := divValues(Int(1), Int(0))
	assert.Equal(t, errDivByZero, err)
}

func TestCompareUnsignedWrapsNegative(t *testing.T) {
	// -1 as unsigned is the largest uint32, so it's U< greater than 1.
	assert.True(t, compareUnsigned(Int(1), Int(-1)) < 0)
}

func TestBoolValueNonzeroIsTrue(t *testing.T) {
	assert.True(t, Int(5).Bool())
	assert.False(t, Int(0).Bool())
	assert.True(t, Bool(true).Bool())
}
