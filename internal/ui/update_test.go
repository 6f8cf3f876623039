package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeBothBounds(t *testing.T) {
	min, max, err := parseRange("30..45")
	require.NoError(t, err)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 30.0, *min)
	assert.Equal(t, 45.0, *max)
}

func TestParseRangeOpenEnds(t *testing.T) {
	min, max, err := parseRange("30..")
	require.NoError(t, err)
	require.NotNil(t, min)
	assert.Equal(t, 30.0, *min)
	assert.Nil(t, max)

	min, max, err = parseRange("..45")
	require.NoError(t, err)
	assert.Nil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 45.0, *max)
}

func TestParseRangeSingleNumberPinsBothSides(t *testing.T) {
	min, max, err := parseRange("33")
	require.NoError(t, err)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 33.0, *min)
	assert.Equal(t, 33.0, *max)
}

func TestParseRangeEmptyClears(t *testing.T) {
	min, max, err := parseRange("")
	require.NoError(t, err)
	assert.Nil(t, min)
	assert.Nil(t, max)
}

func TestParseRangeRejectsGarbage(t *testing.T) {
	_, _, err := parseRange("abc")
	assert.Error(t, err)

	_, _, err = parseRange("1..x")
	assert.Error(t, err)
}

func TestRangeTextRoundTrip(t *testing.T) {
	min, max, err := parseRange("21..64")
	require.NoError(t, err)
	assert.Equal(t, "21..64", rangeText(min, max))

	assert.Equal(t, "", rangeText(nil, nil))

	lo := 18.0
	assert.Equal(t, "18..", rangeText(&lo, nil))
}
