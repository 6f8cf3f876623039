package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankTiers(t *testing.T) {
	assert.Equal(t, RankCaseSensitiveEqual, RankValue("Amanda", "Amanda"))
	assert.Equal(t, RankEqual, RankValue("Amanda", "amanda"))
	assert.Equal(t, RankStartsWith, RankValue("Amanda", "ama"))
	assert.Equal(t, RankWordStartsWith, RankValue("Amanda Torres", "tor"))
	assert.Equal(t, RankContains, RankValue("Amanda", "mand"))
	assert.Equal(t, RankAcronym, RankValue("Amanda Beatriz Torres", "abt"))
	assert.Equal(t, RankMatches, RankValue("Amanda", "ada"))
	assert.Equal(t, RankNoMatch, RankValue("Amanda", "xyz"))
	assert.Equal(t, RankNoMatch, RankValue("", "a"))
}

func TestRankTierOrderingIsMonotonic(t *testing.T) {
	// Closer matches always rank strictly above looser ones.
	ladder := []int{
		RankValue("Amanda", "xyz"),
		RankValue("Amanda", "ada"),
		RankValue("Amanda Beatriz Torres", "abt"),
		RankValue("Amanda", "mand"),
		RankValue("Amanda Torres", "tor"),
		RankValue("Amanda", "ama"),
		RankValue("Amanda", "amanda"),
		RankValue("Amanda", "Amanda"),
	}
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, ladder[i], ladder[i-1])
	}
}

func TestDebouncerLastWriteWins(t *testing.T) {
	d := NewDebouncer(0)
	first := d.Arm()
	second := d.Arm()
	// The earlier timer firing late must not apply.
	assert.False(t, d.Current(first))
	assert.True(t, d.Current(second))

	third := d.Arm()
	assert.False(t, d.Current(second))
	assert.True(t, d.Current(third))
	assert.Equal(t, DebounceDelay, d.Delay())
}
