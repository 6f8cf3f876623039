package engine

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// Match tiers for the global query, strongest first. A value's rank is the
// highest tier it reaches; rows below the engine's threshold are filtered
// out, but the rank is kept on surviving rows for sort tie-breaking.
const (
	RankNoMatch            = 0
	RankMatches            = 1 // subsequence match, possibly non-contiguous
	RankAcronym            = 2
	RankContains           = 3
	RankWordStartsWith     = 4
	RankStartsWith         = 5
	RankEqual              = 6
	RankCaseSensitiveEqual = 7
)

// RankValue scores how closely value matches query.
func RankValue(value, query string) int {
	if query == "" {
		return RankCaseSensitiveEqual
	}
	if value == "" {
		return RankNoMatch
	}
	if value == query {
		return RankCaseSensitiveEqual
	}
	lv, lq := strings.ToLower(value), strings.ToLower(query)
	if lv == lq {
		return RankEqual
	}
	if strings.HasPrefix(lv, lq) {
		return RankStartsWith
	}
	if wordStartsWith(lv, lq) {
		return RankWordStartsWith
	}
	if strings.Contains(lv, lq) {
		return RankContains
	}
	if strings.HasPrefix(acronym(lv), lq) {
		return RankAcronym
	}
	if len(fuzzy.Find(lq, []string{lv})) > 0 {
		return RankMatches
	}
	return RankNoMatch
}

func wordStartsWith(value, query string) bool {
	start := true
	for i, r := range value {
		if start && strings.HasPrefix(value[i:], query) {
			return true
		}
		start = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return false
}

func acronym(value string) string {
	var b strings.Builder
	start := true
	for _, r := range value {
		if alnum := unicode.IsLetter(r) || unicode.IsDigit(r); alnum {
			if start {
				b.WriteRune(r)
			}
			start = false
		} else {
			start = true
		}
	}
	return b.String()
}
