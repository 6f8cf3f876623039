package ui

import "strings"

func runeLen(s string) int { return len([]rune(s)) }

func padRight(s string, w int) string {
	rs := []rune(s)
	if len(rs) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(rs))
}

func truncateRunes(s string, w int) string {
	rs := []rune(s)
	if len(rs) <= w {
		return s
	}
	if w <= 1 {
		return string(rs[:w])
	}
	return string(rs[:w-1]) + "…"
}

// cell renders a value into an exact-width column.
func cell(s string, w int) string {
	return padRight(truncateRunes(s, w), w)
}
