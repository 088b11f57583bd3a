package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ansiReset = "\x1b[0m"

// InjectBackground replaces all ANSI resets with reset+background to maintain bg color
func InjectBackground(s string, bgCode string) string {
	if bgCode == "" {
		return s
	}
	return bgCode + strings.ReplaceAll(s, ansiReset, ansiReset+bgCode) + ansiReset
}

// runeVisualWidth returns the visual width of a rune, handling tabs specially
func runeVisualWidth(r rune) int {
	if r == '\t' {
		return 4 // treat tab as 4 spaces for consistency
	}
	return runewidth.RuneWidth(r)
}

// VisibleWidth returns visual column width, ignoring ANSI sequences
func VisibleWidth(s string) int {
	width := 0
	i := 0
	for i < len(s) {
		if isANSIStart(s, i) {
			i = skipANSI(s, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		width += runeVisualWidth(r)
		i += size
	}
	return width
}

func isANSIStart(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	return s[i] == 0x1b && s[i+1] == '['
}

func skipANSI(s string, i int) int {
	if !isANSIStart(s, i) {
		return i + 1
	}
	j := i + 2
	for j < len(s) {
		b := s[j]
		if b >= 0x40 && b <= 0x7E {
			return j + 1
		}
		j++
	}
	return j
}

// expandTabs renders tabs as spaces so the terminal and VisibleWidth agree
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// truncateANSIAware cuts s to at most maxWidth visible columns, keeping every
// escape sequence it passes and closing any that are still open.
func truncateANSIAware(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	var result strings.Builder
	open := false
	width := 0
	i := 0

	for i < len(s) {
		if isANSIStart(s, i) {
			start := i
			i = skipANSI(s, i)
			ansi := s[start:i]
			result.WriteString(ansi)
			open = ansi != ansiReset
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runeVisualWidth(r)
		if width+rw > maxWidth {
			break
		}
		result.WriteString(s[i : i+size])
		width += rw
		i += size
	}

	if open {
		result.WriteString(ansiReset)
	}
	return result.String()
}

// fitWidth truncates or pads s with spaces to exactly width visible columns
func fitWidth(s string, width int) string {
	s = truncateANSIAware(s, width)
	if pad := width - VisibleWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
