// Package util provides shared utility functions used across the codebase.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to text cut short by the truncation helpers.
const Ellipsis = "..."

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// This function properly handles ANSI escape codes and wide characters, making it
// suitable for terminal output with styling.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return Ellipsis
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// FitWidth returns plain (unstyled) text occupying exactly width terminal cells.
// Text wider than width is cut and ends in "..."; shorter text is right-padded
// with spaces. Wide runes that would straddle the boundary are dropped and the
// gap padded, so the result width is exact.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= len(Ellipsis) && runewidth.StringWidth(s) > width {
		return strings.Repeat(".", width)
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, Ellipsis), width)
}

// ExpandTabs replaces tab characters with spaces up to the next multiple of
// tabWidth cells. Tabs report zero width to the width helpers, so output that
// is padded to an exact width must have them expanded first.
func ExpandTabs(s string, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	if tabWidth <= 0 {
		tabWidth = 8
	}

	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
