package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay splices the fg lines over base so the first fg line lands on row
// top at column left. Styling in base outside the covered cells is kept.
// Rows and columns missing from base are padded with spaces; fg lines that
// fall below base are dropped.
func Overlay(base string, fg []string, top, left int) string {
	top = max(top, 0)
	left = max(left, 0)

	lines := strings.Split(base, "\n")
	for i, line := range fg {
		row := top + i
		if row >= len(lines) {
			break
		}

		bg := lines[row]
		bgWidth := ansi.StringWidth(bg)
		fgWidth := ansi.StringWidth(line)

		prefix := ansi.Cut(bg, 0, left)
		if w := ansi.StringWidth(prefix); w < left {
			prefix += strings.Repeat(" ", left-w)
		}
		suffix := ""
		if end := left + fgWidth; end < bgWidth {
			suffix = ansi.Cut(bg, end, bgWidth)
		}
		lines[row] = prefix + line + suffix
	}
	return strings.Join(lines, "\n")
}
