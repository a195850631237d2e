package buildview

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/util"
)

// RowStyle tells the painter which colours a row uses.
type RowStyle int

const (
	RowBlank RowStyle = iota
	RowNormal
	RowSelected
	RowError
	RowWarning
)

// Row is one content row of the modal. Text is unstyled and exactly
// ContentCols cells wide.
type Row struct {
	Text  string
	Style RowStyle
}

// markerCols is the width of the selection/kind marker at the start of a
// row; one more column is kept as trailing padding.
const markerCols = 3

// Markers, padded to markerCols when rendered.
const (
	markerSelected = " ▸"
	markerError    = " !"
	markerWarning  = " ?"
	markerPlain    = ""
)

// Titles shown while no build is attached or running.
const (
	titleIdle     = "Build Output"
	titleRunning  = "Building... "
	titleComplete = "Build Complete (no errors)"
)

// RenderRows renders the ContentRows visible rows starting at sel.First.
// Rows past the end of the log are blank.
func RenderRows(log OutputLog, sel Selection, g Geometry) []Row {
	rows := make([]Row, g.ContentRows)
	n := 0
	if log != nil {
		n = log.Len()
	}

	for r := range rows {
		idx := sel.First + r
		if idx < 0 || idx >= n {
			rows[r] = blankRow(g.ContentCols)
			continue
		}
		line, ok := log.At(idx)
		if !ok {
			rows[r] = blankRow(g.ContentCols)
			continue
		}
		rows[r] = renderLine(line, idx == sel.Selected, g.ContentCols)
	}
	return rows
}

func blankRow(width int) Row {
	return Row{Text: strings.Repeat(" ", max(width, 0)), Style: RowBlank}
}

// renderLine lays out marker, text and one trailing space in exactly width
// cells. Text longer than the text area is cut to three cells less and
// ends in "...".
func renderLine(line build.Line, selected bool, width int) Row {
	textArea := width - markerCols - 1

	var marker string
	var style RowStyle
	switch line.Kind {
	case build.KindError:
		marker, style = markerError, RowError
	case build.KindWarning:
		marker, style = markerWarning, RowWarning
	case build.KindPlain:
		marker, style = markerPlain, RowNormal
	default:
		marker, style = markerPlain, RowNormal
	}
	if selected {
		marker, style = markerSelected, RowSelected
	}

	text := util.FitWidth(marker, markerCols) + util.FitWidth(line.Text, textArea) + " "
	return Row{Text: text, Style: style}
}

// Title describes the build state: running with the spinner glyph, a
// summary once complete, or a static label otherwise.
func Title(log OutputLog, sp *Spinner) string {
	if log == nil {
		return titleIdle
	}

	switch {
	case log.Running():
		glyph := ""
		if sp != nil {
			glyph = sp.Glyph()
		}
		return titleRunning + glyph
	case log.Complete():
		errs, warns := log.ErrorCount(), log.WarningCount()
		if errs == 0 && warns == 0 {
			return titleComplete
		}
		return fmt.Sprintf("Build: %s, %s", plural(errs, "error"), plural(warns, "warning"))
	default:
		return titleIdle
	}
}

// Footer lists the modal's key bindings.
func Footer() string {
	return "↑↓ PgUp/PgDn move  n/N diag  Enter open  Esc close"
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
