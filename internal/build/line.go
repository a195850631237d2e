package build

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/buildview/internal/diag"
	"github.com/Iron-Ham/buildview/internal/util"
)

// Kind classifies an output line. The set is closed: every switch over Kind
// handles KindPlain, KindError and KindWarning.
type Kind string

const (
	KindPlain   Kind = "plain"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPlain, KindError, KindWarning:
		return true
	}
	return false
}

// Line is one line of build output. It is never modified after being
// appended to a Log. Line and Column are 1-based; zero means absent.
type Line struct {
	Text     string `json:"text"`
	Kind     Kind   `json:"kind"`
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// Navigable reports whether the line points at a file position.
func (l Line) Navigable() bool {
	return l.Filename != "" && l.Line > 0
}

// NewLine cleans raw process output and classifies it. ANSI styling is
// stripped, carriage-return progress updates collapse to their final state,
// and tabs are expanded so the text has a predictable cell width.
func NewLine(raw string) Line {
	text := cleanText(raw)

	line := Line{Text: text, Kind: kindOf(diag.Classify(text))}
	if loc := diag.Parse(text); loc.Valid {
		line.Filename = loc.Filename
		line.Line = loc.Line
		line.Column = loc.Column
	}
	return line
}

func cleanText(raw string) string {
	text := strings.TrimRight(raw, "\r\n")
	if i := strings.LastIndexByte(text, '\r'); i >= 0 {
		text = text[i+1:]
	}
	text = ansi.Strip(text)
	return util.ExpandTabs(text, 8)
}

func kindOf(sev diag.Severity) Kind {
	switch sev {
	case diag.SeverityError:
		return KindError
	case diag.SeverityWarning:
		return KindWarning
	default:
		return KindPlain
	}
}
