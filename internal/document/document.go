// Package document holds the read-only source files opened for diagnostic
// jumps and the registry that finds, loads and activates them.
package document

import (
	"bytes"
	"strings"
)

// Document is a read-only text file with a cursor. CursorLine, CursorColumn
// and Top are 0-based; Top is the first line shown by the editor pane.
type Document struct {
	Path  string
	Lines []string

	CursorLine   int
	CursorColumn int
	Top          int
}

// New creates a document from file contents. CRLF line endings are
// normalised and a trailing newline does not produce an empty last line.
func New(path string, content []byte) *Document {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	lines := []string{""}
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	return &Document{Path: path, Lines: lines}
}

// LineCount returns the number of lines; an empty file has one empty line.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns line i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.Lines) {
		return ""
	}
	return d.Lines[i]
}

// SetCursor moves the cursor, clamping it to the document's extent.
func (d *Document) SetCursor(line, column int) {
	line = max(0, min(line, len(d.Lines)-1))
	column = max(0, min(column, len([]rune(d.Lines[line]))))
	d.CursorLine = line
	d.CursorColumn = column
}

// isBinary reports whether content looks like a binary file.
func isBinary(content []byte) bool {
	const sniffLen = 8000
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	return bytes.IndexByte(content, 0) >= 0
}
