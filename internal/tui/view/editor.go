package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/buildview/internal/document"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
	"github.com/Iron-Ham/buildview/internal/util"
)

// tabWidth is the tab stop used when drawing document text.
const tabWidth = 8

// minGutterDigits keeps the line number gutter from jumping width on short files.
const minGutterDigits = 3

// DocumentSource provides the document shown in the editor pane.
// *document.Registry satisfies it.
type DocumentSource interface {
	Active() *document.Document
}

// EditorView is the document pane. It is read-only: the cursor moves, the
// text does not change.
type EditorView struct {
	docs   DocumentSource
	width  int
	height int
}

// NewEditorView creates an editor pane over the documents in docs.
func NewEditorView(docs DocumentSource) *EditorView {
	return &EditorView{docs: docs, width: 80, height: 24}
}

// SetSize sets the pane size in cells, header row included.
func (v *EditorView) SetSize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 2)
	v.Refresh()
}

// Size returns the pane size set by SetSize.
func (v *EditorView) Size() (width, height int) {
	return v.width, v.height
}

// Document returns the active document, or nil.
func (v *EditorView) Document() *document.Document {
	if v.docs == nil {
		return nil
	}
	return v.docs.Active()
}

// textRows is the number of document lines shown below the header.
func (v *EditorView) textRows() int {
	return max(v.height-1, 1)
}

// MoveCursorTo places the cursor at a 0-based line and column of the
// active document, clamped to its extent. Call Refresh to scroll it into view.
func (v *EditorView) MoveCursorTo(line, column int) {
	doc := v.Document()
	if doc == nil {
		return
	}
	doc.SetCursor(line, column)
}

// Refresh scrolls the active document so the cursor is visible. A cursor
// that left the viewport is centred rather than pinned to an edge.
func (v *EditorView) Refresh() {
	doc := v.Document()
	if doc == nil {
		return
	}

	rows := v.textRows()
	if doc.CursorLine >= doc.Top && doc.CursorLine < doc.Top+rows {
		return
	}
	maxTop := max(doc.LineCount()-rows, 0)
	doc.Top = max(0, min(doc.CursorLine-rows/2, maxTop))
}

// MoveBy moves the cursor delta lines, keeping its column where the line allows.
func (v *EditorView) MoveBy(delta int) {
	doc := v.Document()
	if doc == nil {
		return
	}
	line := doc.CursorLine + delta
	doc.SetCursor(line, doc.CursorColumn)
	v.scrollToCursor()
}

// PageDown moves the cursor one screen forward.
func (v *EditorView) PageDown() { v.MoveBy(v.textRows()) }

// PageUp moves the cursor one screen back.
func (v *EditorView) PageUp() { v.MoveBy(-v.textRows()) }

// Top moves the cursor to the first line.
func (v *EditorView) Top() {
	if doc := v.Document(); doc != nil {
		v.MoveBy(-doc.CursorLine)
	}
}

// Bottom moves the cursor to the last line.
func (v *EditorView) Bottom() {
	if doc := v.Document(); doc != nil {
		v.MoveBy(doc.LineCount() - 1 - doc.CursorLine)
	}
}

// scrollToCursor keeps the cursor on screen by moving the viewport the
// minimum distance, the way line-by-line movement expects.
func (v *EditorView) scrollToCursor() {
	doc := v.Document()
	rows := v.textRows()
	switch {
	case doc.CursorLine < doc.Top:
		doc.Top = doc.CursorLine
	case doc.CursorLine >= doc.Top+rows:
		doc.Top = doc.CursorLine - rows + 1
	}
}

// Render draws the pane as exactly height lines of width cells.
func (v *EditorView) Render(s *styles.ThemedStyles) string {
	doc := v.Document()
	lines := make([]string, 0, v.height)

	if doc == nil {
		lines = append(lines, s.EditorHeader.Render(util.FitWidth(" No file open", v.width)))
		hint := []string{
			"",
			"  Press b to show build output.",
			"  Select a diagnostic and press Enter to open its file here.",
		}
		for i := range v.textRows() {
			text := ""
			if i < len(hint) {
				text = hint[i]
			}
			lines = append(lines, s.LineNumber.Render(util.FitWidth(text, v.width)))
		}
		return strings.Join(lines, "\n")
	}

	header := fmt.Sprintf(" %s  Ln %d, Col %d", doc.Path, doc.CursorLine+1, doc.CursorColumn+1)
	lines = append(lines, s.EditorHeader.Render(util.FitWidth(header, v.width)))

	digits := max(len(fmt.Sprint(doc.LineCount())), minGutterDigits)
	gutterWidth := digits + 2
	textWidth := max(v.width-gutterWidth, 0)

	for i := range v.textRows() {
		idx := doc.Top + i
		if idx >= doc.LineCount() {
			lines = append(lines, util.FitWidth("", v.width))
			continue
		}

		gutter := s.LineNumber.Render(fmt.Sprintf(" %*d ", digits, idx+1))
		text := util.FitWidth(util.ExpandTabs(doc.Line(idx), tabWidth), textWidth)
		if idx == doc.CursorLine {
			text = s.CursorLine.Render(text)
		} else {
			text = s.EditorText.Render(text)
		}
		lines = append(lines, gutter+text)
	}
	return strings.Join(lines, "\n")
}
