package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/buildview/internal/tui/buildview"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
	"github.com/Iron-Ham/buildview/internal/util"
)

// modalPadding is the blank columns between the border and the content on each side.
const modalPadding = 2

// RenderModal paints a build output frame. The result has one string per
// frame row, each exactly Geometry.Width() cells wide:
//
//	╭──────────╮
//	│  title   │
//	├──────────┤
//	│  rows... │
//	├──────────┤
//	│  footer  │
//	╰──────────╯
func RenderModal(f buildview.Frame, s *styles.ThemedStyles) []string {
	b := lipgloss.RoundedBorder()
	inner := f.Geometry.Width() - 2
	contentCols := inner - 2*modalPadding

	edge := s.Separator
	pad := s.RowBlank.Render(strings.Repeat(" ", modalPadding))
	framed := func(content string) string {
		return edge.Render(b.Left) + pad + content + pad + edge.Render(b.Right)
	}
	rule := func(left, right string) string {
		return edge.Render(left + strings.Repeat(b.Top, inner) + right)
	}

	lines := make([]string, 0, len(f.Rows)+6)
	lines = append(lines, rule(b.TopLeft, b.TopRight))
	lines = append(lines, framed(s.ModalTitle.Render(util.FitWidth(f.Title, contentCols))))
	lines = append(lines, rule(b.MiddleLeft, b.MiddleRight))
	for _, row := range f.Rows {
		lines = append(lines, framed(rowStyle(s, row.Style).Render(row.Text)))
	}
	lines = append(lines, rule(b.MiddleLeft, b.MiddleRight))
	lines = append(lines, framed(s.Footer.Render(util.FitWidth(f.Footer, contentCols))))
	lines = append(lines, rule(b.BottomLeft, b.BottomRight))
	return lines
}

func rowStyle(s *styles.ThemedStyles, style buildview.RowStyle) lipgloss.Style {
	switch style {
	case buildview.RowSelected:
		return s.RowSelected
	case buildview.RowNormal, buildview.RowError, buildview.RowWarning:
		// Diagnostics are marked by their gutter glyph, not by colour.
		return s.RowNormal
	default:
		return s.RowBlank
	}
}
