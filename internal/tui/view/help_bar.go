package view

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/Iron-Ham/buildview/internal/tui/styles"
	"github.com/Iron-Ham/buildview/internal/util"
)

// HelpBarView renders the one-line key help at the bottom of the screen.
type HelpBarView struct {
	help help.Model
}

// NewHelpBarView creates a new HelpBarView instance.
func NewHelpBarView() *HelpBarView {
	return &HelpBarView{help: help.New()}
}

// Render lays out bindings on one line no wider than width, ending in an
// ellipsis when they do not all fit.
func (v *HelpBarView) Render(bindings []key.Binding, width int, s *styles.ThemedStyles) string {
	v.help.Width = width
	v.help.Styles.ShortKey = s.HelpKey
	v.help.Styles.ShortDesc = s.HelpDesc
	v.help.Styles.ShortSeparator = s.HelpDesc
	v.help.Styles.Ellipsis = s.HelpDesc
	// help drops whole bindings to fit; a first binding wider than the
	// terminal still needs cutting or the bar wraps.
	return util.TruncateANSI(v.help.ShortHelpView(bindings), width)
}
