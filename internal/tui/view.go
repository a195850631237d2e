package tui

import (
	"strings"

	"github.com/Iron-Ham/buildview/internal/tui/styles"
	"github.com/Iron-Ham/buildview/internal/tui/view"
)

// editorHeight is the screen height left for the editor pane after the
// status bar and, when shown, the help bar.
func (m Model) editorHeight() int {
	h := m.height - 1
	if m.showHelp {
		h--
	}
	return max(h, 2)
}

// View renders the editor pane, the status and help bars, and the build
// output modal on top when it is visible.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	s := styles.GetActiveTheme()
	parts := []string{
		m.editor.Render(s),
		view.RenderStatusBar(view.StatusBarState{
			Message:  m.statusText,
			Severity: m.statusSeverity,
			Log:      m.outputLog(),
			Spinner:  m.output.Spinner(),
			Width:    m.width,
		}, s),
	}
	if m.showHelp {
		parts = append(parts, m.helpBar.Render(m.keymap.HelpBindings(m.mode()), m.width, s))
	}
	screen := strings.Join(parts, "\n")

	if m.output.Visible() {
		frame := m.output.Redraw()
		screen = view.Overlay(screen, view.RenderModal(frame, s), frame.Geometry.FrameTop, frame.Geometry.FrameLeft)
	}
	return screen
}
