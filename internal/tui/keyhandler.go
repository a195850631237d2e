package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/tui/buildview"
	"github.com/Iron-Ham/buildview/internal/tui/keymap"
	"github.com/Iron-Ham/buildview/internal/tui/msg"
)

// -----------------------------------------------------------------------------
// Main Keypress Handler
// -----------------------------------------------------------------------------

// handleKeypress looks the key up in the keymap for the current mode and
// routes the command to the modal or the editor.
func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()
	command, ok := m.keymap.GetBinding(key, mode)
	if !ok {
		return m, nil
	}

	if command == keymap.CmdQuit {
		m.quitting = true
		m.cancelBuild()
		return m, tea.Quit
	}

	if mode == keymap.ModeBuildOutput {
		return m, m.handleOutputCommand(command)
	}
	return m, m.handleEditorCommand(command)
}

// -----------------------------------------------------------------------------
// Build Output Modal
// -----------------------------------------------------------------------------

// outputActions maps modal commands to viewport actions.
var outputActions = map[keymap.Command]buildview.Action{
	keymap.CmdUp:        buildview.ActionUp,
	keymap.CmdDown:      buildview.ActionDown,
	keymap.CmdPageUp:    buildview.ActionPageUp,
	keymap.CmdPageDown:  buildview.ActionPageDown,
	keymap.CmdTop:       buildview.ActionTop,
	keymap.CmdBottom:    buildview.ActionBottom,
	keymap.CmdNextError: buildview.ActionNextError,
	keymap.CmdPrevError: buildview.ActionPrevError,
	keymap.CmdOpen:      buildview.ActionEnter,
	keymap.CmdClose:     buildview.ActionEscape,
	keymap.CmdCopy:      buildview.ActionCopy,
}

func (m *Model) handleOutputCommand(command keymap.Command) tea.Cmd {
	action, ok := outputActions[command]
	if !ok {
		return nil
	}

	outcome := m.output.RouteKeyAction(action)
	switch {
	case outcome.Err != nil:
		m.logger.Debug("modal action failed", "action", action.String(), "error", outcome.Err)
		return m.setError(outcome.Err)
	case outcome.Jump != nil:
		m.diagIndex = -1
		return m.setStatus("Jumped to "+outcome.Jump.String(), errors.SeverityInfo)
	case outcome.Copy != "":
		return msg.CopyToClipboard(outcome.Copy)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Editor
// -----------------------------------------------------------------------------

func (m *Model) handleEditorCommand(command keymap.Command) tea.Cmd {
	switch command {
	case keymap.CmdShowOutput:
		m.output.Show()
	case keymap.CmdNextError:
		return m.jumpDiagnostic(1)
	case keymap.CmdPrevError:
		return m.jumpDiagnostic(-1)
	case keymap.CmdRerun:
		return m.runBuild()
	case keymap.CmdCancelBuild:
		if !m.buildRunning() {
			return m.setStatus("No build running", errors.SeverityInfo)
		}
		m.cancelBuild()
		return m.setStatus("Stopping build...", errors.SeverityInfo)
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		m.editor.SetSize(m.width, m.editorHeight())
	case keymap.CmdUp:
		m.editor.MoveBy(-1)
	case keymap.CmdDown:
		m.editor.MoveBy(1)
	case keymap.CmdPageUp:
		m.editor.PageUp()
	case keymap.CmdPageDown:
		m.editor.PageDown()
	case keymap.CmdTop:
		m.editor.Top()
	case keymap.CmdBottom:
		m.editor.Bottom()
	}
	return nil
}

// jumpDiagnostic opens the next (dir > 0) or previous diagnostic after the
// last one jumped to, without opening the modal.
func (m *Model) jumpDiagnostic(dir int) tea.Cmd {
	if m.log == nil || m.log.Len() == 0 {
		return m.setStatus("No build output", errors.SeverityInfo)
	}

	n := m.log.Len()
	start := m.diagIndex + dir
	if m.diagIndex < 0 && dir < 0 {
		start = n - 1
	}

	total := m.log.ErrorCount() + m.log.WarningCount()
	for i := start; i >= 0 && i < n; i += dir {
		line, ok := m.log.At(i)
		if !ok || !line.Navigable() {
			continue
		}

		jump, err := m.locator.Locate(line.Text)
		m.diagIndex = i
		if err != nil {
			return m.setError(err)
		}
		return m.setStatus(fmt.Sprintf("Jumped to %s (%d diagnostics)", jump, total), errors.SeverityInfo)
	}
	return m.setStatus("No more diagnostics", errors.SeverityInfo)
}
