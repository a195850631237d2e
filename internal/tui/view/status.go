package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/tui/buildview"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
	"github.com/Iron-Ham/buildview/internal/util"
)

// StatusBarState holds the state needed to render the status bar.
type StatusBarState struct {
	// Message is a transient notice, e.g. a failed jump. Empty shows nothing.
	Message string

	// Severity picks the message colour.
	Severity errors.Severity

	// Log is the current build, if any; its summary is shown on the right.
	Log buildview.OutputLog

	// Spinner is shown while the build runs.
	Spinner *buildview.Spinner

	// Width is the available width.
	Width int
}

// RenderStatusBar renders the message on the left and the build summary on
// the right in exactly Width cells. The message is truncated first.
func RenderStatusBar(state StatusBarState, s *styles.ThemedStyles) string {
	summary, summaryStyle := buildSummary(state, s)
	if w := lipgloss.Width(summary); w >= state.Width {
		return summaryStyle.Render(util.FitWidth(summary, state.Width))
	}

	msgWidth := state.Width - lipgloss.Width(summary)
	msg := util.FitWidth(" "+state.Message, msgWidth)
	return messageStyle(state.Severity, s).Render(msg) + summaryStyle.Render(summary)
}

func buildSummary(state StatusBarState, s *styles.ThemedStyles) (string, lipgloss.Style) {
	log := state.Log
	switch {
	case log == nil:
		return "no build ", s.StatusInfo
	case log.Running():
		glyph := ""
		if state.Spinner != nil {
			glyph = state.Spinner.Glyph() + " "
		}
		return fmt.Sprintf("%sbuilding (%d lines) ", glyph, log.Len()), s.StatusInfo
	case log.Complete() && log.ErrorCount() > 0:
		return fmt.Sprintf("%d err, %d warn ", log.ErrorCount(), log.WarningCount()), s.StatusError
	case log.Complete() && log.WarningCount() > 0:
		return fmt.Sprintf("%d warn ", log.WarningCount()), s.StatusWarning
	case log.Complete() && exitCode(log) != 0:
		return fmt.Sprintf("exit %d ", exitCode(log)), s.StatusError
	case log.Complete():
		return "build ok ", s.StatusSuccess
	default:
		return "idle ", s.StatusInfo
	}
}

func messageStyle(sev errors.Severity, s *styles.ThemedStyles) lipgloss.Style {
	switch sev {
	case errors.SeverityError:
		return s.StatusError
	case errors.SeverityWarning:
		return s.StatusWarning
	default:
		return s.StatusInfo
	}
}

// exitCode returns the log's exit status when the log records one.
func exitCode(log buildview.OutputLog) int {
	if ec, ok := log.(interface{ ExitCode() int }); ok {
		return ec.ExitCode()
	}
	return 0
}
