package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/config"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/tui/msg"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 5 * time.Second

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{msg.LoadTheme(m.cfg.TUI.Theme, m.cfg.TUI.ThemeFile)}
	if m.startBuild {
		cmds = append(cmds, func() tea.Msg { return startBuildMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.output.RecalcGeometry(m.height, m.width)
		m.editor.SetSize(m.width, m.editorHeight())
		return m, nil

	case startBuildMsg:
		return m, m.runBuild()

	case msg.BuildOutputMsg:
		if !m.isCurrent(message.BuildID) {
			return m, nil
		}
		m.followOutput()
		return m, nil

	case msg.BuildDoneMsg:
		if !m.isCurrent(message.BuildID) {
			return m, nil
		}
		return m, m.finishBuild(message)

	case msg.SpinnerTickMsg:
		if message.Seq != m.spinnerSeq || !m.buildRunning() {
			return m, nil
		}
		m.output.AdvanceSpinner()
		return m, msg.SpinnerTick(m.output.Spinner().Interval(), m.spinnerSeq)

	case msg.BuildSavedMsg:
		if message.Err != nil {
			m.logger.Warn("build not saved to history", "build_id", message.BuildID, "error", message.Err)
			return m, m.setStatus("History not saved: "+errors.UserMessage(message.Err), errors.SeverityWarning)
		}
		m.logger.Debug("build saved to history", "build_id", message.BuildID)
		return m, nil

	case msg.ConfigChangedMsg:
		cfg, err := config.Load()
		if err != nil {
			m.logger.Warn("config reload rejected", "error", err)
			return m, m.setStatus("Config not reloaded: "+err.Error(), errors.SeverityWarning)
		}
		m.cfg = cfg
		return m, msg.LoadTheme(cfg.TUI.Theme, cfg.TUI.ThemeFile)

	case msg.ThemeLoadedMsg:
		if message.Err != nil {
			m.logger.Warn("theme not loaded", "error", message.Err)
			return m, m.setStatus("Theme not loaded: "+message.Err.Error(), errors.SeverityWarning)
		}
		styles.SetActivePalette(message.Palette)
		return m, nil

	case msg.ClipboardMsg:
		if message.Err != nil {
			return m, m.setStatus("Copy failed: "+message.Err.Error(), errors.SeverityWarning)
		}
		return m, m.setStatus("Copied line to clipboard", errors.SeverityInfo)

	case msg.ErrMsg:
		return m, m.setError(message.Err)

	case msg.ClearStatusMsg:
		if message.Seq == m.statusSeq {
			m.statusText = ""
		}
		return m, nil
	}

	return m, nil
}

// isCurrent reports whether id names the attached build. Messages from a
// build that was replaced by a rerun are dropped.
func (m Model) isCurrent(id string) bool {
	return m.log != nil && m.log.ID() == id
}

// followOutput applies the tail-follow policy after new lines arrived: the
// selection stays on the last line if it was on the last line before (or
// the log was empty). A selection the user moved up is left alone.
func (m *Model) followOutput() {
	if m.ackOutput != nil {
		// Re-arm before reading Len so lines appended from here on notify again.
		m.ackOutput()
	}

	n := m.log.Len()
	if m.cfg.Viewer.FollowOutput && m.output.Visible() {
		sel := m.output.Selection()
		if m.seenLen == 0 || sel.Selected >= m.seenLen-1 {
			m.output.ScrollToEnd()
		}
	}
	m.seenLen = n
}

// runBuild starts a new build and attaches its log.
func (m *Model) runBuild() tea.Cmd {
	if m.runner == nil {
		return m.setStatus("No build command configured", errors.SeverityWarning)
	}
	if m.runner.Running() {
		return m.setError(errors.NewBuildError("cannot rerun", errors.ErrBuildRunning))
	}

	ctx, cancel := context.WithCancel(m.ctx)
	id := build.NewID(time.Now())
	log, err := m.runner.Start(ctx, id)
	if err != nil {
		cancel()
		m.logger.Error("build failed to start", "error", err)
		return m.setError(err)
	}

	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = cancel
	m.attach(log)
	m.seenLen = 0
	if m.cfg.Viewer.ShowOnStart {
		m.output.Show()
	}

	m.spinnerSeq++
	m.logger.Info("build started", "build_id", id)
	return tea.Batch(
		msg.SpinnerTick(m.output.Spinner().Interval(), m.spinnerSeq),
		m.setStatus("Build started", errors.SeverityInfo),
	)
}

// finishBuild reports the exit status and saves the build.
func (m *Model) finishBuild(done msg.BuildDoneMsg) tea.Cmd {
	m.followOutput()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	var status tea.Cmd
	switch {
	case errors.Is(done.Err, context.Canceled):
		status = m.setStatus("Build stopped", errors.SeverityWarning)
	case done.Err != nil:
		status = m.setError(done.Err)
	case done.ExitCode != 0:
		status = m.setStatus(fmt.Sprintf("Build failed (exit %d)", done.ExitCode), errors.SeverityError)
	default:
		status = m.setStatus("Build finished", errors.SeverityInfo)
	}

	return tea.Batch(status, msg.SaveBuild(m.store, m.log))
}

// cancelBuild stops the running build, if any.
func (m *Model) cancelBuild() {
	if m.cancel != nil {
		m.cancel()
	}
}

// setStatus shows text in the status line and schedules it to clear.
func (m *Model) setStatus(text string, sev errors.Severity) tea.Cmd {
	m.statusSeq++
	m.statusText = text
	m.statusSeverity = sev
	return msg.ClearStatusAfter(statusTimeout, m.statusSeq)
}

// setError shows err in the status line.
func (m *Model) setError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return m.setStatus(errors.UserMessage(err), errors.GetSeverity(err))
}
