// Package msg provides command factory functions that create tea.Cmd values.
//
// These functions are pure factories that create commands returning message types
// defined in this package.

package msg

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

// writeClipboard is swapped out in tests; the system clipboard is not
// available on headless machines.
var writeClipboard = clipboard.WriteAll

// SpinnerTick returns a command that sends a SpinnerTickMsg after interval.
func SpinnerTick(interval time.Duration, seq int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg{Time: t, Seq: seq}
	})
}

// ClearStatusAfter returns a command that sends a ClearStatusMsg after d.
func ClearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// CopyToClipboard returns a command that writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Text: text, Err: writeClipboard(text)}
	}
}

// RecordSaver persists a finished build.
type RecordSaver interface {
	Save(ctx context.Context, r build.Record) error
}

// SaveBuild returns a command that persists a finished build log.
// A nil saver or log produces no message.
func SaveBuild(saver RecordSaver, log *build.Log) tea.Cmd {
	if saver == nil || log == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return BuildSavedMsg{BuildID: log.ID(), Err: saver.Save(ctx, log.Record())}
	}
}

// LoadTheme returns a command that resolves the configured theme off the event loop.
func LoadTheme(theme, themeFile string) tea.Cmd {
	return func() tea.Msg {
		p, err := styles.ResolvePalette(theme, themeFile)
		return ThemeLoadedMsg{Palette: p, Err: err}
	}
}
