package msg

import (
	"time"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

// SpinnerTickMsg advances the build spinner. Seq identifies the tick chain
// that produced it so ticks from a previous build can be dropped.
type SpinnerTickMsg struct {
	Time time.Time
	Seq  int
}

// BuildStartedMsg signals that a build process is running and its log is attached.
type BuildStartedMsg struct {
	Log *build.Log
}

// BuildOutputMsg signals that new lines were appended to a build log.
// The lines themselves are read from the log; the message only carries the ID.
type BuildOutputMsg struct {
	BuildID string
}

// BuildDoneMsg signals that a build process exited.
type BuildDoneMsg struct {
	BuildID  string
	ExitCode int
	Err      error
}

// BuildSavedMsg reports the result of persisting a finished build.
type BuildSavedMsg struct {
	BuildID string
	Err     error
}

// ConfigChangedMsg is sent when the config file changes on disk.
type ConfigChangedMsg struct{}

// ThemeLoadedMsg carries a resolved palette after a theme (re)load.
type ThemeLoadedMsg struct {
	Palette *styles.ColorPalette
	Err     error
}

// ClipboardMsg reports the result of copying a line to the clipboard.
type ClipboardMsg struct {
	Text string
	Err  error
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg clears the status line if it still shows message Seq.
type ClearStatusMsg struct {
	Seq int
}
