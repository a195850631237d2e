package tui

import (
	"context"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/config"
	"github.com/Iron-Ham/buildview/internal/diag"
	"github.com/Iron-Ham/buildview/internal/document"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/logging"
	"github.com/Iron-Ham/buildview/internal/tui/buildview"
	"github.com/Iron-Ham/buildview/internal/tui/keymap"
	"github.com/Iron-Ham/buildview/internal/tui/msg"
	"github.com/Iron-Ham/buildview/internal/tui/view"
)

// BuildRunner starts builds. *build.Runner satisfies it.
type BuildRunner interface {
	Start(ctx context.Context, id string) (*build.Log, error)
	Running() bool
	Wait()
}

// Options configures a Model.
type Options struct {
	// Config is the effective configuration; nil uses config.Default().
	Config *config.Config

	// Runner starts builds. Nil makes the session read-only: no rerun.
	Runner BuildRunner

	// Store persists finished builds. Nil disables history.
	Store msg.RecordSaver

	// Log is a finished build to show at startup, e.g. from history.
	Log *build.Log

	// StartBuild runs the build as soon as the program starts.
	StartBuild bool

	// FS is where diagnostic targets are read from; nil uses the OS filesystem.
	FS afero.Fs

	// Logger receives debug logs; nil discards them.
	Logger *logging.Logger
}

// Model holds the TUI application state
type Model struct {
	// Core components
	cfg     *config.Config
	keymap  *keymap.Keymap
	logger  *logging.Logger
	runner  BuildRunner
	store   msg.RecordSaver
	docs    *document.Registry
	editor  *view.EditorView
	output  *buildview.BuildView
	locator *buildview.Locator
	helpBar *view.HelpBarView

	// Build state
	ctx        context.Context
	cancel     context.CancelFunc
	log        *build.Log
	seenLen    int  // log length when output was last handled, for tail-follow
	diagIndex  int  // last line jumped to with ]/[; -1 before the first jump
	spinnerSeq int  // identifies the live spinner tick chain
	startBuild bool // run the build from Init

	// ackOutput re-arms output notification; see outputNotifier.
	ackOutput func()

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool
	showHelp bool

	// Status line
	statusText     string
	statusSeverity errors.Severity
	statusSeq      int
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	docs := document.NewRegistry(fs, cfg.Editor.MaxFileBytes)
	editor := view.NewEditorView(docs)
	locator := &buildview.Locator{
		Parser:   diag.Parser{},
		Registry: docs,
		Editor:   editor,
		BaseDir:  cfg.Build.Dir,
		Logger:   logger.WithComponent("locator"),
	}

	m := Model{
		cfg:        cfg,
		keymap:     keymap.DefaultKeymap(),
		logger:     logger.WithComponent("tui"),
		runner:     opts.Runner,
		store:      opts.Store,
		docs:       docs,
		editor:     editor,
		output:     buildview.New(locator, buildview.NewSpinner(cfg.Viewer.SpinnerInterval())),
		locator:    locator,
		helpBar:    view.NewHelpBarView(),
		ctx:        context.Background(),
		diagIndex:  -1,
		startBuild: opts.StartBuild && opts.Runner != nil,
		showHelp:   true,
	}

	if opts.Log != nil {
		m.attach(opts.Log)
		if cfg.Viewer.ShowOnStart {
			m.output.Show()
		}
	}
	return m
}

// attach makes log the current build and points the viewport and the
// locator at it.
func (m *Model) attach(log *build.Log) {
	m.log = log
	m.seenLen = log.Len()
	m.diagIndex = -1
	m.output.Attach(log)
	if log.Dir() != "" {
		m.locator.BaseDir = log.Dir()
	}
}

// mode returns the keymap mode for the current focus.
func (m Model) mode() keymap.Mode {
	if m.output.Visible() {
		return keymap.ModeBuildOutput
	}
	return keymap.ModeEditor
}

// buildRunning reports whether the current build is still producing output.
func (m Model) buildRunning() bool {
	return m.log != nil && m.log.Running()
}

// outputLog returns the current log as the viewport's read interface,
// keeping a nil *build.Log from becoming a non-nil interface.
func (m Model) outputLog() buildview.OutputLog {
	if m.log == nil {
		return nil
	}
	return m.log
}
