package tui

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/logging"
	"github.com/Iron-Ham/buildview/internal/tui/msg"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	runner  BuildRunner
	logger  *logging.Logger

	// watchConfig enables config hot reload; off in tests.
	watchConfig bool
}

// New creates a new TUI application
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:       NewModel(opts),
		runner:      opts.Runner,
		logger:      logger,
		watchConfig: viper.ConfigFileUsed() != "",
	}
}

// Run starts the TUI application and blocks until it exits. A running
// build is stopped and waited for before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	notifier := &outputNotifier{}
	a.model.ctx = ctx
	a.model.ackOutput = notifier.Ack

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	notifier.send = a.program.Send

	// Runner callbacks fire on pump goroutines; hand them to the event loop.
	if r, ok := a.runner.(*build.Runner); ok {
		r.OnOutput = notifier.Notify
		r.OnDone = func(buildID string, exitCode int, err error) {
			a.program.Send(msg.BuildDoneMsg{BuildID: buildID, ExitCode: exitCode, Err: err})
		}
	}

	if a.watchConfig {
		viper.OnConfigChange(func(e fsnotify.Event) {
			if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
				a.logger.Debug("config file changed", "path", e.Name)
				a.program.Send(msg.ConfigChangedMsg{})
			}
		})
		viper.WatchConfig()
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case <-sigChan:
			a.program.Send(tea.Quit())
		case <-ctx.Done():
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)
	cancel()
	if a.runner != nil {
		a.runner.Wait()
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// outputNotifier coalesces per-line output callbacks into at most one
// pending BuildOutputMsg. The model reads the whole log when it handles the
// message, so one notification covers every line appended before Ack.
type outputNotifier struct {
	pending atomic.Bool
	send    func(tea.Msg)
}

// Notify sends a BuildOutputMsg unless one is already pending.
func (n *outputNotifier) Notify(buildID string) {
	if n.pending.CompareAndSwap(false, true) {
		n.send(msg.BuildOutputMsg{BuildID: buildID})
	}
}

// Ack marks the pending message as handled.
func (n *outputNotifier) Ack() {
	n.pending.Store(false)
}
