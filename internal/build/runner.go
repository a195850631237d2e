package build

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/logging"
)

// maxLineBytes bounds a single output line. Longer lines are split.
const maxLineBytes = 1 << 20

// Runner runs one build command and streams its output into a Log.
//
// OnOutput is called from a pump goroutine after each line is appended and
// OnDone once the process has exited and the Log is complete. Callers that
// own a UI loop hand these off to it (bubbletea's Program.Send).
type Runner struct {
	Command []string
	Dir     string
	Env     []string

	OnOutput func(buildID string)
	OnDone   func(buildID string, exitCode int, err error)

	logger *logging.Logger

	mu   sync.Mutex
	done chan struct{}
}

// NewRunner creates a runner for argv in dir. A nil logger discards output.
func NewRunner(command []string, dir string, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Runner{
		Command: command,
		Dir:     dir,
		logger:  logger.WithComponent("runner"),
	}
}

// Start launches the build and returns its Log immediately. The process is
// killed when ctx is cancelled. Start returns an error if a previous build
// from this runner is still running or the process cannot be started.
func (r *Runner) Start(ctx context.Context, id string) (*Log, error) {
	if len(r.Command) == 0 || strings.TrimSpace(r.Command[0]) == "" {
		return nil, errors.NewBuildError("no build command", errors.ErrEmptyCommand)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		select {
		case <-r.done:
		default:
			return nil, errors.NewBuildError("cannot start", errors.ErrBuildRunning).WithCommand(r.Command)
		}
	}

	log := NewLog(id, r.Command, r.Dir)
	logger := r.logger.WithBuild(id)

	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.NewBuildError("failed to open stdout", fmt.Errorf("%w: %w", errors.ErrBuildStart, err)).WithCommand(r.Command)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.NewBuildError("failed to open stderr", fmt.Errorf("%w: %w", errors.ErrBuildStart, err)).WithCommand(r.Command)
	}

	if err := cmd.Start(); err != nil {
		logger.Error("build failed to start", "argv", r.Command, "error", err)
		return nil, errors.NewBuildError("failed to start", fmt.Errorf("%w: %w", errors.ErrBuildStart, err)).WithCommand(r.Command)
	}

	log.Start()
	logger.Info("build started", "argv", r.Command, "dir", r.Dir, "pid", cmd.Process.Pid)

	done := make(chan struct{})
	r.done = done

	go func() {
		defer close(done)

		var wg conc.WaitGroup
		wg.Go(func() { r.pump(stdout, log) })
		wg.Go(func() { r.pump(stderr, log) })
		// Pipes must be drained before Wait closes them.
		wg.Wait()

		waitErr := cmd.Wait()
		code := exitCode(cmd, waitErr)
		log.Finish(code)

		var runErr error
		if waitErr != nil && ctx.Err() != nil {
			runErr = ctx.Err()
		}
		logger.Info("build finished",
			"exit_code", code,
			"lines", log.Len(),
			"errors", log.ErrorCount(),
			"warnings", log.WarningCount(),
		)

		if r.OnDone != nil {
			r.OnDone(id, code, runErr)
		}
	}()

	return log, nil
}

// Wait blocks until the current build, if any, has finished.
func (r *Runner) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether a build from this runner is in progress.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

func (r *Runner) pump(rd io.Reader, log *Log) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		log.Append(NewLine(scanner.Text()))
		if r.OnOutput != nil {
			r.OnOutput(log.ID())
		}
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("output pipe read failed", "build_id", log.ID(), "error", err)
	}
}

func exitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}
	if cmd.ProcessState != nil && cmd.ProcessState.ExitCode() >= 0 {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}
