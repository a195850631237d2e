// Package logging provides structured logging for buildview.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation. The TUI owns stdout and stderr while it runs, so logs
// always go to a file in the state directory, or nowhere at all.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("build started", "argv", argv)
//
// # Context Propagation
//
//	buildLogger := logger.WithBuild("20260102-150405").WithComponent("runner")
//	buildLogger.Info("process exited", "exit_code", 2)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"process exited","build_id":"20260102-150405","component":"runner","exit_code":2}
//
// # Testing
//
// Use [NopLogger] to discard all output, or [NewWriterLogger] to capture it.
package logging
