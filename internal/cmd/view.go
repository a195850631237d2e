package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/config"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [build-id|file]",
	Short: "Open a stored build or a saved log in the viewer",
	Long: `Open a finished build in the viewer.

The argument is either a build ID from 'buildview history' or the path of
a plain-text file holding build output. Without an argument the most
recent stored build is opened.

Stored builds remember their command, so 'r' in the viewer reruns them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}
	log, err := loadLog(cmd.Context(), cfg, ref)
	if err != nil {
		return err
	}

	if err := requireTerminal(); err != nil {
		return err
	}

	logger, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	opts := tui.Options{
		Config: cfg,
		Log:    log,
		Logger: logger,
	}
	if command := log.Command(); len(command) > 0 {
		opts.Runner = build.NewRunner(command, log.Dir(), logger)
		if store := openStore(cfg); store != nil {
			opts.Store = store
		}
	}

	if err := tui.New(opts).Run(cmd.Context()); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// loadLog resolves ref to a finished build: an existing file is read as
// plain build output, anything else is looked up in the history store.
// An empty ref means the latest stored build.
func loadLog(ctx context.Context, cfg *config.Config, ref string) (*build.Log, error) {
	if ref != "" {
		if info, err := os.Stat(ref); err == nil && info.Mode().IsRegular() {
			return readLogFile(ref)
		}
	}

	store := openStore(cfg)
	if store == nil {
		return nil, fmt.Errorf("build history is disabled (store.enabled is false)\nPass the path of a saved log file instead")
	}

	var (
		rec build.Record
		err error
	)
	if ref == "" {
		rec, err = store.Latest(ctx)
	} else {
		rec, err = store.Load(ref)
	}
	if err != nil {
		if errors.Is(err, errors.ErrBuildNotFound) {
			return nil, fmt.Errorf("%w\nRun 'buildview history' to list stored builds", err)
		}
		return nil, fmt.Errorf("failed to load build: %w", err)
	}
	return build.LogFromRecord(rec), nil
}

func readLogFile(path string) (*build.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	log, err := build.ReadLog(filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return log, nil
}
