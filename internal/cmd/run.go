package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run [-- command [args...]]",
	Short: "Run the build and browse its output",
	Long: `Run a build command and show its output in the viewer.

Without arguments the command configured as build.command is run
(default: make). Everything after -- is run as given, without a shell.

Examples:
  buildview run
  buildview run -- go build ./...
  buildview run -C ./server -- make -j8`,
	RunE: runRun,
}

var (
	runDir       string
	runNoHistory bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runDir, "dir", "C", "", "Working directory for the build (default: build.dir)")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not save this build to the history store")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	argv := args
	if len(argv) == 0 {
		argv = cfg.Build.Command
	}
	if len(argv) == 0 {
		return errors.NewBuildError("nothing to run", errors.ErrEmptyCommand)
	}
	if runDir != "" {
		cfg.Build.Dir = runDir
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
		Config:     cfg,
		Runner:     build.NewRunner(argv, cfg.Build.Dir, logger),
		StartBuild: true,
		Logger:     logger,
	}
	if store := openStore(cfg); store != nil && !runNoHistory {
		opts.Store = store
	}

	logger.Info("starting viewer", "argv", argv, "dir", cfg.Build.Dir)
	if err := tui.New(opts).Run(cmd.Context()); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
