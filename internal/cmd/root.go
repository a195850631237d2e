package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/config"
	"github.com/Iron-Ham/buildview/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "buildview",
	Short: "Run a build and jump to its diagnostics",
	Long: `buildview runs a build command, streams its output into a scrolling
viewer and lets you jump from any error or warning line straight to the
file position it names.

Finished builds are kept in a history store so they can be reopened later.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/buildview/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/buildview")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("BUILDVIEW")
	// Replace dots with underscores for nested keys in env vars
	// e.g., BUILDVIEW_VIEWER_FOLLOW_OUTPUT for viewer.follow_output
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig returns the effective configuration, rejecting invalid values
// instead of silently falling back to defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openLogger creates the debug logger. The TUI owns the terminal, so when
// logging is disabled a no-op logger is returned instead of a stderr one.
func openLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(config.StateDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return logger, nil
}

// openStore returns the history store, or nil when history is disabled.
func openStore(cfg *config.Config) *build.Store {
	if !cfg.Store.Enabled {
		return nil
	}
	return build.NewStore(cfg.Store.ResolvedDir(), cfg.Store.MaxBuilds)
}

// requireTerminal fails early when stdout is not a terminal; the viewer
// cannot run in a pipe.
func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal\nUse 'buildview diagnostics' for plain-text output")
	}
	return nil
}
