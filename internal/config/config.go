package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config represents the complete buildview configuration
type Config struct {
	Build   BuildConfig   `mapstructure:"build"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	Editor  EditorConfig  `mapstructure:"editor"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BuildConfig controls which command is run as "the build"
type BuildConfig struct {
	// Command is the argv run when `buildview run` is given no arguments (default: ["make"])
	Command []string `mapstructure:"command"`
	// Dir is the working directory for the build; empty means the current directory.
	// Relative diagnostic paths are resolved against it.
	Dir string `mapstructure:"dir"`
}

// ViewerConfig controls the build output modal
type ViewerConfig struct {
	// FollowOutput keeps the selection on the newest line while it is already at the end
	FollowOutput bool `mapstructure:"follow_output"`
	// SpinnerIntervalMs is the spinner tick period while a build runs
	SpinnerIntervalMs int `mapstructure:"spinner_interval_ms"`
	// ShowOnStart opens the modal as soon as the build starts
	ShowOnStart bool `mapstructure:"show_on_start"`
}

// EditorConfig controls the document pane
type EditorConfig struct {
	// MaxFileBytes caps the size of a document loaded for a jump, keeping loads bounded
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
}

// TUIConfig controls the terminal UI look
type TUIConfig struct {
	// Theme is a built-in theme name (default: "default")
	// Options: "default", "mono"
	Theme string `mapstructure:"theme"`
	// ThemeFile is an optional YAML theme that overrides Theme
	ThemeFile string `mapstructure:"theme_file"`
}

// StoreConfig controls build history persistence
type StoreConfig struct {
	// Enabled saves every finished build to the history store (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Dir is the store location; "~" is expanded
	Dir string `mapstructure:"dir"`
	// MaxBuilds prunes the oldest builds beyond this count (0 = keep all)
	MaxBuilds int `mapstructure:"max_builds"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled writes a JSON debug log to the state directory (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Command: []string{"make"},
			Dir:     "",
		},
		Viewer: ViewerConfig{
			FollowOutput:      true,
			SpinnerIntervalMs: 100,
			ShowOnStart:       true,
		},
		Editor: EditorConfig{
			MaxFileBytes: 8 << 20, // 8 MiB
		},
		TUI: TUIConfig{
			Theme:     "default",
			ThemeFile: "",
		},
		Store: StoreConfig{
			Enabled:   true,
			Dir:       "~/.local/share/buildview/builds",
			MaxBuilds: 50,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// SpinnerInterval returns the spinner tick period as a time.Duration
func (c *ViewerConfig) SpinnerInterval() time.Duration {
	return time.Duration(c.SpinnerIntervalMs) * time.Millisecond
}

// ResolvedDir returns the store directory with "~" expanded.
// The unexpanded value is returned if the home directory cannot be found.
func (c *StoreConfig) ResolvedDir() string {
	dir, err := homedir.Expand(c.Dir)
	if err != nil {
		return c.Dir
	}
	return dir
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Build defaults
	viper.SetDefault("build.command", defaults.Build.Command)
	viper.SetDefault("build.dir", defaults.Build.Dir)

	// Viewer defaults
	viper.SetDefault("viewer.follow_output", defaults.Viewer.FollowOutput)
	viper.SetDefault("viewer.spinner_interval_ms", defaults.Viewer.SpinnerIntervalMs)
	viper.SetDefault("viewer.show_on_start", defaults.Viewer.ShowOnStart)

	// Editor defaults
	viper.SetDefault("editor.max_file_bytes", defaults.Editor.MaxFileBytes)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.theme_file", defaults.TUI.ThemeFile)

	// Store defaults
	viper.SetDefault("store.enabled", defaults.Store.Enabled)
	viper.SetDefault("store.dir", defaults.Store.Dir)
	viper.SetDefault("store.max_builds", defaults.Store.MaxBuilds)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it is invalid
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "buildview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".buildview"
	}
	return filepath.Join(home, ".config", "buildview")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for the debug log
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "buildview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".buildview"
	}
	return filepath.Join(home, ".local", "state", "buildview")
}
