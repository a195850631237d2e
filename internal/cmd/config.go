package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/buildview/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify buildview configuration",
	Long: `View or modify buildview configuration.

Without arguments, prints the effective configuration as YAML.
Use subcommands to modify settings or create a config file.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  buildview config set viewer.follow_output false
  buildview config set store.max_builds 100

Valid keys:
  build.dir                   - Working directory for the build
  viewer.follow_output        - Keep the selection on the newest line (true/false)
  viewer.spinner_interval_ms  - Spinner tick period in milliseconds
  viewer.show_on_start        - Open the output modal when a build starts (true/false)
  editor.max_file_bytes       - Largest file opened for a jump
  tui.theme                   - Built-in theme: default, mono
  tui.theme_file              - YAML theme file overriding tui.theme
  store.enabled               - Save finished builds (true/false)
  store.dir                   - History store directory
  store.max_builds            - Builds kept in history (0 = all)
  logging.enabled             - Write a debug log (true/false)
  logging.level               - debug, info, warn, error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/buildview/config.yaml with all available options.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// settableKeys maps each key accepted by 'config set' to its value type.
var settableKeys = map[string]string{
	"build.dir":                  "string",
	"viewer.follow_output":       "bool",
	"viewer.spinner_interval_ms": "int",
	"viewer.show_on_start":       "bool",
	"editor.max_file_bytes":      "int",
	"tui.theme":                  "string",
	"tui.theme_file":             "string",
	"store.enabled":              "bool",
	"store.dir":                  "string",
	"store.max_builds":           "int",
	"logging.enabled":            "bool",
	"logging.level":              "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(effectiveSettings())
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// effectiveSettings returns the merged defaults, file, and environment
// values, without the flag-only keys viper also tracks.
func effectiveSettings() map[string]any {
	settings := viper.AllSettings()
	delete(settings, "config")
	return settings
}

// parseValue converts a 'config set' argument to the key's type.
func parseValue(key, value string) (any, error) {
	keyType, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'buildview config set --help' to see valid keys", key)
	}

	switch keyType {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	typedValue, err := parseValue(key, value)
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// defaultConfigContent is the commented file written by 'config init'.
const defaultConfigContent = `# buildview configuration

build:
  # Command run by 'buildview run' without arguments
  command: [make]
  # Working directory for the build; relative diagnostic paths resolve against it
  dir: ""

viewer:
  # Keep the selection on the newest line while it is already at the end
  follow_output: true
  # Spinner tick period in milliseconds while a build runs
  spinner_interval_ms: 100
  # Open the output modal as soon as a build starts
  show_on_start: true

editor:
  # Largest file opened when jumping to a diagnostic (bytes)
  max_file_bytes: 8388608

tui:
  # Built-in theme: default, mono
  theme: default
  # Optional YAML theme file; overrides theme when set
  theme_file: ""

store:
  # Save finished builds to the history store
  enabled: true
  dir: ~/.local/share/buildview/builds
  # Oldest builds beyond this count are removed (0 = keep all)
  max_builds: 50

logging:
  # Write a JSON debug log to ~/.local/state/buildview/buildview.log
  enabled: false
  # debug, info, warn, error
  level: info
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'buildview config set' to modify values", configFile)
	}
	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintln(out, "  2. $HOME/.config/buildview/config.yaml")
	fmt.Fprintln(out, "  3. ./config.yaml (current directory)")
	fmt.Fprintf(out, "\nEnvironment variables: BUILDVIEW_* (e.g., %s)\n", envName("viewer.follow_output"))
	return nil
}

// envName returns the environment variable that overrides key.
func envName(key string) string {
	return "BUILDVIEW_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
