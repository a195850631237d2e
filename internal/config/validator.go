package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "store.max_builds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the built-in theme names
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateViewer()...)
	errors = append(errors, c.validateEditor()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateStore()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateViewer() []ValidationError {
	var errors []ValidationError

	// Below 16ms the spinner ticks faster than most terminals repaint.
	const minSpinnerIntervalMs = 16
	if c.Viewer.SpinnerIntervalMs < minSpinnerIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "viewer.spinner_interval_ms",
			Value:   c.Viewer.SpinnerIntervalMs,
			Message: fmt.Sprintf("must be at least %d", minSpinnerIntervalMs),
		})
	}

	return errors
}

func (c *Config) validateEditor() []ValidationError {
	var errors []ValidationError

	if c.Editor.MaxFileBytes <= 0 {
		errors = append(errors, ValidationError{
			Field:   "editor.max_file_bytes",
			Value:   c.Editor.MaxFileBytes,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.ThemeFile == "" && c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateStore() []ValidationError {
	var errors []ValidationError

	if c.Store.Enabled && strings.TrimSpace(c.Store.Dir) == "" {
		errors = append(errors, ValidationError{
			Field:   "store.dir",
			Value:   c.Store.Dir,
			Message: "required when the store is enabled",
		})
	}

	if c.Store.MaxBuilds < 0 {
		errors = append(errors, ValidationError{
			Field:   "store.max_builds",
			Value:   c.Store.MaxBuilds,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
