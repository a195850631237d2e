package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "a", Value: 1, Message: "bad"},
			{Field: "b", Value: 2, Message: "worse"},
		}
		got := errs.Error()
		if !strings.HasPrefix(got, "2 validation errors:\n") {
			t.Errorf("Error() = %q, want count prefix", got)
		}
		if !strings.Contains(got, "  2. b: worse (got: 2)") {
			t.Errorf("Error() = %q, missing numbered entry", got)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "spinner too fast",
			mutate:    func(c *Config) { c.Viewer.SpinnerIntervalMs = 5 },
			wantField: "viewer.spinner_interval_ms",
		},
		{
			name:      "zero file cap",
			mutate:    func(c *Config) { c.Editor.MaxFileBytes = 0 },
			wantField: "editor.max_file_bytes",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
		},
		{
			name:      "store enabled without dir",
			mutate:    func(c *Config) { c.Store.Dir = "  " },
			wantField: "store.dir",
		},
		{
			name:      "negative max builds",
			mutate:    func(c *Config) { c.Store.MaxBuilds = -1 },
			wantField: "store.max_builds",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidate_ThemeFileSkipsThemeName(t *testing.T) {
	cfg := Default()
	cfg.TUI.Theme = "custom"
	cfg.TUI.ThemeFile = "/tmp/theme.yaml"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors when theme_file is set", ValidationErrors(errs))
	}
}

func TestValidate_StoreDisabledAllowsEmptyDir(t *testing.T) {
	cfg := Default()
	cfg.Store.Enabled = false
	cfg.Store.Dir = ""
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", ValidationErrors(errs))
	}
}
