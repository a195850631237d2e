package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

// executeCommand runs the root command with args and returns captured output
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// setupTestEnvironment isolates config, state, and the history store in a
// temp home and returns the store directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))

	viper.Reset()
	t.Cleanup(viper.Reset)

	storeDir := filepath.Join(home, "builds")
	viper.Set("store.dir", storeDir)

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	historyLimit = 20
	diagnosticsErrorsOnly = false
	return storeDir
}

func sampleRecord(id string, started time.Time, exitCode int) build.Record {
	return build.Record{
		ID:         id,
		Command:    []string{"make", "all"},
		Dir:        "/src",
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		ExitCode:   exitCode,
		Lines: []build.Line{
			build.NewLine("cc -c main.c"),
			build.NewLine("main.c:3:1: error: expected ';'"),
			build.NewLine("util.c:9: warning: unused variable 'x'"),
		},
	}
}

func saveRecords(t *testing.T, dir string, records ...build.Record) {
	t.Helper()
	store := build.NewStore(dir, 0)
	for _, r := range records {
		if err := store.Save(context.Background(), r); err != nil {
			t.Fatalf("Save(%s) error = %v", r.ID, err)
		}
	}
}

func writeLogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "buildview" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "buildview")
	}

	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range []string{"run", "view", "history", "diagnostics", "config"} {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestHistoryCommand(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		setupTestEnvironment(t)

		output, err := executeCommand("history")
		if err != nil {
			t.Fatalf("history error = %v", err)
		}
		if !strings.Contains(output, "No stored builds.") {
			t.Errorf("output = %q", output)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		storeDir := setupTestEnvironment(t)
		started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		saveRecords(t, storeDir,
			sampleRecord("20261019-090000-aaaa", started, 0),
			sampleRecord("20261019-100000-bbbb", started.Add(time.Hour), 2),
		)

		output, err := executeCommand("history")
		if err != nil {
			t.Fatalf("history error = %v", err)
		}

		older := strings.Index(output, "20261019-090000-aaaa")
		newer := strings.Index(output, "20261019-100000-bbbb")
		if older < 0 || newer < 0 {
			t.Fatalf("missing builds in output:\n%s", output)
		}
		if newer > older {
			t.Errorf("newest build should be listed first:\n%s", output)
		}
		for _, want := range []string{"RESULT", "exit 2", "ok", "1.5s", "make all"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		storeDir := setupTestEnvironment(t)
		started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		saveRecords(t, storeDir,
			sampleRecord("20261019-090000-aaaa", started, 0),
			sampleRecord("20261019-100000-bbbb", started.Add(time.Hour), 0),
		)

		output, err := executeCommand("history", "--limit", "1")
		if err != nil {
			t.Fatalf("history error = %v", err)
		}
		if strings.Contains(output, "20261019-090000-aaaa") {
			t.Errorf("--limit 1 listed the older build:\n%s", output)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		setupTestEnvironment(t)
		viper.Set("store.enabled", false)

		if _, err := executeCommand("history"); err == nil {
			t.Error("history should fail when the store is disabled")
		}
	})
}

func TestHistoryDeleteCommand(t *testing.T) {
	storeDir := setupTestEnvironment(t)
	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	saveRecords(t, storeDir, sampleRecord("20261019-090000-aaaa", started, 0))

	output, err := executeCommand("history", "delete", "20261019-090000-aaaa")
	if err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if !strings.Contains(output, "Deleted 20261019-090000-aaaa") {
		t.Errorf("output = %q", output)
	}

	if _, err := build.NewStore(storeDir, 0).Load("20261019-090000-aaaa"); err == nil {
		t.Error("record still present after delete")
	}
}

func TestDiagnosticsCommand(t *testing.T) {
	logText := strings.Join([]string{
		"cc -c main.c",
		"main.c:3:1: error: expected ';'",
		"util.c:9: warning: unused variable 'x'",
		"make: *** [all] Error 1",
	}, "\n")

	t.Run("from file", func(t *testing.T) {
		setupTestEnvironment(t)
		path := writeLogFile(t, logText)

		output, err := executeCommand("diagnostics", path)
		if err != nil {
			t.Fatalf("diagnostics error = %v", err)
		}
		for _, want := range []string{"LOCATION", "main.c:3:1", "util.c:9", "expected ';'", "warning"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
		if strings.Contains(output, "cc -c main.c") {
			t.Errorf("plain line without a position listed:\n%s", output)
		}
	})

	t.Run("errors only", func(t *testing.T) {
		setupTestEnvironment(t)
		path := writeLogFile(t, logText)

		output, err := executeCommand("diagnostics", "--errors-only", path)
		if err != nil {
			t.Fatalf("diagnostics error = %v", err)
		}
		if !strings.Contains(output, "main.c:3:1") {
			t.Errorf("error line missing:\n%s", output)
		}
		if strings.Contains(output, "util.c:9") {
			t.Errorf("warning listed with --errors-only:\n%s", output)
		}
	})

	t.Run("latest stored build", func(t *testing.T) {
		storeDir := setupTestEnvironment(t)
		saveRecords(t, storeDir, sampleRecord("20261019-090000-aaaa", time.Now(), 2))

		output, err := executeCommand("diagnostics")
		if err != nil {
			t.Fatalf("diagnostics error = %v", err)
		}
		if !strings.Contains(output, "main.c:3:1") {
			t.Errorf("output missing stored diagnostic:\n%s", output)
		}
	})

	t.Run("unknown build", func(t *testing.T) {
		setupTestEnvironment(t)

		_, err := executeCommand("diagnostics", "20000101-000000-ffff")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("error = %v, want not found", err)
		}
	})

	t.Run("no diagnostics", func(t *testing.T) {
		setupTestEnvironment(t)
		path := writeLogFile(t, "ok\n")

		output, err := executeCommand("diagnostics", path)
		if err != nil {
			t.Fatalf("diagnostics error = %v", err)
		}
		if !strings.Contains(output, "No diagnostics.") {
			t.Errorf("output = %q", output)
		}
	})
}

func TestConfigShowCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"follow_output: true", "spinner_interval_ms: 100", "theme: default"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestConfigSetCommand(t *testing.T) {
	t.Run("valid value is written", func(t *testing.T) {
		setupTestEnvironment(t)

		output, err := executeCommand("config", "set", "store.max_builds", "7")
		if err != nil {
			t.Fatalf("config set error = %v", err)
		}
		if !strings.Contains(output, "Set store.max_builds = 7") {
			t.Errorf("output = %q", output)
		}

		data, err := os.ReadFile(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "buildview", "config.yaml"))
		if err != nil {
			t.Fatalf("config file not written: %v", err)
		}
		if !strings.Contains(string(data), "max_builds: 7") {
			t.Errorf("config file missing value:\n%s", data)
		}
	})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "viewer.colour", "x"},
		{"not a bool", "viewer.follow_output", "maybe"},
		{"not an int", "store.max_builds", "many"},
		{"fails validation", "viewer.spinner_interval_ms", "5"},
		{"unknown theme", "tui.theme", "neon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnvironment(t)

			if _, err := executeCommand("config", "set", tt.key, tt.value); err == nil {
				t.Errorf("config set %s %s should fail", tt.key, tt.value)
			}
			if _, err := os.Stat(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "buildview", "config.yaml")); err == nil {
				t.Error("rejected value was written")
			}
		})
	}
}

func TestConfigInitCommand(t *testing.T) {
	setupTestEnvironment(t)

	if _, err := executeCommand("config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "buildview", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := executeCommand("config", "init"); err == nil {
		t.Error("second config init should refuse to overwrite")
	}
}

func TestThemeCommands(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand("config", "theme", "export", "mono")
	if err != nil {
		t.Fatalf("theme export error = %v", err)
	}
	theme, err := styles.ParseTheme([]byte(output))
	if err != nil {
		t.Fatalf("exported theme does not parse: %v\n%s", err, output)
	}
	if theme.Name != "mono" {
		t.Errorf("theme name = %q, want mono", theme.Name)
	}

	path := filepath.Join(t.TempDir(), "mono.yaml")
	if _, err := executeCommand("config", "theme", "export", "mono", path); err != nil {
		t.Fatalf("theme export to file error = %v", err)
	}
	output, err = executeCommand("config", "theme", "check", path)
	if err != nil {
		t.Fatalf("theme check error = %v", err)
	}
	if !strings.Contains(output, "is valid") {
		t.Errorf("output = %q", output)
	}

	if _, err := executeCommand("config", "theme", "export", "neon"); err == nil {
		t.Error("exporting an unknown theme should fail")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"viewer.follow_output", "false", false, false},
		{"store.max_builds", "12", 12, false},
		{"tui.theme", "mono", "mono", false},
		{"store.max_builds", "1.5", nil, true},
		{"nope", "1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := parseValue(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90*time.Second + 400*time.Millisecond, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		line build.Line
		want string
	}{
		{build.Line{Filename: "a.c", Line: 3, Column: 7}, "a.c:3:7"},
		{build.Line{Filename: "a.c", Line: 3}, "a.c:3"},
	}
	for _, tt := range tests {
		if got := location(tt.line); got != tt.want {
			t.Errorf("location(%+v) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestEnvName(t *testing.T) {
	if got := envName("viewer.follow_output"); got != "BUILDVIEW_VIEWER_FOLLOW_OUTPUT" {
		t.Errorf("envName() = %q", got)
	}
}
