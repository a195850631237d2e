package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/tui/buildview"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

func TestRenderStatusBar(t *testing.T) {
	running := build.NewLog("r", []string{"make"}, "")
	running.Start()
	running.Append(build.NewLine("cc -c a.c"), build.NewLine("cc -c b.c"))

	failed := build.NewLog("f", []string{"make"}, "")
	failed.Start()
	failed.Append(build.NewLine("a.c:1: error: boom"))
	failed.Finish(2)

	warned := build.NewLog("w", []string{"make"}, "")
	warned.Start()
	warned.Append(build.NewLine("a.c:1: warning: hmm"))
	warned.Finish(0)

	exited := build.NewLog("e", []string{"make"}, "")
	exited.Start()
	exited.Finish(1)

	clean := build.NewLog("c", []string{"make"}, "")
	clean.Start()
	clean.Finish(0)

	sp := buildview.NewSpinner(0)

	tests := []struct {
		name  string
		state StatusBarState
		want  []string
	}{
		{"no build", StatusBarState{Width: 60}, []string{"no build"}},
		{"running", StatusBarState{Log: running, Spinner: &sp, Width: 60}, []string{"| building (2 lines)"}},
		{"errors", StatusBarState{Log: failed, Width: 60}, []string{"1 err, 0 warn"}},
		{"warnings", StatusBarState{Log: warned, Width: 60}, []string{"1 warn"}},
		{"failed exit", StatusBarState{Log: exited, Width: 60}, []string{"exit 1"}},
		{"clean", StatusBarState{Log: clean, Width: 60}, []string{"build ok"}},
		{
			"message",
			StatusBarState{Message: "Cannot open x.c", Severity: errors.SeverityWarning, Log: clean, Width: 60},
			[]string{" Cannot open x.c", "build ok"},
		},
	}

	s := styles.NewThemedStyles(styles.DefaultPalette())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderStatusBar(tt.state, s))
			if w := ansi.StringWidth(out); w != tt.state.Width {
				t.Errorf("width = %d, want %d: %q", w, tt.state.Width, out)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("status bar %q missing %q", out, want)
				}
			}
		})
	}
}

func TestRenderStatusBar_Narrow(t *testing.T) {
	out := ansi.Strip(RenderStatusBar(StatusBarState{Message: "long message", Width: 5}, styles.NewThemedStyles(styles.DefaultPalette())))
	if w := ansi.StringWidth(out); w != 5 {
		t.Errorf("width = %d, want 5: %q", w, out)
	}
}
