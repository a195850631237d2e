package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/buildview/internal/tui/keymap"
	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

func TestHelpBarView_Render(t *testing.T) {
	km := keymap.DefaultKeymap()
	s := styles.NewThemedStyles(styles.DefaultPalette())
	v := NewHelpBarView()

	t.Run("wide terminal shows the modal keys", func(t *testing.T) {
		out := ansi.Strip(v.Render(km.HelpBindings(keymap.ModeBuildOutput), 300, s))
		for _, want := range []string{"↑/k up", "enter open", "esc/b close"} {
			if !strings.Contains(out, want) {
				t.Errorf("help bar %q missing %q", out, want)
			}
		}
	})

	t.Run("narrow terminal is truncated", func(t *testing.T) {
		out := v.Render(km.HelpBindings(keymap.ModeEditor), 24, s)
		if w := lipgloss.Width(out); w > 24 {
			t.Errorf("width = %d, want <= 24: %q", w, ansi.Strip(out))
		}
		if strings.Contains(out, "\n") {
			t.Errorf("help bar wrapped: %q", out)
		}
	})
}
