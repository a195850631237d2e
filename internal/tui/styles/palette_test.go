package styles

import (
	"slices"
	"testing"
)

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()

	for _, want := range []string{"default", "mono"} {
		if !slices.Contains(themes, want) {
			t.Errorf("BuiltinThemes() missing %q", want)
		}
	}
}

func TestIsBuiltinTheme(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"default theme", "default", true},
		{"mono theme", "mono", true},
		{"invalid theme", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBuiltinTheme(tt.theme); got != tt.want {
				t.Errorf("IsBuiltinTheme(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	tests := []struct {
		name        string
		theme       ThemeName
		wantPrimary string
	}{
		{"default", ThemeDefault, "#A78BFA"},
		{"mono", ThemeMono, "#FFFFFF"},
		{"unknown falls back to default", ThemeName("nope"), "#A78BFA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GetPalette(tt.theme)
			if string(p.Primary) != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", p.Primary, tt.wantPrimary)
			}
		})
	}
}

func TestPalettesAreComplete(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			p := GetPalette(ThemeName(name))
			colors := map[string]string{
				"primary":   string(p.Primary),
				"secondary": string(p.Secondary),
				"warning":   string(p.Warning),
				"error":     string(p.Error),
				"muted":     string(p.Muted),
				"surface":   string(p.Surface),
				"text":      string(p.Text),
				"border":    string(p.Border),
				"sel bg":    string(p.SelectionBg),
				"sel fg":    string(p.SelectionFg),
			}
			for field, c := range colors {
				if !isValidHexColor(c) {
					t.Errorf("%s = %q, not a hex color", field, c)
				}
			}
			if p.SelectionBg == p.Surface {
				t.Error("selection background must differ from the surface")
			}
		})
	}
}
