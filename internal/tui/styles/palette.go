package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies a built-in color theme.
type ThemeName string

const (
	// ThemeDefault is the standard dark theme.
	ThemeDefault ThemeName = "default"
	// ThemeMono uses grays only and marks the selection by reversing it.
	ThemeMono ThemeName = "mono"
)

// BuiltinThemes returns the names of all built-in themes.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeMono)}
}

// IsBuiltinTheme reports whether name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (modal title, active elements)
	Primary lipgloss.Color
	// Secondary accent color (success states)
	Secondary lipgloss.Color
	// Warning color (warning lines, warning status)
	Warning lipgloss.Color
	// Error color (error lines, failures)
	Error lipgloss.Color
	// Muted color (footer, line numbers, de-emphasized text)
	Muted lipgloss.Color
	// Surface color (modal background)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (modal frame)
	Border lipgloss.Color

	// Selection colors for the highlighted output row
	SelectionBg lipgloss.Color
	SelectionFg lipgloss.Color
}

// DefaultPalette returns the default dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		SelectionBg: lipgloss.Color("#4C1D95"), // Deep violet
		SelectionFg: lipgloss.Color("#F9FAFB"),
	}
}

// MonoPalette returns a grayscale palette for terminals with poor color support.
func MonoPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#FFFFFF"),
		Secondary: lipgloss.Color("#D1D5DB"),
		Warning:   lipgloss.Color("#E5E7EB"),
		Error:     lipgloss.Color("#FFFFFF"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#111827"),
		Text:      lipgloss.Color("#E5E7EB"),
		Border:    lipgloss.Color("#6B7280"),

		SelectionBg: lipgloss.Color("#E5E7EB"),
		SelectionFg: lipgloss.Color("#111827"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMono:
		return MonoPalette()
	default:
		return DefaultPalette()
	}
}
