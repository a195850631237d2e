package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated whenever the theme changes.
type ThemedStyles struct {
	Palette *ColorPalette

	// Build output modal
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style
	Separator   lipgloss.Style
	Footer      lipgloss.Style

	// Output rows, one per row style
	RowNormal   lipgloss.Style
	RowSelected lipgloss.Style
	RowBlank    lipgloss.Style

	// Editor pane
	EditorHeader lipgloss.Style
	LineNumber   lipgloss.Style
	CursorLine   lipgloss.Style
	EditorText   lipgloss.Style

	// Status line
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	// Help bar
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{Palette: p}

	s.ModalBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Surface)

	s.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Background(p.Surface)

	s.Separator = lipgloss.NewStyle().
		Foreground(p.Border).
		Background(p.Surface)

	s.Footer = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface)

	s.RowNormal = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface)

	s.RowSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.SelectionFg).
		Background(p.SelectionBg)

	s.RowBlank = lipgloss.NewStyle().
		Background(p.Surface)

	s.EditorHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Border)

	s.LineNumber = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.CursorLine = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface)

	s.EditorText = lipgloss.NewStyle().
		Foreground(p.Text)

	s.StatusInfo = lipgloss.NewStyle().Foreground(p.Muted)
	s.StatusWarning = lipgloss.NewStyle().Foreground(p.Warning)
	s.StatusError = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	s.StatusSuccess = lipgloss.NewStyle().Foreground(p.Secondary)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	return s
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
}

// SetActiveTheme switches the active styles to a built-in theme.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	SetActivePalette(GetPalette(name))
}

// SetActivePalette switches the active styles to an arbitrary palette,
// such as one loaded from a theme file. A nil palette selects the default.
func SetActivePalette(p *ColorPalette) {
	if p == nil {
		p = DefaultPalette()
	}
	activeTheme = NewThemedStyles(p)
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}
