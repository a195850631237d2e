package buildview

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner is the "build running" indicator. It only moves when Advance is
// called from an external tick; rendering reads Glyph and never advances.
type Spinner struct {
	glyphs spinner.Spinner
	index  int
}

// NewSpinner returns a spinner cycling | / - \ every interval.
// A non-positive interval keeps the glyph set's default rate.
func NewSpinner(interval time.Duration) Spinner {
	glyphs := spinner.Line
	if interval > 0 {
		glyphs.FPS = interval
	}
	return Spinner{glyphs: glyphs}
}

// Advance steps to the next glyph, wrapping after the last.
func (s *Spinner) Advance() {
	if n := len(s.glyphs.Frames); n > 0 {
		s.index = (s.index + 1) % n
	}
}

// Glyph returns the current glyph.
func (s *Spinner) Glyph() string {
	if len(s.glyphs.Frames) == 0 {
		return ""
	}
	return s.glyphs.Frames[s.index]
}

// Index returns the current position in the glyph set.
func (s *Spinner) Index() int { return s.index }

// Interval returns how often Advance should be called.
func (s *Spinner) Interval() time.Duration { return s.glyphs.FPS }
