package buildview

// Selection is the viewport state: the selected line and the first line
// shown. Movement methods only change Selected; Reframe brings First back
// into range before the next redraw, so several moves cost one reframe.
//
// After Reframe(n, rows) the following hold:
//
//	0 <= Selected < max(n, 1)
//	0 <= First <= Selected < First+rows
type Selection struct {
	Selected int
	First    int
}

// Clamp bounds Selected to the log and First to non-negative values.
// An empty log resets both to zero.
func (s *Selection) Clamp(n int) {
	if n <= 0 {
		s.Selected = 0
		s.First = 0
		return
	}
	s.Selected = max(0, min(s.Selected, n-1))
	s.First = max(s.First, 0)
}

func (s *Selection) move(delta, n int) {
	s.Selected += delta
	s.Clamp(n)
}

// MoveDown selects the next line; a no-op on the last line.
func (s *Selection) MoveDown(n int) { s.move(1, n) }

// MoveUp selects the previous line; a no-op on the first line.
func (s *Selection) MoveUp(n int) { s.move(-1, n) }

// PageDown moves the selection forward by one page of rows lines.
func (s *Selection) PageDown(n, rows int) { s.move(rows, n) }

// PageUp moves the selection back by one page of rows lines.
func (s *Selection) PageUp(n, rows int) { s.move(-rows, n) }

// Home selects the first line.
func (s *Selection) Home(n int) {
	s.Selected = 0
	s.Clamp(n)
}

// ScrollToEnd selects the last line. First only moves forward, and only if
// the last line would otherwise be below the window.
func (s *Selection) ScrollToEnd(n, rows int) {
	if n <= 0 {
		s.Selected = 0
		s.First = 0
		return
	}
	rows = max(rows, 1)
	s.Selected = n - 1
	if s.Selected >= s.First+rows {
		s.First = s.Selected - rows + 1
	}
}

// Reframe moves First the minimum distance needed to show Selected in a
// window of rows lines and reports whether anything changed. It is
// idempotent.
func (s *Selection) Reframe(n, rows int) bool {
	before := *s
	rows = max(rows, 1)

	s.Clamp(n)
	if s.Selected < s.First {
		s.First = s.Selected
	}
	if s.Selected >= s.First+rows {
		s.First = s.Selected - rows + 1
	}

	return *s != before
}

// NextDiagnostic selects the next line after the selection that points at
// a file position. It reports whether one was found; there is no wrap.
func (s *Selection) NextDiagnostic(log OutputLog) bool {
	n := log.Len()
	for i := s.Selected + 1; i < n; i++ {
		if line, ok := log.At(i); ok && line.Navigable() {
			s.Selected = i
			return true
		}
	}
	return false
}

// PrevDiagnostic selects the nearest line before the selection that points
// at a file position. It reports whether one was found.
func (s *Selection) PrevDiagnostic(log OutputLog) bool {
	for i := min(s.Selected, log.Len()) - 1; i >= 0; i-- {
		if line, ok := log.At(i); ok && line.Navigable() {
			s.Selected = i
			return true
		}
	}
	return false
}
