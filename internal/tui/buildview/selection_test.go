package buildview

import (
	"testing"

	"github.com/Iron-Ham/buildview/internal/build"
)

func TestSelection_ClampRange(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for prior := -5; prior <= 20; prior++ {
			s := Selection{Selected: prior, First: prior}
			s.Clamp(n)
			if s.Selected < 0 || s.Selected >= max(n, 1) {
				t.Fatalf("n=%d prior=%d: Selected = %d out of range", n, prior, s.Selected)
			}
			if n == 0 && (s.Selected != 0 || s.First != 0) {
				t.Fatalf("empty log must reset selection, got %+v", s)
			}
		}
	}
}

func TestSelection_MoveAtEdgesIsNoop(t *testing.T) {
	s := Selection{Selected: 4}
	s.MoveDown(5)
	if s.Selected != 4 {
		t.Errorf("MoveDown at last line: Selected = %d, want 4", s.Selected)
	}

	s = Selection{Selected: 0}
	s.MoveUp(5)
	if s.Selected != 0 {
		t.Errorf("MoveUp at first line: Selected = %d, want 0", s.Selected)
	}

	s = Selection{}
	s.MoveDown(0)
	if s != (Selection{}) {
		t.Errorf("MoveDown on empty log = %+v", s)
	}
}

func TestSelection_Paging(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		n      int
		rows   int
		down   bool
		wantAt int
	}{
		{"page down by rows", 2, 100, 10, true, 12},
		{"page down clamps", 95, 100, 10, true, 99},
		{"page up by rows", 50, 100, 10, false, 40},
		{"page up clamps", 3, 100, 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{Selected: tt.start}
			if tt.down {
				s.PageDown(tt.n, tt.rows)
			} else {
				s.PageUp(tt.n, tt.rows)
			}
			if s.Selected != tt.wantAt {
				t.Errorf("Selected = %d, want %d", s.Selected, tt.wantAt)
			}
		})
	}
}

func TestSelection_MovesDoNotReframe(t *testing.T) {
	s := Selection{Selected: 9, First: 0}
	s.PageDown(100, 10)
	if s.First != 0 {
		t.Errorf("PageDown changed First to %d", s.First)
	}
}

func TestSelection_ScrollToEnd(t *testing.T) {
	tests := []struct {
		name    string
		start   Selection
		n, rows int
		want    Selection
	}{
		{"empty log", Selection{Selected: 3, First: 2}, 0, 5, Selection{}},
		{"fits in window", Selection{}, 4, 5, Selection{Selected: 3, First: 0}},
		{"advances window", Selection{}, 20, 5, Selection{Selected: 19, First: 15}},
		{"never scrolls back", Selection{Selected: 2, First: 18}, 20, 5, Selection{Selected: 19, First: 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.ScrollToEnd(tt.n, tt.rows)
			if s != tt.want {
				t.Errorf("ScrollToEnd = %+v, want %+v", s, tt.want)
			}
			s.Reframe(tt.n, tt.rows)
			if tt.n > 0 && (s.Selected < s.First || s.Selected >= s.First+tt.rows) {
				t.Errorf("selection not visible after Reframe: %+v", s)
			}
		})
	}
}

func TestSelection_ReframeEstablishesInvariant(t *testing.T) {
	for n := 0; n <= 15; n++ {
		for rows := 1; rows <= 6; rows++ {
			for sel := -2; sel <= 17; sel++ {
				for first := -2; first <= 17; first += 3 {
					s := Selection{Selected: sel, First: first}
					s.Reframe(n, rows)

					if s.First < 0 || s.First > s.Selected || s.Selected >= s.First+rows {
						t.Fatalf("n=%d rows=%d start=(%d,%d): invariant broken %+v", n, rows, sel, first, s)
					}
					if s.Selected >= max(n, 1) {
						t.Fatalf("n=%d: Selected = %d out of range", n, s.Selected)
					}

					again := s
					if again.Reframe(n, rows) {
						t.Fatalf("Reframe not idempotent for %+v", s)
					}
					if again != s {
						t.Fatalf("second Reframe changed %+v to %+v", s, again)
					}
				}
			}
		}
	}
}

func TestSelection_ReframeReportsChange(t *testing.T) {
	s := Selection{Selected: 10, First: 0}
	if !s.Reframe(20, 5) {
		t.Error("Reframe() = false, want true when window moves")
	}
	if s.First != 6 {
		t.Errorf("First = %d, want 6", s.First)
	}

	s = Selection{Selected: 2, First: 7}
	s.Reframe(20, 5)
	if s.First != 2 {
		t.Errorf("First = %d, want 2 after scrolling back", s.First)
	}
}

func TestSelection_DiagnosticNavigation(t *testing.T) {
	log := build.NewLog("b", nil, "")
	log.Append(
		build.Line{Text: "cc a.c"},
		build.Line{Text: "a.c:1: error: x", Kind: build.KindError, Filename: "a.c", Line: 1},
		build.Line{Text: "in function f"},
		build.Line{Text: "make: *** Error 1", Kind: build.KindError},
		build.Line{Text: "b.c:9:2: warning: y", Kind: build.KindWarning, Filename: "b.c", Line: 9, Column: 2},
	)

	var s Selection
	if !s.NextDiagnostic(log) || s.Selected != 1 {
		t.Fatalf("first NextDiagnostic: Selected = %d", s.Selected)
	}
	if !s.NextDiagnostic(log) || s.Selected != 4 {
		t.Fatalf("second NextDiagnostic skipped to %d, want 4", s.Selected)
	}
	if s.NextDiagnostic(log) || s.Selected != 4 {
		t.Errorf("NextDiagnostic at end should not move, Selected = %d", s.Selected)
	}
	if !s.PrevDiagnostic(log) || s.Selected != 1 {
		t.Errorf("PrevDiagnostic: Selected = %d, want 1", s.Selected)
	}
	if s.PrevDiagnostic(log) || s.Selected != 1 {
		t.Errorf("PrevDiagnostic at start should not move, Selected = %d", s.Selected)
	}
}
