package buildview

import (
	"testing"
	"time"
)

func TestSpinner_AdvanceWraps(t *testing.T) {
	sp := NewSpinner(50 * time.Millisecond)

	if sp.Index() != 0 || sp.Glyph() != "|" {
		t.Fatalf("new spinner = %d %q, want 0 |", sp.Index(), sp.Glyph())
	}
	for i := 1; i <= 9; i++ {
		sp.Advance()
		if sp.Index() != i%4 {
			t.Errorf("after %d advances Index() = %d, want %d", i, sp.Index(), i%4)
		}
	}
	if sp.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, want 50ms", sp.Interval())
	}
}

func TestSpinner_DefaultInterval(t *testing.T) {
	sp := NewSpinner(0)
	if sp.Interval() != 100*time.Millisecond {
		t.Errorf("Interval() = %v, want 100ms", sp.Interval())
	}
}

func TestSpinner_ZeroValue(t *testing.T) {
	var sp Spinner
	sp.Advance()
	if sp.Glyph() != "" || sp.Index() != 0 {
		t.Errorf("zero Spinner = %d %q", sp.Index(), sp.Glyph())
	}
}
