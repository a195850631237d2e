package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Iron-Ham/buildview/internal/errors"
)

func testRecord(id string, started time.Time) Record {
	return Record{
		ID:         id,
		Command:    []string{"make"},
		Dir:        "/src",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		ExitCode:   2,
		Lines: []Line{
			{Text: "cc a.c", Kind: KindPlain},
			{Text: "a.c:1:2: error: x", Kind: KindError, Filename: "a.c", Line: 1, Column: 2},
			{Text: "a.c:5:1: warning: y", Kind: KindWarning, Filename: "a.c", Line: 5, Column: 1},
		},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir(), 0)
	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	if err := s.Save(ctx, testRecord("b1", started)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load("b1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID != "b1" || got.ExitCode != 2 || len(got.Lines) != 3 {
		t.Errorf("Load() = %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}
	if got.Lines[1].Filename != "a.c" || got.Lines[1].Column != 2 {
		t.Errorf("error line = %+v", got.Lines[1])
	}
	if errs, warns := got.Counts(); errs != 1 || warns != 1 {
		t.Errorf("Counts() = %d, %d, want 1, 1", errs, warns)
	}
	if got.Duration() != 3*time.Second {
		t.Errorf("Duration() = %v, want 3s", got.Duration())
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(t.TempDir(), 0)

	_, err := s.Load("nope")
	if !errors.Is(err, errors.ErrBuildNotFound) {
		t.Errorf("Load() error = %v, want ErrBuildNotFound", err)
	}
}

func TestStore_LoadCorrupted(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad"+recordExt), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir, 0)

	_, err := s.Load("bad")
	if !errors.Is(err, errors.ErrRecordCorrupted) {
		t.Fatalf("Load() error = %v, want ErrRecordCorrupted", err)
	}

	records, skipped := s.List(context.Background())
	if len(records) != 0 || len(skipped) != 1 || skipped[0] != "bad" {
		t.Errorf("List() = %d records, skipped %v", len(records), skipped)
	}
}

func TestStore_InvalidID(t *testing.T) {
	s := NewStore(t.TempDir(), 0)
	for _, id := range []string{"", "../etc/passwd", `a\b`, "x/y"} {
		if _, err := s.Load(id); !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Load(%q) error = %v, want ErrInvalidInput", id, err)
		}
	}
}

func TestStore_ListNewestFirstAndPrune(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir(), 2)
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"b1", "b2", "b3"} {
		if err := s.Save(ctx, testRecord(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save(%s) error = %v", id, err)
		}
	}

	records, skipped := s.List(ctx)
	if len(skipped) != 0 {
		t.Errorf("skipped = %v", skipped)
	}
	if len(records) != 2 {
		t.Fatalf("List() returned %d records, want 2", len(records))
	}
	if records[0].ID != "b3" || records[1].ID != "b2" {
		t.Errorf("List() order = %s, %s; want b3, b2", records[0].ID, records[1].ID)
	}

	latest, err := s.Latest(ctx)
	if err != nil || latest.ID != "b3" {
		t.Errorf("Latest() = %q, %v", latest.ID, err)
	}

	if _, err := s.Load("b1"); !errors.Is(err, errors.ErrBuildNotFound) {
		t.Errorf("pruned record still loadable: %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir(), 0)
	if err := s.Save(ctx, testRecord("b1", time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("b1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Latest(ctx); !errors.Is(err, errors.ErrBuildNotFound) {
		t.Errorf("Latest() after delete error = %v", err)
	}
}
