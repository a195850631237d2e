package build

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Iron-Ham/buildview/internal/errors"
)

// recordExt is the file extension of stored build records.
const recordExt = ".json"

// Record is a finished build as persisted in the Store.
type Record struct {
	ID         string    `json:"id"`
	Command    []string  `json:"command"`
	Dir        string    `json:"dir,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	ExitCode   int       `json:"exit_code"`
	Lines      []Line    `json:"lines"`
}

// Counts returns the number of error and warning lines in the record.
func (r Record) Counts() (errs, warnings int) {
	for _, l := range r.Lines {
		switch l.Kind {
		case KindError:
			errs++
		case KindWarning:
			warnings++
		case KindPlain:
		}
	}
	return errs, warnings
}

// Duration returns how long the build ran.
func (r Record) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Store persists build records as JSON files in a directory, one per build.
type Store struct {
	d         *diskv.Diskv
	maxBuilds int
}

// NewStore opens the store rooted at dir. When maxBuilds is positive, Save
// removes the oldest records beyond that count.
func NewStore(dir string, maxBuilds int) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPath,
			InverseTransform:  pathToKey,
			CacheSizeMax:      4 << 20,
		}),
		maxBuilds: maxBuilds,
	}
}

func keyToPath(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + recordExt,
	}
}

func pathToKey(pk *diskv.PathKey) string {
	return strings.TrimSuffix(pk.FileName, recordExt)
}

// Save writes the record, replacing any record with the same ID.
func (s *Store) Save(ctx context.Context, r Record) error {
	if err := validateID(r.ID); err != nil {
		return err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return errors.NewStoreError("failed to encode record", err).WithBuildID(r.ID)
	}
	if err := s.d.Write(r.ID, data); err != nil {
		return errors.NewStoreError("failed to write record", err).WithBuildID(r.ID)
	}

	return s.prune(ctx)
}

// Load reads the record with the given ID.
func (s *Store) Load(id string) (Record, error) {
	if err := validateID(id); err != nil {
		return Record{}, err
	}
	if !s.d.Has(id) {
		return Record{}, errors.NewNotFoundError("build", id).WithCause(errors.ErrBuildNotFound)
	}

	data, err := s.d.Read(id)
	if err != nil {
		return Record{}, errors.NewStoreError("failed to read record", err).WithBuildID(id)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, errors.NewStoreError("failed to decode record",
			fmt.Errorf("%w: %w", errors.ErrRecordCorrupted, err)).WithBuildID(id)
	}
	if r.ID == "" {
		r.ID = id
	}
	return r, nil
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.d.Erase(id); err != nil {
		return errors.NewStoreError("failed to delete record", err).WithBuildID(id)
	}
	return nil
}

// List returns all readable records, newest first. Corrupted records are
// skipped and reported through the returned skipped IDs.
func (s *Store) List(ctx context.Context) (records []Record, skipped []string) {
	for key := range s.d.Keys(ctx.Done()) {
		r, err := s.Load(key)
		if err != nil {
			skipped = append(skipped, key)
			continue
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].StartedAt.Equal(records[j].StartedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].StartedAt.After(records[j].StartedAt)
	})
	sort.Strings(skipped)
	return records, skipped
}

// Latest returns the most recently started record.
func (s *Store) Latest(ctx context.Context) (Record, error) {
	records, _ := s.List(ctx)
	if len(records) == 0 {
		return Record{}, errors.NewNotFoundError("build", "latest").WithCause(errors.ErrBuildNotFound)
	}
	return records[0], nil
}

func (s *Store) prune(ctx context.Context) error {
	if s.maxBuilds <= 0 {
		return nil
	}
	records, _ := s.List(ctx)
	if len(records) <= s.maxBuilds {
		return nil
	}
	for _, r := range records[s.maxBuilds:] {
		if err := s.Delete(r.ID); err != nil {
			return err
		}
	}
	return nil
}

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return errors.NewValidationError("invalid build id").WithField("id").WithValue(id)
	}
	return nil
}
