package build

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"
)

// Log is the ordered, append-only output of one build.
// All methods are safe for concurrent use.
type Log struct {
	mu sync.RWMutex

	id      string
	command []string
	dir     string

	lines    []Line
	errors   int
	warnings int

	running    bool
	complete   bool
	exitCode   int
	startedAt  time.Time
	finishedAt time.Time
}

// NewLog creates an empty log for a build that has not started.
func NewLog(id string, command []string, dir string) *Log {
	return &Log{
		id:      id,
		command: slices.Clone(command),
		dir:     dir,
	}
}

// NewID returns a build ID that sorts by start time and is unique enough
// for a single user's history, e.g. "20261019-143005-9f2c".
func NewID(now time.Time) string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s-%04x", now.UTC().Format("20060102-150405"), now.UnixNano()&0xFFFF)
	}
	return now.UTC().Format("20060102-150405") + "-" + hex.EncodeToString(b)
}

// ReadLog builds a completed log from saved plain-text output, one line per
// output line. The exit code is unknown and reported as 0.
func ReadLog(id string, r io.Reader) (*Log, error) {
	l := NewLog(id, nil, "")
	l.Start()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		l.Append(NewLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read build output: %w", err)
	}

	l.Finish(0)
	return l, nil
}

// Start marks the build as running.
func (l *Log) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = true
	l.complete = false
	l.startedAt = time.Now()
}

// Finish marks the build as complete with the given process exit code.
func (l *Log) Finish(exitCode int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = false
	l.complete = true
	l.exitCode = exitCode
	l.finishedAt = time.Now()
}

// Append adds lines to the end of the log.
func (l *Log) Append(lines ...Line) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range lines {
		switch line.Kind {
		case KindError:
			l.errors++
		case KindWarning:
			l.warnings++
		case KindPlain:
		}
		l.lines = append(l.lines, line)
	}
}

// ID returns the build ID.
func (l *Log) ID() string { return l.id }

// Command returns the argv the build was run with.
func (l *Log) Command() []string { return slices.Clone(l.command) }

// Dir returns the build's working directory.
func (l *Log) Dir() string { return l.dir }

// Running reports whether the build process is still producing output.
func (l *Log) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// Complete reports whether the build has finished.
func (l *Log) Complete() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.complete
}

// Len returns the number of lines.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines)
}

// At returns the line at index i, or false if i is out of range.
func (l *Log) At(i int) (Line, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.lines) {
		return Line{}, false
	}
	return l.lines[i], true
}

// Lines returns a copy of all lines.
func (l *Log) Lines() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.lines)
}

// ErrorCount returns the number of error lines.
func (l *Log) ErrorCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.errors
}

// WarningCount returns the number of warning lines.
func (l *Log) WarningCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.warnings
}

// ExitCode returns the process exit code; it is meaningful once Complete is true.
func (l *Log) ExitCode() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.exitCode
}

// Record snapshots the log for persistence.
func (l *Log) Record() Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Record{
		ID:         l.id,
		Command:    slices.Clone(l.command),
		Dir:        l.dir,
		StartedAt:  l.startedAt,
		FinishedAt: l.finishedAt,
		ExitCode:   l.exitCode,
		Lines:      slices.Clone(l.lines),
	}
}

// LogFromRecord rebuilds a completed log from a stored record.
func LogFromRecord(r Record) *Log {
	l := NewLog(r.ID, r.Command, r.Dir)
	l.Append(r.Lines...)
	l.complete = true
	l.exitCode = r.ExitCode
	l.startedAt = r.StartedAt
	l.finishedAt = r.FinishedAt
	return l
}
