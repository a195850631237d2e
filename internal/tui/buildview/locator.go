package buildview

import (
	"fmt"
	"path/filepath"

	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/diag"
	"github.com/Iron-Ham/buildview/internal/document"
	"github.com/Iron-Ham/buildview/internal/errors"
	"github.com/Iron-Ham/buildview/internal/logging"
)

// OutputLog is the read side of a build log. *build.Log satisfies it.
type OutputLog interface {
	Running() bool
	Complete() bool
	Len() int
	At(i int) (build.Line, bool)
	ErrorCount() int
	WarningCount() int
}

// Parser finds a file position in a line of text. diag.Parser satisfies it.
type Parser interface {
	Parse(text string) diag.Location
}

// Registry finds, loads and activates documents. *document.Registry
// satisfies it.
type Registry interface {
	FindByPath(path string) (*document.Document, bool)
	Load(path string) (*document.Document, error)
	Activate(doc *document.Document)
}

// Editor is the pane showing the active document.
type Editor interface {
	MoveCursorTo(line, column int)
	Refresh()
}

// Jump is a resolved diagnostic. Filename is the path that was opened;
// Line and Column are 1-based as printed by the tool (Column may be 0).
type Jump struct {
	Filename string
	Line     int
	Column   int
}

// String formats the jump as file:line.
func (j Jump) String() string {
	return fmt.Sprintf("%s:%d", j.Filename, j.Line)
}

// Locator resolves a line of build output to a cursor position in a
// document. BaseDir is the build's working directory; relative paths in
// diagnostics are taken relative to it.
type Locator struct {
	Parser   Parser
	Registry Registry
	Editor   Editor
	BaseDir  string
	Logger   *logging.Logger
}

// Locate parses text, opens (loading if needed) and activates the file it
// names, and moves the editor cursor there.
//
// It returns errors.ErrNoDiagnostic when text has no position, and a
// *errors.LocateError when the file cannot be loaded. In both cases the
// registry and editor are left untouched.
func (l *Locator) Locate(text string) (Jump, error) {
	loc := l.Parser.Parse(text)
	if !loc.Valid {
		return Jump{}, errors.ErrNoDiagnostic
	}

	path := l.resolve(loc.Filename)

	doc, ok := l.Registry.FindByPath(path)
	if !ok {
		var err error
		doc, err = l.Registry.Load(path)
		if err != nil {
			l.logger().Warn("diagnostic target could not be loaded", "path", path, "error", err)
			return Jump{}, errors.NewLocateError(loc.Filename, err).WithLine(loc.Line)
		}
	}
	l.Registry.Activate(doc)

	l.Editor.MoveCursorTo(max(loc.Line-1, 0), max(loc.Column-1, 0))
	l.Editor.Refresh()

	jump := Jump{Filename: path, Line: loc.Line, Column: loc.Column}
	l.logger().Debug("jumped to diagnostic", "path", path, "line", loc.Line, "column", loc.Column)
	return jump, nil
}

func (l *Locator) resolve(filename string) string {
	if filepath.IsAbs(filename) || l.BaseDir == "" {
		return filepath.Clean(filename)
	}
	return filepath.Join(l.BaseDir, filename)
}

func (l *Locator) logger() *logging.Logger {
	if l.Logger == nil {
		return logging.NopLogger()
	}
	return l.Logger
}
