// Package diag recognizes compiler and tool diagnostics in build output.
//
// Parse extracts a file:line[:column] location from a line of text, and
// Classify decides whether the line reports an error, a warning, or neither.
// Both work on plain text; callers strip ANSI styling first.
package diag

import (
	"regexp"
	"strconv"
	"strings"
)

// Severity is the classification of one output line.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// Location is the result of parsing a line for a diagnostic position.
// Line and Column are 1-based; zero means absent.
type Location struct {
	Valid    bool
	Filename string
	Line     int
	Column   int
}

// locationPattern is one way tools print a position, with the submatch
// indexes of its file, line and column groups (column may be 0 for none).
type locationPattern struct {
	re              *regexp.Regexp
	file, line, col int
}

var locationPatterns = []locationPattern{
	// gcc, clang, go, rustc (after "-->"), tsc --pretty=false and most unix tools:
	//   /a/b.c:42:7: error: x
	//   ./main.go:12: undefined: y
	{
		re:   regexp.MustCompile(`^\s*(?:In file included from\s+|from\s+|-->\s*)?((?:[A-Za-z]:)?[^\s:(]+):(\d+)(?::(\d+))?(?:[:,]|\s|$)`),
		file: 1, line: 2, col: 3,
	},
	// msvc and dotnet:  src\main.c(12,5): error C2065
	{
		re:   regexp.MustCompile(`^\s*((?:[A-Za-z]:)?[^\s:(]+)\((\d+)(?:,(\d+))?\)\s*:`),
		file: 1, line: 2, col: 3,
	},
	// python tracebacks:  File "app/x.py", line 12, in main
	{
		re:   regexp.MustCompile(`^\s*File "([^"]+)", line (\d+)()`),
		file: 1, line: 2, col: 3,
	},
}

var (
	errorPattern   = regexp.MustCompile(`(?i)\b(fatal error|error|panic)\b|^FAIL\b|^--- FAIL\b`)
	warningPattern = regexp.MustCompile(`(?i)\bwarning\b`)
	notePattern    = regexp.MustCompile(`(?i)\b(note|info|hint)\s*:`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
)

// Parser extracts diagnostic locations. The zero value is ready to use.
type Parser struct{}

// Parse scans text for a file:line[:column] position. A result with Valid
// false means no pattern was found.
func (Parser) Parse(text string) Location {
	return Parse(text)
}

// Parse scans text for a file:line[:column] position using the built-in
// patterns, in order, returning the first match.
func Parse(text string) Location {
	for _, p := range locationPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		file := strings.TrimSpace(m[p.file])
		// "12:34:56 starting" is a timestamp, not a file.
		if file == "" || digitsOnly.MatchString(file) {
			continue
		}

		line, err := strconv.Atoi(m[p.line])
		if err != nil || line <= 0 {
			continue
		}

		col := 0
		if p.col > 0 && m[p.col] != "" {
			col, _ = strconv.Atoi(m[p.col])
		}

		return Location{Valid: true, Filename: file, Line: line, Column: col}
	}
	return Location{}
}

// Classify decides the severity of an output line. Keyword matches win;
// a located line without a keyword (as go and python print them) counts as
// an error unless it is a note.
func Classify(text string) Severity {
	switch {
	case warningPattern.MatchString(text) && !errorKeywordBefore(text):
		return SeverityWarning
	case errorPattern.MatchString(text):
		return SeverityError
	case notePattern.MatchString(text):
		return SeverityNone
	case Parse(text).Valid:
		return SeverityError
	default:
		return SeverityNone
	}
}

// errorKeywordBefore reports whether an error keyword appears ahead of the
// first "warning", as in "error: unused variable [-Werror,-Wunused]: warning".
func errorKeywordBefore(text string) bool {
	e := errorPattern.FindStringIndex(text)
	if e == nil {
		return false
	}
	w := warningPattern.FindStringIndex(text)
	return e[0] < w[0]
}
