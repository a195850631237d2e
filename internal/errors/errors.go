// Package errors provides centralized error definitions and error handling utilities
// for buildview. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - LocateError: a diagnostic location that could not be opened
//   - BuildError: a build command that could not be started or run
//   - StoreError: build history persistence failures
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
//	err := errors.NewLocateError("src/main.c", errors.ErrDocumentLoad).WithLine(42)
//
//	if errors.Is(err, errors.ErrDocumentLoad) { ... }
//
//	var locErr *errors.LocateError
//	if errors.As(err, &locErr) { ... }
//
// Every error produced inside the TUI loop is turned into a status line with
// [UserMessage]; none of them are fatal.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Navigation sentinel errors
var (
	// ErrNoDiagnostic indicates that the selected line has no file:line pattern.
	ErrNoDiagnostic = New("no error pattern found")
	// ErrNoSelection indicates that there is no output line to act on.
	ErrNoSelection = New("no line selected")
	// ErrNothingToCopy indicates that the selected line is empty.
	ErrNothingToCopy = New("nothing to copy")
	// ErrDocumentLoad indicates that a target document could not be loaded.
	ErrDocumentLoad = New("document could not be loaded")
	// ErrDocumentTooLarge indicates that a document exceeds the configured size cap.
	ErrDocumentTooLarge = New("document too large")
)

// Build sentinel errors
var (
	// ErrBuildStart indicates that the build process could not be started.
	ErrBuildStart = New("build failed to start")
	// ErrBuildRunning indicates that a build is already running.
	ErrBuildRunning = New("build already running")
	// ErrEmptyCommand indicates that no build command was configured.
	ErrEmptyCommand = New("no build command configured")
)

// Store sentinel errors
var (
	// ErrBuildNotFound indicates that a stored build could not be found.
	ErrBuildNotFound = New("build not found")
	// ErrRecordCorrupted indicates that a stored build record could not be decoded.
	ErrRecordCorrupted = New("build record corrupted")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error
// -----------------------------------------------------------------------------

// BuildviewError is the base interface for all buildview errors.
type BuildviewError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// in the status line.
	IsUserFacing() bool
}

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error { return e.cause }

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity { return e.severity }

func (e *baseError) IsUserFacing() bool { return e.userFacing }

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// LocateError represents a diagnostic target that could not be resolved.
//
// Example:
//
//	err := errors.NewLocateError("src/app.c", errors.ErrDocumentLoad).WithLine(12)
//	fmt.Println(err) // "locate error [file=src/app.c, line=12]: document could not be loaded"
type LocateError struct {
	baseError
	Filename string
	Line     int
}

// NewLocateError creates a new LocateError for filename.
func NewLocateError(filename string, cause error) *LocateError {
	return &LocateError{
		baseError: baseError{
			message:    "cannot open " + filename,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Filename: filename,
	}
}

// WithLine records the 1-based line the jump was aimed at.
func (e *LocateError) WithLine(line int) *LocateError {
	e.Line = line
	return e
}

// Error returns the formatted error message.
func (e *LocateError) Error() string {
	parts := []string{"file=" + e.Filename}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}
	prefix := fmt.Sprintf("locate error [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// Is checks if this error matches the target.
func (e *LocateError) Is(target error) bool {
	if _, ok := target.(*LocateError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// BuildError represents errors from running a build command.
//
// Example:
//
//	err := errors.NewBuildError("start failed", errors.ErrBuildStart).WithCommand([]string{"make"})
type BuildError struct {
	baseError
	Command  []string
	ExitCode int
}

// NewBuildError creates a new BuildError.
func NewBuildError(message string, cause error) *BuildError {
	return &BuildError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithCommand records the argv of the failed build.
func (e *BuildError) WithCommand(argv []string) *BuildError {
	e.Command = argv
	return e
}

// WithExitCode records the process exit code.
func (e *BuildError) WithExitCode(code int) *BuildError {
	e.ExitCode = code
	return e
}

// Error returns the formatted error message.
func (e *BuildError) Error() string {
	prefix := "build error"
	if len(e.Command) > 0 {
		prefix = fmt.Sprintf("build error [cmd=%s]", strings.Join(e.Command, " "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *BuildError) Is(target error) bool {
	if _, ok := target.(*BuildError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// StoreError represents failures reading or writing build history.
type StoreError struct {
	baseError
	BuildID string
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithBuildID adds the build ID to the error context.
func (e *StoreError) WithBuildID(id string) *StoreError {
	e.BuildID = id
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	prefix := "store error"
	if e.BuildID != "" {
		prefix = fmt.Sprintf("store error [build=%s]", e.BuildID)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *StoreError) Is(target error) bool {
	if _, ok := target.(*StoreError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("build", "20260101-120000")
//	fmt.Println(err) // "build '20260101-120000' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("must be positive").WithField("store.max_builds").WithValue(-1)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, "field="+e.Field)
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error is safe to display in the UI.
// Bare navigation sentinels count as user-facing.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var bvErr BuildviewError
	if As(err, &bvErr) {
		return bvErr.IsUserFacing()
	}

	return isNavigationSentinel(err)
}

func isNavigationSentinel(err error) bool {
	return Is(err, ErrNoDiagnostic) || Is(err, ErrNoSelection) || Is(err, ErrNothingToCopy)
}

// GetSeverity returns the severity of an error.
// Navigation sentinels are informational; unknown errors are SeverityError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var bvErr BuildviewError
	if As(err, &bvErr) {
		return bvErr.Severity()
	}

	if isNavigationSentinel(err) {
		return SeverityInfo
	}
	return SeverityError
}

// UserMessage renders err as a one-line status message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var locErr *LocateError
	if As(err, &locErr) {
		if locErr.cause != nil {
			return fmt.Sprintf("Cannot open %s: %v", locErr.Filename, locErr.cause)
		}
		return "Cannot open " + locErr.Filename
	}

	switch {
	case Is(err, ErrNoDiagnostic):
		return "No error pattern found on selected line"
	case Is(err, ErrNoSelection):
		return "No output line selected"
	case Is(err, ErrNothingToCopy):
		return "Nothing to copy"
	case Is(err, ErrBuildRunning):
		return "A build is already running"
	case Is(err, ErrEmptyCommand):
		return "No build command configured"
	}

	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
