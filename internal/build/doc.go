// Package build runs build commands and holds their output.
//
// A [Runner] starts the build process and streams stdout and stderr into a
// [Log], one classified [Line] per output line. The Log is append-only and
// safe for concurrent use: the runner writes from its pump goroutines while
// the UI reads after being notified. Finished builds are persisted as
// [Record] values in a [Store].
package build
