// Package buildview implements the build output modal: a fixed-size,
// centred viewport over a growing build log with a keyboard-driven
// selection, and the jump from a selected diagnostic line to its source.
//
// The package is independent of bubbletea. [BuildView.Redraw] produces a
// [Frame] of plain, exactly-sized rows that the tui package paints, and
// [BuildView.RouteKeyAction] consumes abstract [Action] values that the
// keymap produces. All methods must be called from the UI goroutine; the
// [OutputLog] may grow concurrently but is only read here.
package buildview
