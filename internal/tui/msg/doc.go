// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// This package contains the [tea.Msg] types the TUI can receive, such as
// spinner ticks, build output notifications, build completion, and theme
// reloads, along with the command factories that produce them.
//
// Producer goroutines (the build runner, the config watcher) never touch the
// model directly. They hand a message to the program with Send, and the model
// applies it on the event loop goroutine.
package msg
