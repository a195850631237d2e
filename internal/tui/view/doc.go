// Package view provides the rendering components of the buildview TUI.
//
// Each component turns state into lines of text with lipgloss styling and
// knows nothing about the event loop:
//
//   - [EditorView]: the document pane, a read-only view of the active
//     document with a cursor that diagnostic jumps move
//   - [RenderModal]: paints a build output frame with its border, title,
//     rows and footer
//   - [Overlay]: splices the painted modal over the editor pane
//   - [HelpBarView]: one-line key help built from the keymap
//   - [RenderStatusBar]: transient messages and the build summary
package view
