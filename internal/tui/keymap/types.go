// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode, so the same key can mean "move the
// cursor" in the editor and "move the selection" in the build output modal.
package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeEditor      Mode = "editor"       // Document pane has focus
	ModeBuildOutput Mode = "build_output" // Build output modal is open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Movement commands, shared by both modes. In the editor they move the
// cursor; in the modal they move the selection.
const (
	CmdUp       Command = "up"
	CmdDown     Command = "down"
	CmdPageUp   Command = "page_up"
	CmdPageDown Command = "page_down"
	CmdTop      Command = "top"
	CmdBottom   Command = "bottom"

	CmdNextError Command = "next_error"
	CmdPrevError Command = "prev_error"
)

// Build output modal commands
const (
	CmdOpen  Command = "open"  // Jump to the selected diagnostic
	CmdClose Command = "close" // Hide the modal
	CmdCopy  Command = "copy"  // Copy the selected line
)

// Editor commands
const (
	CmdShowOutput  Command = "show_output"
	CmdRerun       Command = "rerun"
	CmdCancelBuild Command = "cancel_build"
	CmdToggleHelp  Command = "toggle_help"
)

// CmdQuit exits the program from any mode.
const CmdQuit Command = "quit"

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For special keys use the
	// tea.KeyType constants (e.g., tea.KeyEnter); for characters use
	// tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a short description for the help bar.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns the key as bubbletea spells it in tea.KeyMsg.String,
// e.g. "ctrl+c", "pgdown", "G".
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns all unique categories in a mode's bindings.
func (km *Keymap) GetCategories(mode Mode) []string {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var categories []string

	for _, binding := range mb.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// HelpBindings converts a mode's bindings into bubbles key.Bindings for the
// help bar, one per command in declaration order. The help key lists every
// key bound to the command, e.g. "j/↓".
func (km *Keymap) HelpBindings(mode Mode) []key.Binding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var order []Command
	keys := make(map[Command][]string)
	desc := make(map[Command]string)
	for _, b := range mb.Bindings {
		if _, seen := keys[b.Command]; !seen {
			order = append(order, b.Command)
			desc[b.Command] = b.Description
		}
		keys[b.Command] = append(keys[b.Command], b.String())
	}

	result := make([]key.Binding, 0, len(order))
	for _, cmd := range order {
		result = append(result, key.NewBinding(
			key.WithKeys(keys[cmd]...),
			key.WithHelp(helpKeyLabel(keys[cmd]), desc[cmd]),
		))
	}
	return result
}

func helpKeyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}
