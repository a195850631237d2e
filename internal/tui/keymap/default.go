package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default buildview key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeEditor:      defaultEditorBindings(),
			ModeBuildOutput: defaultBuildOutputBindings(),
		},
	}
}

func defaultEditorBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeEditor,
		Bindings: []KeyBinding{
			// Build
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdShowOutput, Description: "build output", Category: "Build"},
			{KeyType: tea.KeyF7, Command: CmdShowOutput, Description: "build output", Category: "Build"},
			{KeyType: tea.KeyRunes, Rune: ']', Command: CmdNextError, Description: "next error", Category: "Build"},
			{KeyType: tea.KeyRunes, Rune: '[', Command: CmdPrevError, Description: "prev error", Category: "Build"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRerun, Description: "rerun", Category: "Build"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdCancelBuild, Description: "stop build", Category: "Build"},

			// Cursor
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdDown, Description: "down", Category: "Cursor"},
			{KeyType: tea.KeyDown, Command: CmdDown, Description: "down", Category: "Cursor"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdUp, Description: "up", Category: "Cursor"},
			{KeyType: tea.KeyUp, Command: CmdUp, Description: "up", Category: "Cursor"},
			{KeyType: tea.KeyPgDown, Command: CmdPageDown, Description: "page down", Category: "Cursor"},
			{KeyType: tea.KeyCtrlF, Command: CmdPageDown, Description: "page down", Category: "Cursor"},
			{KeyType: tea.KeyPgUp, Command: CmdPageUp, Description: "page up", Category: "Cursor"},
			{KeyType: tea.KeyCtrlB, Command: CmdPageUp, Description: "page up", Category: "Cursor"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdTop, Description: "top", Category: "Cursor"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdBottom, Description: "bottom", Category: "Cursor"},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Category: "Application"},
		},
	}
}

func defaultBuildOutputBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeBuildOutput,
		Bindings: []KeyBinding{
			// Selection
			{KeyType: tea.KeyUp, Command: CmdUp, Description: "up", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdUp, Description: "up", Category: "Selection"},
			{KeyType: tea.KeyDown, Command: CmdDown, Description: "down", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdDown, Description: "down", Category: "Selection"},
			{KeyType: tea.KeyPgUp, Command: CmdPageUp, Description: "page up", Category: "Selection"},
			{KeyType: tea.KeyCtrlB, Command: CmdPageUp, Description: "page up", Category: "Selection"},
			{KeyType: tea.KeyPgDown, Command: CmdPageDown, Description: "page down", Category: "Selection"},
			{KeyType: tea.KeyCtrlF, Command: CmdPageDown, Description: "page down", Category: "Selection"},
			{KeyType: tea.KeyHome, Command: CmdTop, Description: "first line", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdTop, Description: "first line", Category: "Selection"},
			{KeyType: tea.KeyEnd, Command: CmdBottom, Description: "last line", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdBottom, Description: "last line", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNextError, Description: "next error", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'N', Command: CmdPrevError, Description: "prev error", Category: "Selection"},

			// Actions
			{KeyType: tea.KeyEnter, Command: CmdOpen, Description: "open", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdCopy, Description: "copy line", Category: "Actions"},
			{KeyType: tea.KeyEsc, Command: CmdClose, Description: "close", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdClose, Description: "close", Category: "Actions"},

			// Application
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "quit", Category: "Application"},
		},
	}
}
