package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to browser actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a browser action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionStats
	MenuActionToggleSound
	MenuActionCycleColor
)

// MapKeyToMenuAction translates a key to a browser action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionStats
	case "m":
		return MenuActionToggleSound
	case "c":
		return MenuActionCycleColor
	}

	return MenuActionNone
}
