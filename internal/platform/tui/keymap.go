package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skybird/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Terminals report no key release, so Space toggles: it starts a charge,
// and the next Space releases it. charging tells which of the two applies.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, charging bool) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ":
		if charging {
			return core.ActionChargeRelease, false
		}
		return core.ActionChargeStart, false
	case "w", "up":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapMouse translates a left button press and any release into charge actions.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.ActionChargeStart
		}
	case tea.MouseActionRelease:
		return core.ActionChargeRelease
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
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
		return MenuActionScoreboard
	}

	return MenuActionNone
}
