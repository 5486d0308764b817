package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryomx12/farmstand/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings live in lookup tables so the full layout is visible in one
// place and the mapping stays testable.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings. Movement
// accepts arrows, WASD, and vim keys; everything else is single-key.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: map[string]core.Action{
			"w": core.ActionUp, "k": core.ActionUp, "up": core.ActionUp,
			"s": core.ActionDown, "j": core.ActionDown, "down": core.ActionDown,
			"a": core.ActionLeft, "h": core.ActionLeft, "left": core.ActionLeft,
			"d": core.ActionRight, "l": core.ActionRight, "right": core.ActionRight,
			"enter": core.ActionConfirm, " ": core.ActionConfirm,
			"b": core.ActionBack, "esc": core.ActionBack,
			"p": core.ActionPause,
			"r": core.ActionRestart,
		},
		menu: map[string]MenuAction{
			"w": MenuActionUp, "k": MenuActionUp, "up": MenuActionUp,
			"s": MenuActionDown, "j": MenuActionDown, "down": MenuActionDown,
			"enter": MenuActionSelect, " ": MenuActionSelect,
			"b": MenuActionBack, "esc": MenuActionBack,
			"tab": MenuActionRecords,
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return core.ActionQuit, true
	}
	return km.game[key], false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRecords
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return MenuActionQuit
	}
	return km.menu[key]
}
