package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionUp
	ActionDown
	ActionConfirm
	ActionNextAlly
	ActionNextTarget
	ActionSwitch
	ActionPotion
	ActionLeave
	ActionSingle
	ActionDouble
	ActionRest
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. The same table
// serves every screen; each screen ignores what it does not use.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyTab:
		return ActionNextAlly
	case tcell.KeyEscape:
		return ActionLeave
	}

	// Rune keys.
	switch ev.Rune() {
	case '1':
		return ActionSlot1
	case '2':
		return ActionSlot2
	case '3':
		return ActionSlot3
	case '4':
		return ActionSlot4
	case 'k', 'K':
		return ActionUp
	case 'j', 'J':
		return ActionDown
	case ' ':
		return ActionConfirm
	case 't', 'T':
		return ActionNextTarget
	case 's', 'S':
		return ActionSwitch
	case 'p', 'P':
		return ActionPotion
	case 'n', 'N':
		return ActionSingle
	case 'd', 'D':
		return ActionDouble
	case 'h', 'H':
		return ActionRest
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// slotIndex converts a number-key action to a zero-based index.
func slotIndex(a Action) (int, bool) {
	switch a {
	case ActionSlot1:
		return 0, true
	case ActionSlot2:
		return 1, true
	case ActionSlot3:
		return 2, true
	case ActionSlot4:
		return 3, true
	}
	return 0, false
}
