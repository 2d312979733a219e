package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"1", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), ActionSlot1},
		{"4", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), ActionSlot4},
		{"5 unmapped", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), ActionNone},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionUp},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), ActionUp},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), ActionDown},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionConfirm},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionNextAlly},
		{"t", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), ActionNextTarget},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionSwitch},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPotion},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionLeave},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionSingle},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), ActionDouble},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionRest},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"x unmapped", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyToAction(tt.ev); got != tt.want {
				t.Errorf("keyToAction(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestSlotIndex(t *testing.T) {
	for i, a := range []Action{ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4} {
		if got, ok := slotIndex(a); !ok || got != i {
			t.Errorf("slotIndex(%d) = %d, %v; want %d, true", a, got, ok, i)
		}
	}
	if _, ok := slotIndex(ActionSwitch); ok {
		t.Error("slotIndex(ActionSwitch) should not be a slot")
	}
}
