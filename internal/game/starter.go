package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"creature-arena/assets"
	"creature-arena/internal/apperr"
)

// runStarterSelect shows the starter screen and blocks until the player
// picks a partner. Returns false if the player quits without choosing.
func (g *Game) runStarterSelect() bool {
	selected := 0
	for {
		g.renderer.DrawStarterSelect(assets.Starters, selected)
		g.screen.Show()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			next, chosen, quit := starterAction(keyToAction(ev), selected, len(assets.Starters))
			if quit {
				return false
			}
			selected = next
			if !chosen {
				continue
			}
			if err := g.chooseStarter(assets.Starters[selected]); err != nil {
				g.logger.Error("starter unavailable", "species", assets.Starters[selected].Species, "error", err)
				return false
			}
			return true
		}
	}
}

// starterAction applies one action to the starter cursor.
func starterAction(a Action, selected, n int) (next int, chosen, quit bool) {
	if n == 0 {
		return 0, false, true
	}
	switch a {
	case ActionUp:
		return (selected - 1 + n) % n, false, false
	case ActionDown:
		return (selected + 1) % n, false, false
	case ActionConfirm:
		return selected, true, false
	case ActionQuit, ActionLeave:
		return selected, false, true
	}
	if idx, ok := slotIndex(a); ok && idx < n {
		return idx, true, false
	}
	return selected, false, false
}

// chooseStarter puts the chosen species in the trainer's party. A catalog
// without the species falls back to a random one.
func (g *Game) chooseStarter(def assets.StarterDef) error {
	c, err := g.dex.Get(def.Species)
	if err != nil {
		g.logger.Warn("starter species missing from catalog", "species", def.Species, "error", err)
		if c = g.dex.Random(g.rng); c == nil {
			return apperr.Unknown("catalog has no species")
		}
	}
	if err := g.trainer.Party().Add(c); err != nil {
		return fmt.Errorf("add starter: %w", err)
	}
	g.addMessage(fmt.Sprintf("%s chose %s as a partner.", g.trainer.Name(), g.renderer.DisplayName(c.Name())))
	g.addMessage(def.Lore)
	return nil
}
