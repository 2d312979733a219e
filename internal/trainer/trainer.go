// Package trainer models the player-level owner of a party: gold, items and
// collected creatures.
package trainer

import (
	"errors"
	"log/slog"

	"creature-arena/internal/apperr"
	"creature-arena/internal/creature"
	"creature-arena/internal/item"
	"creature-arena/internal/party"
)

var ErrNotUsable = apperr.Invalid("item cannot be used on a creature")

// Trainer owns a party, an inventory and a storage box for collected
// creatures that do not fit in the party.
type Trainer struct {
	name      string
	party     *party.Party
	box       []*creature.Creature
	inventory *item.Inventory
	gold      int
	collected int
	logger    *slog.Logger
}

// New returns a trainer with an empty party and inventory.
func New(name string, logger *slog.Logger) *Trainer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trainer{
		name:      name,
		party:     party.New(),
		inventory: item.NewInventory(),
		logger:    logger,
	}
}

func (t *Trainer) Name() string { return t.name }
func (t *Trainer) Party() *party.Party { return t.party }
func (t *Trainer) Inventory() *item.Inventory { return t.inventory }
func (t *Trainer) Gold() int { return t.gold }
func (t *Trainer) Collected() int { return t.collected }

// Box returns the collected creatures stored outside the party.
func (t *Trainer) Box() []*creature.Creature {
	out := make([]*creature.Creature, len(t.box))
	copy(out, t.box)
	return out
}

// GainGold credits n gold.
func (t *Trainer) GainGold(n int) {
	if n > 0 {
		t.gold += n
	}
}

// Collect records a captured creature, restored to full health. It joins
// the party when there is room and goes to the box otherwise.
func (t *Trainer) Collect(c *creature.Creature) {
	c.MarkCaptured()
	c.Revive()
	t.collected++
	err := t.party.Add(c)
	if err == nil {
		return
	}
	if errors.Is(err, party.ErrFull) || errors.Is(err, party.ErrDuplicateName) {
		t.box = append(t.box, c)
		t.logger.Info("creature sent to box", "trainer", t.name, "creature", c.Name(), "reason", err)
		return
	}
	t.logger.Warn("collect failed", "trainer", t.name, "creature", c.Name(), "error", err)
}

// CaptureDevice returns the carried capture device, if any.
func (t *Trainer) CaptureDevice() (item.Pokeball, bool) {
	it, ok := t.inventory.Get(item.PokeballName)
	if !ok {
		return item.Pokeball{}, false
	}
	ball, ok := it.(item.Pokeball)
	return ball, ok
}

// UseItem takes one copy of name from the inventory and applies it to c.
// The item is only consumed when it is usable.
func (t *Trainer) UseItem(name string, c *creature.Creature) (int, error) {
	it, ok := t.inventory.Get(name)
	if !ok {
		return 0, item.ErrNotCarried
	}
	u, ok := it.(item.Usable)
	if !ok {
		return 0, ErrNotUsable
	}
	if _, err := t.inventory.Take(name); err != nil {
		return 0, err
	}
	n, _ := u.Use(c)
	t.logger.Debug("item used", "trainer", t.name, "item", name, "creature", c.Name(), "amount", n)
	return n, nil
}
