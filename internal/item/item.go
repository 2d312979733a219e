// Package item holds the usable and capture items a trainer carries.
package item

import (
	"math/rand"

	"creature-arena/internal/creature"
	"creature-arena/internal/effect"
)

// Item is anything that can sit in an inventory.
type Item interface {
	Name() string
	Description() string
}

// Usable is an item applied to one creature.
type Usable interface {
	Item
	Use(c *creature.Creature) (int, bool)
}

// PokeballName is the inventory key of the capture device.
const PokeballName = "Pokeball"

// CaptureThreshold is the roll in [0,100) below which a capture succeeds.
const CaptureThreshold = 50

// Pokeball is the stateless capture device. It is never consumed.
type Pokeball struct{}

func (Pokeball) Name() string { return PokeballName }
func (Pokeball) Description() string { return "A device for catching wild creatures." }

// AttemptCapture draws one value in [0,100) and succeeds below
// CaptureThreshold, marking the target captured. Callers check
// target.Captured() first; a captured target is never rolled again here.
func (Pokeball) AttemptCapture(rng *rand.Rand, target *creature.Creature) bool {
	if target.Captured() {
		return false
	}
	if rng.Intn(100) >= CaptureThreshold {
		return false
	}
	target.MarkCaptured()
	return true
}

// Potion applies a fixed-magnitude effect. Its amount and duration are not
// jittered.
type Potion struct {
	name        string
	description string
	effect      effect.Kind
	amount      int
	duration    int
}

// NewPotion builds a consumable.
func NewPotion(name, description string, kind effect.Kind, amount, duration int) *Potion {
	return &Potion{name: name, description: description, effect: kind, amount: amount, duration: duration}
}

func (p *Potion) Name() string { return p.name }
func (p *Potion) Description() string { return p.description }
func (p *Potion) Effect() effect.Kind { return p.effect }
func (p *Potion) Amount() int { return p.amount }
func (p *Potion) Duration() int { return p.duration }

// Use applies the potion and returns the amount applied. Heal and the
// stat buffs resolve immediately; other kinds attach a status entry.
// The boolean is false when the potion had no effect.
func (p *Potion) Use(c *creature.Creature) (int, bool) {
	switch p.effect {
	case effect.Heal:
		n := c.Heal(p.amount)
		return n, n > 0
	case effect.BuffAttack:
		c.Buff(creature.StatAttack, p.amount)
	case effect.BuffDefense:
		c.Buff(creature.StatDefense, p.amount)
	case effect.BuffSpeed:
		c.Buff(creature.StatSpeed, p.amount)
	case effect.None:
		return 0, false
	default:
		c.AddStatus(effect.Status{Kind: p.effect, Magnitude: p.amount, Turns: p.duration})
	}
	return p.amount, p.amount > 0
}
