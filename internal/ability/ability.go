// Package ability defines combat actions.
package ability

import (
	"fmt"
	"math/rand"

	"creature-arena/internal/effect"
	"creature-arena/internal/element"
)

// Ability is one combat action. Everything but the unlock flag is fixed at
// construction; unlocking is one-way.
type Ability struct {
	name        string
	description string
	typ         element.Type
	cooldown    int
	duration    int
	power       int
	levelReq    int
	effect      effect.Kind
	unlocked    bool
}

// Def carries the catalog fields of an ability.
type Def struct {
	Name        string
	Description string
	Type        element.Type
	Cooldown    int
	Duration    int
	Power       int
	Level       int
	Effect      effect.Kind
}

// New builds a locked ability from its definition.
func New(d Def) *Ability {
	lvl := d.Level
	if lvl < 1 {
		lvl = 1
	}
	return &Ability{
		name:        d.Name,
		description: d.Description,
		typ:         d.Type,
		cooldown:    d.Cooldown,
		duration:    d.Duration,
		power:       d.Power,
		levelReq:    lvl,
		effect:      d.Effect,
	}
}

// Clone returns an independent copy, unlock state included.
func (a *Ability) Clone() *Ability {
	c := *a
	return &c
}

// Def returns the catalog fields of a.
func (a *Ability) Def() Def {
	return Def{
		Name:        a.name,
		Description: a.description,
		Type:        a.typ,
		Cooldown:    a.cooldown,
		Duration:    a.duration,
		Power:       a.power,
		Level:       a.levelReq,
		Effect:      a.effect,
	}
}

func (a *Ability) Name() string { return a.name }
func (a *Ability) Description() string { return a.description }
func (a *Ability) Type() element.Type { return a.typ }
func (a *Ability) Cooldown() int { return a.cooldown }
func (a *Ability) Duration() int { return a.duration }
func (a *Ability) Power() int { return a.power }
func (a *Ability) LevelRequirement() int { return a.levelReq }
func (a *Ability) Effect() effect.Kind { return a.effect }
func (a *Ability) Unlocked() bool { return a.unlocked }

// Unlock marks the ability usable. It cannot be relocked.
func (a *Ability) Unlock() { a.unlocked = true }

// UnlockFor unlocks a when level meets the requirement and reports whether
// this call changed the flag.
func (a *Ability) UnlockFor(level int) bool {
	if a.unlocked || level < a.levelReq {
		return false
	}
	a.unlocked = true
	return true
}

// Amount rolls the jittered magnitude of one use.
func (a *Ability) Amount(rng *rand.Rand) int {
	return effect.Amount(rng, a.power)
}

func (a *Ability) String() string {
	return fmt.Sprintf("%s (%s, %s, pow %d, lvl %d, unlocked=%t)",
		a.name, a.typ, a.effect, a.power, a.levelReq, a.unlocked)
}
