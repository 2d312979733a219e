// Package creature implements the battling creature: its stats, abilities,
// lingering statuses and level progression.
package creature

import (
	"fmt"
	"strings"

	"creature-arena/internal/ability"
	"creature-arena/internal/apperr"
	"creature-arena/internal/effect"
	"creature-arena/internal/element"
)

const (
	// MaxAbilities is the number of ability slots a creature has.
	MaxAbilities = 4
	// ExperiencePerLevel is the experience at which a level-up triggers.
	ExperiencePerLevel = 100
	// TierTwoLevel and TierThreeLevel are the evolution thresholds.
	TierTwoLevel   = 16
	TierThreeLevel = 36
)

var (
	ErrAbilitySlotsFull = apperr.Invalid("creature has no free ability slot")
	ErrDuplicateAbility = apperr.Invalid("creature already knows this ability")
)

// Stat names a buffable stat.
type Stat uint8

const (
	StatAttack Stat = iota
	StatDefense
	StatSpeed
)

func (s Stat) String() string {
	switch s {
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	case StatSpeed:
		return "speed"
	}
	return "unknown"
}

// Template holds the fields a creature is built from.
type Template struct {
	Name        string
	Type        element.Type
	Tier        int
	Level       int
	HP          int
	Attack      int
	Defense     int
	Speed       int
	EvolvesInto string
}

// Creature is a mutable battling creature. Health is always clamped to
// [0, MaxHealth] and Fainted is true exactly when health is 0.
type Creature struct {
	name        string
	typ         element.Type
	tier        int
	level       int
	experience  int
	maxHealth   int
	health      int
	attack      int
	defense     int
	speed       int
	evolvesInto string
	fainted     bool
	captured    bool
	abilities   []*ability.Ability
	statuses    []effect.Status
}

// New builds a creature at full health from a template.
func New(t Template) *Creature {
	c := &Creature{
		name:        t.Name,
		typ:         t.Type,
		tier:        max(t.Tier, 1),
		level:       max(t.Level, 1),
		maxHealth:   max(t.HP, 1),
		attack:      max(t.Attack, 0),
		defense:     max(t.Defense, 0),
		speed:       max(t.Speed, 0),
		evolvesInto: t.EvolvesInto,
	}
	c.health = c.maxHealth
	return c
}

// Clone returns an independent copy: stats and owned abilities are copied,
// lingering statuses are not carried over.
func (c *Creature) Clone() *Creature {
	cp := *c
	cp.abilities = make([]*ability.Ability, len(c.abilities))
	for i, a := range c.abilities {
		cp.abilities[i] = a.Clone()
	}
	cp.statuses = nil
	return &cp
}

func (c *Creature) Name() string { return c.name }
func (c *Creature) Type() element.Type { return c.typ }
func (c *Creature) Tier() int { return c.tier }
func (c *Creature) Level() int { return c.level }
func (c *Creature) Experience() int { return c.experience }
func (c *Creature) MaxHealth() int { return c.maxHealth }
func (c *Creature) Health() int { return c.health }
func (c *Creature) Attack() int { return c.attack }
func (c *Creature) Defense() int { return c.defense }
func (c *Creature) Speed() int { return c.speed }
func (c *Creature) EvolvesInto() string { return c.evolvesInto }
func (c *Creature) Fainted() bool { return c.fainted }
func (c *Creature) Captured() bool { return c.captured }

// MarkCaptured flags the creature as collected. Repeated calls are no-ops.
func (c *Creature) MarkCaptured() { c.captured = true }

// PowerPoints is the creature's contribution to its party's strength.
func (c *Creature) PowerPoints() int {
	return (c.health+c.attack+c.defense+c.speed)/5 + c.level
}

// Abilities returns the owned abilities in slot order.
func (c *Creature) Abilities() []*ability.Ability {
	out := make([]*ability.Ability, len(c.abilities))
	copy(out, c.abilities)
	return out
}

// Ability returns the ability in slot i.
func (c *Creature) Ability(i int) (*ability.Ability, bool) {
	if i < 0 || i >= len(c.abilities) {
		return nil, false
	}
	return c.abilities[i], true
}

// Owns reports whether a is one of c's own ability instances.
func (c *Creature) Owns(a *ability.Ability) bool {
	for _, own := range c.abilities {
		if own == a {
			return true
		}
	}
	return false
}

// UnlockedAbilities returns the abilities usable at the current level.
func (c *Creature) UnlockedAbilities() []*ability.Ability {
	var out []*ability.Ability
	for _, a := range c.abilities {
		if a.Unlocked() {
			out = append(out, a)
		}
	}
	return out
}

// AddAbility appends a to the ability list and unlocks it when the level
// requirement is already met. Names are unique per creature.
func (c *Creature) AddAbility(a *ability.Ability) error {
	for _, own := range c.abilities {
		if own == a || own.Name() == a.Name() {
			return ErrDuplicateAbility
		}
	}
	if len(c.abilities) >= MaxAbilities {
		return ErrAbilitySlotsFull
	}
	a.UnlockFor(c.level)
	c.abilities = append(c.abilities, a)
	return nil
}

// Damage lowers health by n, clamped at zero, and returns the health
// actually lost. Reaching zero faints the creature.
func (c *Creature) Damage(n int) int {
	if n <= 0 {
		return 0
	}
	lost := min(n, c.health)
	c.health -= lost
	if c.health == 0 {
		c.fainted = true
	}
	return lost
}

// Heal raises health by n up to the maximum and returns the health gained.
// A fainted creature cannot be healed; use Revive.
func (c *Creature) Heal(n int) int {
	if n <= 0 || c.fainted {
		return 0
	}
	gained := min(n, c.maxHealth-c.health)
	c.health += gained
	return gained
}

// Buff raises a stat by n.
func (c *Creature) Buff(s Stat, n int) {
	if n <= 0 {
		return
	}
	switch s {
	case StatAttack:
		c.attack += n
	case StatDefense:
		c.defense += n
	case StatSpeed:
		c.speed += n
	}
}

// Revive clears the faint flag and restores full health.
func (c *Creature) Revive() {
	c.fainted = false
	c.health = c.maxHealth
}

// AddStatus attaches one lingering status entry.
func (c *Creature) AddStatus(s effect.Status) {
	c.statuses = append(c.statuses, s)
}

// Statuses returns the attached statuses in application order.
func (c *Creature) Statuses() []effect.Status {
	out := make([]effect.Status, len(c.statuses))
	copy(out, c.statuses)
	return out
}

func (c *Creature) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] lvl %d exp %d hp %d/%d atk %d def %d spd %d pp %d tier %d",
		c.name, c.typ, c.level, c.experience, c.health, c.maxHealth,
		c.attack, c.defense, c.speed, c.PowerPoints(), c.tier)
	if c.fainted {
		sb.WriteString(" fainted")
	}
	if c.captured {
		sb.WriteString(" captured")
	}
	return sb.String()
}
