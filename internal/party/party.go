// Package party implements the player's roster of creatures.
package party

import (
	"sort"

	"creature-arena/internal/apperr"
	"creature-arena/internal/creature"
)

// MaxSize is the roster capacity.
const MaxSize = 6

var (
	ErrFull          = apperr.Invalid("party is full")
	ErrDuplicateName = apperr.Invalid("a creature with this name is already in the party")
	ErrNotInParty    = apperr.Invalid("creature is not in the party")
	ErrLastMember    = apperr.Invalid("party must keep at least one creature")
)

// Party is an ordered roster kept sorted by descending speed. Its power
// points are maintained incrementally: each member's contribution is
// recorded when it joins and that same value is subtracted when it leaves.
type Party struct {
	members      []*creature.Creature
	contribution map[*creature.Creature]int
	powerPoints  int
}

// New returns an empty party.
func New() *Party {
	return &Party{contribution: make(map[*creature.Creature]int)}
}

// Add inserts c and re-sorts the roster. Ties keep insertion order.
func (p *Party) Add(c *creature.Creature) error {
	if len(p.members) >= MaxSize {
		return ErrFull
	}
	for _, m := range p.members {
		if m == c || m.Name() == c.Name() {
			return ErrDuplicateName
		}
	}
	p.members = append(p.members, c)
	pp := c.PowerPoints()
	p.contribution[c] = pp
	p.powerPoints += pp
	sort.SliceStable(p.members, func(i, j int) bool {
		return p.members[i].Speed() > p.members[j].Speed()
	})
	return nil
}

// Remove takes c out of the roster. The roster never drops below one
// member, and a failed removal changes nothing.
func (p *Party) Remove(c *creature.Creature) error {
	idx := p.indexOf(c)
	if idx < 0 {
		return ErrNotInParty
	}
	if len(p.members) <= 1 {
		return ErrLastMember
	}
	p.members = append(p.members[:idx], p.members[idx+1:]...)
	p.powerPoints -= p.contribution[c]
	delete(p.contribution, c)
	return nil
}

func (p *Party) indexOf(c *creature.Creature) int {
	for i, m := range p.members {
		if m == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is in the roster.
func (p *Party) Contains(c *creature.Creature) bool {
	return p.indexOf(c) >= 0
}

// Size returns the number of members.
func (p *Party) Size() int { return len(p.members) }

// PowerPoints returns the aggregate party strength.
func (p *Party) PowerPoints() int { return p.powerPoints }

// Members returns the roster in order.
func (p *Party) Members() []*creature.Creature {
	out := make([]*creature.Creature, len(p.members))
	copy(out, p.members)
	return out
}

// First returns the fastest member, or nil for an empty party.
func (p *Party) First() *creature.Creature {
	if len(p.members) == 0 {
		return nil
	}
	return p.members[0]
}

// MaxLevel returns the highest member level, 0 for an empty party.
func (p *Party) MaxLevel() int {
	lvl := 0
	for _, m := range p.members {
		lvl = max(lvl, m.Level())
	}
	return lvl
}

// Alive returns the number of members that have not fainted.
func (p *Party) Alive() int {
	n := 0
	for _, m := range p.members {
		if !m.Fainted() {
			n++
		}
	}
	return n
}

// NextAvailable returns the first non-fainted member in roster order that
// is not one of exclude, or nil.
func (p *Party) NextAvailable(exclude ...*creature.Creature) *creature.Creature {
outer:
	for _, m := range p.members {
		if m.Fainted() {
			continue
		}
		for _, x := range exclude {
			if m == x {
				continue outer
			}
		}
		return m
	}
	return nil
}

// ReviveAll restores every member to full health.
func (p *Party) ReviveAll() {
	for _, m := range p.members {
		m.Revive()
	}
}
