// Package spawn generates wild opponents scaled to the player's party.
package spawn

import (
	"math/rand"

	"creature-arena/internal/creature"
	"creature-arena/internal/party"
)

// Spread is how far a wild level or stat bonus may stray from its anchor.
const Spread = 2

// Source hands out fresh species copies.
type Source interface {
	Random(rng *rand.Rand) *creature.Creature
}

// Wild draws a random species and scales it to p: the level lands within
// Spread of the party's highest level, and every stat gains the party's
// power points divided by five, give or take Spread. Returns nil when src
// has no species.
func Wild(src Source, p *party.Party, rng *rand.Rand) *creature.Creature {
	c := src.Random(rng)
	if c == nil {
		return nil
	}
	level := max(roll(rng, p.MaxLevel()), 1)
	bonus := p.PowerPoints() / 5
	c.SetStats(
		level,
		c.MaxHealth()+max(roll(rng, bonus), 0),
		c.Attack()+max(roll(rng, bonus), 0),
		c.Defense()+max(roll(rng, bonus), 0),
		c.Speed()+max(roll(rng, bonus), 0),
	)
	return c
}

// Pair draws two wild opponents for a double battle.
func Pair(src Source, p *party.Party, rng *rand.Rand) [2]*creature.Creature {
	return [2]*creature.Creature{Wild(src, p, rng), Wild(src, p, rng)}
}

// roll returns a uniform integer in [anchor-Spread, anchor+Spread].
func roll(rng *rand.Rand, anchor int) int {
	return anchor - Spread + rng.Intn(2*Spread+1)
}
