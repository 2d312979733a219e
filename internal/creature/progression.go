package creature

// Growth summarizes one level-up.
type Growth struct {
	Level    int
	Tier     int
	Evolved  bool
	Unlocked []string
}

// GainExperience adds n experience points. Crossing the threshold triggers
// exactly one level-up and resets experience to zero, however large n is.
func (c *Creature) GainExperience(n int) (Growth, bool) {
	if n <= 0 {
		return Growth{}, false
	}
	c.experience += n
	if c.experience < ExperiencePerLevel {
		return Growth{}, false
	}
	return c.LevelUp(), true
}

// LevelUp raises the level by one. Every stat grows by stat/50, health is
// refilled to the new maximum, newly eligible abilities unlock and the
// evolution tier advances at the tier thresholds when an evolution target
// exists.
func (c *Creature) LevelUp() Growth {
	c.level++
	c.experience = 0

	g := Growth{Level: c.level}
	if c.evolvesInto != "" {
		if c.level >= TierTwoLevel && c.tier == 1 {
			c.tier++
			g.Evolved = true
		}
		if c.level >= TierThreeLevel && c.tier == 2 {
			c.tier++
			g.Evolved = true
		}
	}
	g.Tier = c.tier

	for _, a := range c.abilities {
		if a.UnlockFor(c.level) {
			g.Unlocked = append(g.Unlocked, a.Name())
		}
	}

	c.maxHealth += c.maxHealth / 50
	c.health = c.maxHealth
	c.fainted = false
	c.attack += c.attack / 50
	c.defense += c.defense / 50
	c.speed += c.speed / 50
	return g
}

// SetStats levels the creature up to level, then overrides its stats. Used
// to scale wild creatures; a lower level than the current one only
// overrides stats.
func (c *Creature) SetStats(level, hp, attack, defense, speed int) {
	for c.level < level {
		c.LevelUp()
	}
	c.maxHealth = max(hp, 1)
	c.health = c.maxHealth
	c.fainted = false
	c.attack = max(attack, 0)
	c.defense = max(defense, 0)
	c.speed = max(speed, 0)
}
