package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"

	"creature-arena/internal/ability"
	"creature-arena/internal/apperr"
	"creature-arena/internal/creature"
	"creature-arena/internal/element"
)

// ErrUnknownSpecies is returned by Get for a name the Pokedex lacks.
var ErrUnknownSpecies = apperr.Unknown("unknown species")

// Pokedex is the read-only set of species templates. It is safe to share
// between goroutines; every accessor hands out a fresh clone.
type Pokedex struct {
	species map[string]*creature.Creature
	names   []string
}

// NewPokedex builds species from records and gives each up to four
// abilities drawn with rng: one level-1 ability of its own type when one
// exists, the rest from its type group and the normal group.
func NewPokedex(records []CreatureRecord, abilities *Abilities, rng *rand.Rand, logger *slog.Logger) (*Pokedex, Report) {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Pokedex{species: make(map[string]*creature.Creature)}
	var rep Report
	for _, rec := range records {
		typ, err := element.Parse(rec.Type)
		if err == nil && !typ.Creature() {
			err = apperr.Unknown(fmt.Sprintf("%q is not a creature type", rec.Type))
		}
		if err == nil && rec.Name == "" {
			err = apperr.Unknown("species without a name")
		}
		if _, dup := d.species[rec.Name]; err == nil && dup {
			err = apperr.Unknown(fmt.Sprintf("duplicate species %q", rec.Name))
		}
		if err != nil {
			logger.Warn("species skipped", "name", rec.Name, "error", err)
			rep.skip(rec.Name, err)
			continue
		}
		c := creature.New(creature.Template{
			Name:        rec.Name,
			Type:        typ,
			Tier:        rec.Tier,
			Level:       1,
			HP:          rec.BaseHP,
			Attack:      rec.BaseAttack,
			Defense:     rec.BaseDefense,
			Speed:       rec.BaseSpeed,
			EvolvesInto: rec.EvolvesInto,
		})
		if abilities != nil {
			assign(c, abilities, rng)
		}
		d.species[rec.Name] = c
		d.names = append(d.names, rec.Name)
		rep.Loaded++
	}
	sort.Strings(d.names)
	logger.Debug("species loaded", "count", rep.Loaded, "skipped", len(rep.Skipped))
	return d, rep
}

// ReadPokedex decodes a creature catalog from r.
func ReadPokedex(r io.Reader, f Format, abilities *Abilities, rng *rand.Rand, logger *slog.Logger) (*Pokedex, Report, error) {
	recs, err := decode[CreatureRecord](r, f)
	if err != nil {
		return nil, Report{}, err
	}
	d, rep := NewPokedex(recs, abilities, rng, logger)
	return d, rep, nil
}

// LoadPokedex reads a creature catalog file.
func LoadPokedex(path string, abilities *Abilities, rng *rand.Rand, logger *slog.Logger) (*Pokedex, Report, error) {
	recs, err := open[CreatureRecord](path)
	if err != nil {
		return nil, Report{}, err
	}
	d, rep := NewPokedex(recs, abilities, rng, logger)
	return d, rep, nil
}

// assign fills c with abilities. The pool is shuffled once and walked, so
// the fill always terminates even when the pool holds fewer than four
// distinct abilities.
func assign(c *creature.Creature, abilities *Abilities, rng *rand.Rand) {
	own := abilities.tagged(c.Type())
	pool := append(own, abilities.tagged(element.Normal)...)

	var starters []*ability.Ability
	for _, a := range own {
		if a.LevelRequirement() == 1 {
			starters = append(starters, a)
		}
	}
	if len(starters) > 0 {
		_ = c.AddAbility(starters[rng.Intn(len(starters))].Clone())
	}
	for _, i := range rng.Perm(len(pool)) {
		if len(c.Abilities()) >= creature.MaxAbilities {
			return
		}
		_ = c.AddAbility(pool[i].Clone())
	}
}

// Size returns the number of species.
func (d *Pokedex) Size() int { return len(d.names) }

// Names returns the species names in sorted order.
func (d *Pokedex) Names() []string {
	return append([]string(nil), d.names...)
}

// Get returns a fresh copy of the named species.
func (d *Pokedex) Get(name string) (*creature.Creature, error) {
	c, ok := d.species[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return c.Clone(), nil
}

// Random returns a fresh copy of a uniformly drawn species, or nil when
// the Pokedex is empty.
func (d *Pokedex) Random(rng *rand.Rand) *creature.Creature {
	if len(d.names) == 0 {
		return nil
	}
	return d.species[d.names[rng.Intn(len(d.names))]].Clone()
}

// Tier returns the names of species at the given evolution tier.
func (d *Pokedex) Tier(tier int) []string {
	var out []string
	for _, n := range d.names {
		if d.species[n].Tier() == tier {
			out = append(out, n)
		}
	}
	return out
}
