package catalog

import (
	"io"
	"log/slog"

	"creature-arena/internal/ability"
	"creature-arena/internal/effect"
	"creature-arena/internal/element"
)

// Abilities holds ability templates grouped by type tag.
type Abilities struct {
	groups map[element.Type][]*ability.Ability
	size   int
}

// NewAbilities builds the ability catalog from records. Records with an
// unknown type or effect are skipped and logged.
func NewAbilities(records []AbilityRecord, logger *slog.Logger) (*Abilities, Report) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Abilities{groups: make(map[element.Type][]*ability.Ability)}
	var rep Report
	for _, rec := range records {
		typ, err := element.Parse(rec.Type)
		if err != nil {
			logger.Warn("ability skipped", "name", rec.Name, "error", err)
			rep.skip(rec.Name, err)
			continue
		}
		kind, err := effect.ParseKind(rec.Effect)
		if err != nil {
			logger.Warn("ability skipped", "name", rec.Name, "error", err)
			rep.skip(rec.Name, err)
			continue
		}
		a.groups[typ] = append(a.groups[typ], ability.New(ability.Def{
			Name:        rec.Name,
			Description: rec.Description,
			Type:        typ,
			Cooldown:    rec.Cooldown,
			Duration:    rec.Duration,
			Power:       rec.Power,
			Level:       rec.Level,
			Effect:      kind,
		}))
		a.size++
		rep.Loaded++
	}
	logger.Debug("abilities loaded", "count", rep.Loaded, "skipped", len(rep.Skipped))
	return a, rep
}

// ReadAbilities decodes an ability catalog from r.
func ReadAbilities(r io.Reader, f Format, logger *slog.Logger) (*Abilities, Report, error) {
	recs, err := decode[AbilityRecord](r, f)
	if err != nil {
		return nil, Report{}, err
	}
	a, rep := NewAbilities(recs, logger)
	return a, rep, nil
}

// LoadAbilities reads an ability catalog file.
func LoadAbilities(path string, logger *slog.Logger) (*Abilities, Report, error) {
	recs, err := open[AbilityRecord](path)
	if err != nil {
		return nil, Report{}, err
	}
	a, rep := NewAbilities(recs, logger)
	return a, rep, nil
}

// Size returns the number of loaded abilities.
func (a *Abilities) Size() int { return a.size }

// Group returns fresh copies of the abilities tagged t. A type with no
// group falls back to the normal group.
func (a *Abilities) Group(t element.Type) []*ability.Ability {
	g, ok := a.groups[t]
	if !ok {
		g = a.groups[element.Normal]
	}
	out := make([]*ability.Ability, 0, len(g))
	for _, ab := range g {
		out = append(out, ab.Clone())
	}
	return out
}

// tagged returns copies of the abilities whose own tag is t, without the
// normal fallback.
func (a *Abilities) tagged(t element.Type) []*ability.Ability {
	var out []*ability.Ability
	for _, ab := range a.Group(t) {
		if ab.Type() == t {
			out = append(out, ab)
		}
	}
	return out
}
