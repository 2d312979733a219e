package element

const (
	SuperEffective   = 2.0
	Neutral          = 1.0
	NotVeryEffective = 0.5
)

type matchup struct {
	strong []Type
	weak   []Type
}

// chart is keyed by the attacking type only. It is intentionally not
// symmetric.
var chart = map[Type]matchup{
	Fire:     {strong: []Type{Grass, Ice}, weak: []Type{Water, Fire}},
	Water:    {strong: []Type{Fire, Rock}, weak: []Type{Grass, Water}},
	Grass:    {strong: []Type{Rock}, weak: []Type{Fire, Poison, Grass}},
	Electric: {strong: []Type{Water}, weak: []Type{Grass, Electric}},
	Rock:     {strong: []Type{Fire, Ice}, weak: []Type{Rock}},
	Poison:   {strong: []Type{Grass}, weak: []Type{Poison, Rock}},
	Ice:      {strong: []Type{Grass}, weak: []Type{Fire, Water, Ice}},
}

// Effectiveness returns the damage multiplier for an attacker of type atk
// hitting a defender of type def: 2, 1 or 0.5.
func Effectiveness(atk, def Type) float64 {
	m, ok := chart[atk]
	if !ok {
		return Neutral
	}
	for _, t := range m.strong {
		if t == def {
			return SuperEffective
		}
	}
	for _, t := range m.weak {
		if t == def {
			return NotVeryEffective
		}
	}
	return Neutral
}
