package assets

import "creature-arena/internal/element"

// EncounterLore holds atmospheric lines per opponent type. One is picked at
// random when a wild creature appears.
var EncounterLore = map[element.Type][]string{
	element.Fire: {
		"The grass is scorched in a neat circle. Something in the middle is very pleased with itself.",
		"Heat shimmers off the path ahead. It is not the weather.",
	},
	element.Water: {
		"A puddle that was not there a minute ago stares back at you.",
		"You hear splashing from a pond that looks far too small to hide anything.",
	},
	element.Grass: {
		"The bushes rustle against the wind.",
		"A flower turns to follow you. Flowers do not usually do that.",
	},
	element.Electric: {
		"Your hair stands on end. The air smells like a thunderstorm.",
		"A streetlamp flickers in broad daylight.",
	},
	element.Rock: {
		"One of the boulders on the trail has eyes.",
		"Pebbles skitter downhill. Uphill, something grumbles.",
	},
	element.Poison: {
		"A purple haze hangs low over the marsh.",
		"The berries here are the wrong color. So is whatever is eating them.",
	},
	element.Ice: {
		"Frost creeps across the grass in the shape of footprints.",
		"Your breath fogs. It is the middle of summer.",
	},
}

// EncounterLine returns the lore for a type, picking with idx.
func EncounterLine(t element.Type, idx int) string {
	lines := EncounterLore[t]
	if len(lines) == 0 {
		return "A wild creature appears!"
	}
	if idx < 0 {
		idx = -idx
	}
	return lines[idx%len(lines)]
}

// LobbyTips are shown one at a time on the lobby screen.
var LobbyTips = []string{
	"Fire burns grass, grass drinks water, water douses fire.",
	"A defeated wild creature may be caught if you carry a Pokeball.",
	"Abilities unlock as your creatures level up.",
	"Creatures evolve at levels 16 and 36.",
	"Switching creatures does not cost a turn.",
}
