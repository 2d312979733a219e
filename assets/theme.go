package assets

import "creature-arena/internal/element"

// Emoji constants used on the battle screen.
const (
	GlyphTrainer  = "🧢"
	GlyphFainted  = "💫"
	GlyphCaptured = "🔴"
	GlyphPokeball = "⚪"
	GlyphPotion   = "🧪"
	GlyphGold     = "🪙"
	GlyphCursor   = "👉"
	GlyphTarget   = "🎯"
)

// typeGlyphs maps each type tag to the emoji drawn beside a creature.
var typeGlyphs = map[element.Type]string{
	element.Normal:   "⭐",
	element.Fire:     "🔥",
	element.Water:    "💧",
	element.Grass:    "🌿",
	element.Electric: "⚡",
	element.Rock:     "🪨",
	element.Poison:   "☠️",
	element.Ice:      "❄️",
}

// TypeGlyph returns the emoji for a type tag.
func TypeGlyph(t element.Type) string {
	if g, ok := typeGlyphs[t]; ok {
		return g
	}
	return "❔"
}

// StarterDef is one choice on the starter selection screen.
type StarterDef struct {
	Species string
	Emoji   string
	Lore    string // one-liner shown on the selection screen
}

// Starters is the ordered list of selectable starting creatures.
var Starters = []StarterDef{
	{
		Species: "Charmander",
		Emoji:   "🔥",
		Lore:    "The flame on its tail shows its mood. It is usually in a mood",
	},
	{
		Species: "Squirtle",
		Emoji:   "💧",
		Lore:    "Withdraws into its shell and sprays anyone who argues",
	},
	{
		Species: "Bulbasaur",
		Emoji:   "🌿",
		Lore:    "Carries a seed on its back that grows as it does",
	},
	{
		Species: "Pikachu",
		Emoji:   "⚡",
		Lore:    "Stores electricity in its cheeks and releases it at the worst moment",
	},
}

// LoreOpening is shown when the game begins.
const LoreOpening = "The tall grass rustles. Win battles, grow stronger, and catch what you can."
