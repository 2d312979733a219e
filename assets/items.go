package assets

import (
	"creature-arena/internal/effect"
	"creature-arena/internal/item"
)

// Names of the potions carried in the starter kit.
const (
	PotionHeal   = "Heal Potion"
	PotionAttack = "Attack Potion"
	PotionGuard  = "Guard Potion"
)

// KitEntry is one stack of the starter kit.
type KitEntry struct {
	Item  item.Item
	Count int
}

// StarterKit returns the items a new trainer carries. Potions are fresh
// values on every call.
func StarterKit() []KitEntry {
	return []KitEntry{
		{Item: item.Pokeball{}, Count: 1},
		{Item: item.NewPotion(PotionHeal, "Restores 20 health.", effect.Heal, 20, 0), Count: 3},
		{Item: item.NewPotion(PotionAttack, "Raises attack by 20.", effect.BuffAttack, 20, 0), Count: 1},
		{Item: item.NewPotion(PotionGuard, "Raises defense by 10.", effect.BuffDefense, 10, 0), Count: 1},
	}
}

// itemGlyphs maps item names to display emoji.
var itemGlyphs = map[string]string{
	item.PokeballName: GlyphPokeball,
	PotionHeal:        GlyphPotion,
	PotionAttack:      "💪",
	PotionGuard:       "🛡️",
}

// ItemGlyph returns the emoji for an item name.
func ItemGlyph(name string) string {
	if g, ok := itemGlyphs[name]; ok {
		return g
	}
	return "📦" // fallback
}
