package render

import (
	"github.com/gdamore/tcell/v2"

	"creature-arena/internal/element"
)

// Shared text styles.
var (
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	accentStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))
)

// typeColors tints creature and ability names by type. Emoji carry their own
// colors, so only text is tinted.
var typeColors = map[element.Type]tcell.Color{
	element.Normal:   tcell.ColorWhite,
	element.Fire:     tcell.NewRGBColor(255, 120, 60),
	element.Water:    tcell.NewRGBColor(80, 160, 255),
	element.Grass:    tcell.NewRGBColor(90, 200, 90),
	element.Electric: tcell.NewRGBColor(250, 220, 60),
	element.Rock:     tcell.NewRGBColor(190, 160, 110),
	element.Poison:   tcell.NewRGBColor(180, 90, 200),
	element.Ice:      tcell.NewRGBColor(150, 230, 240),
}

// TypeColor returns the text color for a type tag.
func TypeColor(t element.Type) tcell.Color {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return tcell.ColorWhite
}
