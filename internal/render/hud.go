package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"creature-arena/assets"
	"creature-arena/internal/trainer"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(t *trainer.Trainer, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	col := r.putGlyph(0, hudY+1, assets.GlyphTrainer, tcell.StyleDefault) + 1
	status := fmt.Sprintf("%s   ", t.Name())
	col += r.drawText(col, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	col += r.putGlyph(col, hudY+1, assets.GlyphGold, tcell.StyleDefault) + 1
	col += r.drawText(col, hudY+1, fmt.Sprintf("%d   ", t.Gold()), accentStyle)
	inv := t.Inventory()
	for _, name := range inv.Names() {
		col += r.putGlyph(col, hudY+1, assets.ItemGlyph(name), tcell.StyleDefault) + 1
		col += r.drawText(col, hudY+1, fmt.Sprintf("x%d  ", inv.Count(name)), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	r.drawText(col, hudY+1, fmt.Sprintf("Caught: %d", t.Collected()), dimStyle)

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// DrawLobby renders the party overview between battles.
func (r *Renderer) DrawLobby(t *trainer.Trainer, tip string) {
	r.screen.Clear()
	r.drawText(2, 0, "CREATURE ARENA", titleStyle)
	r.drawText(2, 1, tip, dimStyle)

	y := 3
	r.drawText(2, y, fmt.Sprintf("Party (%d/6)", t.Party().Size()), dimStyle)
	y++
	for _, c := range t.Party().Members() {
		y = r.drawCreature(2, y, "", c)
	}
	if box := t.Box(); len(box) > 0 {
		y++
		r.drawText(2, y, fmt.Sprintf("Box: %d stored", len(box)), dimStyle)
		y++
	}
	y++
	r.drawText(2, y, "[n] Wild encounter   [d] Double battle   [h] Rest   [q] Quit", accentStyle)
}

// DrawStarterSelect renders the starter choice screen.
func (r *Renderer) DrawStarterSelect(starters []assets.StarterDef, selected int) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))

	centerText := func(y int, text string, style tcell.Style) {
		x := max((w-len([]rune(text)))/2, 0)
		r.drawText(x, y, text, style)
	}

	centerText(1, "CREATURE ARENA", titleStyle)
	centerText(2, "Choose your partner", dimStyle)

	// Each starter occupies 2 lines + 1 blank. Start at row 4.
	startY := 4
	for i, s := range starters {
		y := startY + i*3
		prefix := "  "
		lineStyle := normalStyle
		if i == selected {
			prefix = "> "
			lineStyle = highlightStyle
		}
		col := 2 + r.drawText(2, y, fmt.Sprintf("%s[%d] ", prefix, i+1), lineStyle)
		col += r.putGlyph(col, y, s.Emoji, lineStyle) + 1
		r.drawText(col, y, s.Species, lineStyle)
		r.drawText(2, y+1, fmt.Sprintf("      %q", s.Lore), dimStyle)
	}

	hintsY := startY + len(starters)*3 + 1
	centerText(hintsY, "[j/k or ↑/↓] Navigate   [1-9] Quick-select   [Enter] Confirm   [q] Quit", dimStyle)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
