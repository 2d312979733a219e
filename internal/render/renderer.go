package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"creature-arena/assets"
	"creature-arena/internal/battle"
	"creature-arena/internal/creature"
	"creature-arena/internal/effect"
	"creature-arena/internal/element"
)

// hudRows is the height reserved at the bottom of the screen for the HUD.
const hudRows = 5

// Cursor marks the acting ally and the targeted enemy on the battle screen.
type Cursor struct {
	Attacker int
	Target   int
}

// Renderer draws game screens onto a tcell screen. A Renderer belongs to
// one screen and is not safe for concurrent use.
type Renderer struct {
	screen tcell.Screen
	title  cases.Caser
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		title:  cases.Title(language.English),
	}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// DisplayName title-cases a catalog name for display.
func (r *Renderer) DisplayName(s string) string {
	return r.title.String(strings.TrimSpace(s))
}

// DrawBattle renders both sides of a session, the acting ally's abilities
// and the key hints. The HUD is drawn separately.
func (r *Renderer) DrawBattle(s *battle.Session, cur Cursor) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	header := fmt.Sprintf("Wild %s battle   Turn %d", s.Mode(), s.Turn()+1)
	r.drawText(2, 0, header, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	if s.Concluded() {
		badge := "[" + strings.ToUpper(s.Outcome().String()) + "]"
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if s.Outcome() == battle.Loss {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		r.drawText(w-runewidth.StringWidth(badge)-1, 0, badge, style)
	}

	y := 2
	r.drawText(2, y, "Opponents", dimStyle)
	y++
	for i := 0; ; i++ {
		c := s.Enemy(i)
		if c == nil {
			break
		}
		marker := ""
		if i == cur.Target && s.Mode() == battle.ModeDouble {
			marker = assets.GlyphTarget
		}
		y = r.drawCreature(2, y, marker, c)
	}

	y++
	r.drawText(2, y, "Your team", dimStyle)
	y++
	for i := 0; i < s.Slots(); i++ {
		marker := ""
		if i == cur.Attacker {
			marker = assets.GlyphCursor
		}
		y = r.drawCreature(2, y, marker, s.Ally(i))
	}

	y++
	if actor := s.Ally(cur.Attacker); actor != nil {
		r.drawText(2, y, r.DisplayName(actor.Name())+"'s abilities", dimStyle)
		y++
		for i, a := range actor.Abilities() {
			line := fmt.Sprintf("[%d] %s  %s pow %d", i+1, r.DisplayName(a.Name()), r.typeLabel(a.Type()), a.Power())
			if a.Effect() != effect.None {
				line += "  " + a.Effect().String()
			}
			style := tcell.StyleDefault.Foreground(TypeColor(a.Type()))
			if !a.Unlocked() {
				line += fmt.Sprintf("  (locked until Lv %d)", a.LevelRequirement())
				style = dimStyle
			}
			r.drawText(4, y, line, style)
			y++
		}
	}

	y++
	hints := "[1-4] Ability   [s] Switch   [p] Potion   [Esc] Run"
	if s.Mode() == battle.ModeDouble {
		hints = "[1-4] Ability   [Tab] Ally   [t] Target   [s] Switch   [p] Potion   [Esc] Run"
	}
	if s.Concluded() {
		hints = "Press any key to continue"
	}
	r.drawText(2, y, hints, dimStyle)
}

// drawCreature draws a two-line panel for c at (x, y) and returns the next
// free row.
func (r *Renderer) drawCreature(x, y int, marker string, c *creature.Creature) int {
	glyph := assets.TypeGlyph(c.Type())
	if c.Fainted() {
		glyph = assets.GlyphFainted
	}
	col := x + 2
	if marker != "" {
		col = x + r.putGlyph(x, y, marker, tcell.StyleDefault)
	}
	col++
	col += r.putGlyph(col, y, glyph, tcell.StyleDefault)
	col++
	nameStyle := tcell.StyleDefault.Foreground(TypeColor(c.Type())).Bold(true)
	if c.Fainted() {
		nameStyle = dimStyle
	}
	col += r.drawText(col, y, r.DisplayName(c.Name()), nameStyle)
	info := fmt.Sprintf("  Lv %d  %s  ATK %d DEF %d SPD %d", c.Level(), r.typeLabel(c.Type()), c.Attack(), c.Defense(), c.Speed())
	col += r.drawText(col, y, info, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if c.Captured() {
		r.putGlyph(col+1, y, assets.GlyphCaptured, tcell.StyleDefault)
	}

	bar := HealthBar(c.Health(), c.MaxHealth(), 20)
	line := fmt.Sprintf("%s %d/%d", bar, c.Health(), c.MaxHealth())
	col = x + 5
	col += r.drawText(col, y+1, line, tcell.StyleDefault.Foreground(healthColor(c.Health(), c.MaxHealth())))
	if st := c.Statuses(); len(st) > 0 {
		names := make([]string, 0, len(st))
		for _, s := range st {
			names = append(names, s.Kind.String())
		}
		r.drawText(col+2, y+1, strings.Join(names, " "), tcell.StyleDefault.Foreground(tcell.ColorPurple))
	}
	return y + 2
}

// HealthBar renders a fixed-width bar for health out of max.
func HealthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	filled := min(max(health, 0)*width/maxHealth, width)
	if health > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func healthColor(health, maxHealth int) tcell.Color {
	switch {
	case health*2 > maxHealth:
		return tcell.ColorGreen
	case health*5 > maxHealth:
		return tcell.ColorYellow
	}
	return tcell.ColorRed
}

// typeLabel is the display label for a type tag.
func (r *Renderer) typeLabel(t element.Type) string {
	return r.DisplayName(t.String())
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y) and returns the columns it occupies.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	width := runewidth.StringWidth(glyph)
	if width == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	return max(width, 1)
}

// drawText writes text at (x, y), advancing by each rune's display width,
// and returns the columns used.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col - x
}
