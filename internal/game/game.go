package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"creature-arena/assets"
	"creature-arena/internal/battle"
	"creature-arena/internal/catalog"
	"creature-arena/internal/creature"
	"creature-arena/internal/render"
	"creature-arena/internal/spawn"
	"creature-arena/internal/trainer"
)

// maxMessages caps the message log.
const maxMessages = 50

// Options configures a Game.
type Options struct {
	Pokedex     *catalog.Pokedex
	Rand        *rand.Rand
	Logger      *slog.Logger
	DataDir     string // battle records are skipped when empty
	TrainerName string
}

// Game is the top-level orchestrator for one player: starter selection,
// the lobby and the battle screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	dex      *catalog.Pokedex
	rng      *rand.Rand
	logger   *slog.Logger
	dataDir  string
	trainer  *trainer.Trainer
	session  *battle.Session
	cursor   render.Cursor
	acted    []bool
	messages []string
	tip      int
}

// New creates a Game on the process terminal.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen creates a Game backed by an already-initialized screen.
func NewWithScreen(screen tcell.Screen, opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.TrainerName == "" {
		opts.TrainerName = "Trainer"
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		dex:      opts.Pokedex,
		rng:      opts.Rand,
		logger:   opts.Logger.With("trainer", opts.TrainerName),
		dataDir:  opts.DataDir,
		trainer:  trainer.New(opts.TrainerName, opts.Logger),
	}
	for _, k := range assets.StarterKit() {
		g.trainer.Inventory().Add(k.Item, k.Count)
	}
	return g
}

// Trainer returns the player's trainer.
func (g *Game) Trainer() *trainer.Trainer { return g.trainer }

// Run is the main loop. It returns when the player quits or the screen
// stops delivering events.
func (g *Game) Run() {
	defer g.screen.Fini()

	if !g.runStarterSelect() {
		return
	}
	g.addMessage(assets.LoreOpening)

	for {
		if g.session != nil {
			if !g.runBattle() {
				return
			}
			continue
		}
		g.renderer.DrawLobby(g.trainer, assets.LobbyTips[g.tip%len(assets.LobbyTips)])
		g.renderer.DrawHUD(g.trainer, g.messages)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if !g.handleLobby(keyToAction(ev)) {
				return
			}
		}
	}
}

// runBattle drives the battle screen until the session is closed. Returns
// false when the screen has gone away.
func (g *Game) runBattle() bool {
	for g.session != nil {
		g.renderer.DrawBattle(g.session, g.cursor)
		g.renderer.DrawHUD(g.trainer, g.messages)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			g.handleBattle(keyToAction(ev))
		}
	}
	return true
}

// handleLobby processes one lobby action. Returns false to quit.
func (g *Game) handleLobby(action Action) bool {
	switch action {
	case ActionSingle:
		opp := spawn.Wild(g.dex, g.trainer.Party(), g.rng)
		if opp == nil {
			g.addMessage("No wild creatures live here.")
			return true
		}
		g.beginSingle(opp)
	case ActionDouble:
		pair := spawn.Pair(g.dex, g.trainer.Party(), g.rng)
		if pair[0] == nil || pair[1] == nil {
			g.addMessage("No wild creatures live here.")
			return true
		}
		g.beginDouble(pair)
	case ActionRest:
		g.trainer.Party().ReviveAll()
		g.addMessage("Your party rests and recovers.")
		g.tip++
	case ActionQuit, ActionLeave:
		return false
	}
	return true
}

// beginSingle opens a one-on-one battle against opp.
func (g *Game) beginSingle(opp *creature.Creature) {
	s, err := battle.NewSingle(g.trainer, opp, g.sessionOptions()...)
	if err != nil {
		g.addMessage(g.describe(err))
		return
	}
	g.open(s)
	g.addMessage(assets.EncounterLine(opp.Type(), g.rng.Int()))
	g.addMessage(fmt.Sprintf("A wild %s (Lv %d) appears!", g.renderer.DisplayName(opp.Name()), opp.Level()))
}

// beginDouble opens a two-on-two battle against pair.
func (g *Game) beginDouble(pair [2]*creature.Creature) {
	s, err := battle.NewDouble(g.trainer, pair, g.sessionOptions()...)
	if err != nil {
		g.addMessage(g.describe(err))
		return
	}
	g.open(s)
	g.addMessage(fmt.Sprintf("A wild %s and %s appear!",
		g.renderer.DisplayName(pair[0].Name()), g.renderer.DisplayName(pair[1].Name())))
}

func (g *Game) sessionOptions() []battle.Option {
	log := battle.LogSink{Logger: g.logger}
	ui := battle.SinkFunc(func(ev battle.Event) { g.addMessage(ev.Message()) })
	return []battle.Option{
		battle.WithRand(g.rng),
		battle.WithSink(battle.Multi(ui, log)),
	}
}

func (g *Game) open(s *battle.Session) {
	g.session = s
	g.cursor = render.Cursor{}
	g.acted = make([]bool, s.Slots())
	g.logger.Info("battle started", "session", s.ID(), "mode", s.Mode().String())
}

// handleBattle processes one battle action.
func (g *Game) handleBattle(action Action) {
	s := g.session
	if s == nil {
		return
	}
	if s.Concluded() {
		g.close(false)
		return
	}

	if idx, ok := slotIndex(action); ok {
		if g.ready() {
			g.useAbility(idx)
		}
		return
	}
	switch action {
	case ActionNextAlly:
		if next, ok := nextStanding(g.cursor.Attacker, s.Slots(), s.Ally); ok {
			g.cursor.Attacker = next
		}
	case ActionNextTarget:
		if next, ok := nextStanding(g.cursor.Target, g.enemyCount(), s.Enemy); ok {
			g.cursor.Target = next
		}
	case ActionSwitch:
		g.switchIn()
	case ActionPotion:
		if !g.ready() {
			return
		}
		if err := s.UseItem(assets.PotionHeal, g.cursor.Attacker); err != nil {
			g.addMessage(g.describe(err))
			return
		}
		g.endAction()
	case ActionLeave:
		g.addMessage("You got away safely.")
		g.close(true)
	}
}

// ready reports whether the ally under the cursor may still act this
// round.
func (g *Game) ready() bool {
	if g.acted[g.cursor.Attacker] {
		g.addMessage("That creature has already acted this turn.")
		return false
	}
	return true
}

// useAbility has the ally under the cursor use its idx-th ability on the
// targeted enemy.
func (g *Game) useAbility(idx int) {
	actor := g.session.Ally(g.cursor.Attacker)
	if actor == nil {
		return
	}
	a, ok := actor.Ability(idx)
	if !ok {
		return
	}
	if err := g.session.AttackSlot(a, g.cursor.Attacker, g.cursor.Target, true); err != nil {
		// Locked abilities are already reported through the event sink.
		if !errors.Is(err, battle.ErrAbilityLocked) {
			g.addMessage(g.describe(err))
		}
		return
	}
	g.endAction()
}

// endAction marks the ally under the cursor as done for this round. Once
// every standing ally has acted the enemies take their turn.
func (g *Game) endAction() {
	s := g.session
	g.acted[g.cursor.Attacker] = true
	if s.CheckEnd() {
		return
	}
	for i := range g.acted {
		if c := s.Ally(i); !g.acted[i] && c != nil && !c.Fainted() {
			g.cursor.Attacker = i
			g.retarget()
			return
		}
	}
	if err := s.NextTurn(); err != nil {
		g.logger.Warn("next turn failed", "session", s.ID(), "error", err)
		return
	}
	clear(g.acted)
	if s.CheckEnd() {
		return
	}
	g.cursor.Attacker = 0
	if c := s.Ally(0); c == nil || c.Fainted() {
		if next, ok := nextStanding(0, s.Slots(), s.Ally); ok {
			g.cursor.Attacker = next
		}
	}
	g.retarget()
}

// retarget moves the target cursor off a fainted enemy.
func (g *Game) retarget() {
	if c := g.session.Enemy(g.cursor.Target); c != nil && !c.Fainted() {
		return
	}
	if next, ok := nextStanding(g.cursor.Target, g.enemyCount(), g.session.Enemy); ok {
		g.cursor.Target = next
	}
}

// nextStanding returns the first slot after from, wrapping, whose creature
// is standing.
func nextStanding(from, n int, at func(int) *creature.Creature) (int, bool) {
	for step := 1; step < n; step++ {
		i := (from + step) % n
		if c := at(i); c != nil && !c.Fainted() {
			return i, true
		}
	}
	return from, false
}

func (g *Game) enemyCount() int {
	n := 0
	for g.session.Enemy(n) != nil {
		n++
	}
	return n
}

// switchIn swaps the ally under the cursor for the next standing party
// member that is not already fighting.
func (g *Game) switchIn() {
	s := g.session
	fighting := make([]*creature.Creature, 0, s.Slots())
	for i := 0; i < s.Slots(); i++ {
		fighting = append(fighting, s.Ally(i))
	}
	c := g.trainer.Party().NextAvailable(fighting...)
	if c == nil {
		g.addMessage("Nobody else can fight.")
		return
	}
	if err := s.Switch(g.cursor.Attacker, c); err != nil {
		g.addMessage(g.describe(err))
	}
}

// close saves the battle record and returns to the lobby.
func (g *Game) close(fled bool) {
	s := g.session
	g.session = nil
	g.tip++
	g.logger.Info("battle closed", "session", s.ID(), "outcome", s.Outcome().String(), "fled", fled)
	if g.dataDir == "" {
		return
	}
	rec := BattleRecord{
		Summary: s.Summary(),
		Trainer: g.trainer.Name(),
		Fled:    fled,
		At:      time.Now().UTC(),
	}
	if err := saveBattleRecord(g.dataDir, rec); err != nil {
		g.logger.Warn("battle record not saved", "session", s.ID(), "error", err)
	}
}

// describe turns an action error into a log line.
func (g *Game) describe(err error) string {
	switch {
	case errors.Is(err, battle.ErrFaintedActor):
		return "That creature has fainted."
	case errors.Is(err, battle.ErrFaintedTarget):
		return "That opponent is already down."
	case errors.Is(err, battle.ErrNoCombatant):
		return "You need more standing creatures for that battle."
	}
	return "Can't do that: " + err.Error()
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
