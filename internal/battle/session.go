// Package battle resolves turn-based fights between a trainer's creatures
// and wild opponents. A Session owns the combatant slots, a state machine
// and a policy that decides how enemies act and how a fight ends.
package battle

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"creature-arena/internal/ability"
	"creature-arena/internal/apperr"
	"creature-arena/internal/creature"
	"creature-arena/internal/effect"
	"creature-arena/internal/element"
	"creature-arena/internal/item"
	"creature-arena/internal/party"
)

var (
	ErrConcluded     = apperr.Invalid("battle is over")
	ErrAbilityLocked = apperr.Invalid("ability is locked")
	ErrNotOwned      = apperr.Invalid("ability does not belong to the attacker")
	ErrBadSlot       = apperr.Invalid("no combatant in that slot")
	ErrFaintedActor  = apperr.Invalid("attacker has fainted")
	ErrFaintedTarget = apperr.Invalid("target has fainted")
	ErrInvalidSwitch = apperr.Invalid("creature cannot be switched in")
	ErrNoCombatant   = apperr.Invalid("not enough creatures able to fight")
)

// Experience and gold rewards.
const (
	RewardPerLevel = 5
	FlatReward     = 25
)

// Mode selects the battle format.
type Mode uint8

const (
	ModeSingle Mode = iota
	ModeDouble
)

func (m Mode) String() string {
	if m == ModeDouble {
		return "double"
	}
	return "single"
}

// Outcome is the result of a session.
type Outcome uint8

const (
	Pending Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "pending"
}

// Session states and transitions.
const (
	StateActive    = "active"
	StateResolving = "resolving"
	StateConcluded = "concluded"

	evResolve  = "resolve"
	evSettle   = "settle"
	evConclude = "conclude"
)

// Capturer attempts to catch a defeated opponent.
type Capturer interface {
	AttemptCapture(rng *rand.Rand, target *creature.Creature) bool
}

//go:generate go tool mockgen -destination=mocks/capturer_mock.go -package=mocks creature-arena/internal/battle Capturer

// Owner is the trainer side of a battle.
type Owner interface {
	Party() *party.Party
	GainGold(n int)
	Collect(c *creature.Creature)
	CaptureDevice() (item.Pokeball, bool)
	UseItem(name string, c *creature.Creature) (int, error)
}

// Reward totals what the owner gained from a won battle.
type Reward struct {
	Experience int      `json:"experience"`
	Gold       int      `json:"gold"`
	Captured   []string `json:"captured,omitempty"`
}

// Session is one battle. Callers serialize access.
type Session struct {
	id       string
	mode     Mode
	owner    Owner
	rng      *rand.Rand
	sink     Sink
	capturer Capturer
	policy   policy
	machine  *fsm.FSM

	allies    []*creature.Creature
	enemies   []*creature.Creature
	remaining int
	turn      int
	outcome   Outcome
	reward    Reward
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source. The default is seeded from the clock.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSink sets the event sink. Events are dropped by default.
func WithSink(sink Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithCapturer overrides the owner's capture device.
func WithCapturer(c Capturer) Option {
	return func(s *Session) { s.capturer = c }
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSingle starts a one-on-one battle between the owner's first creature
// able to fight and opponent.
func NewSingle(owner Owner, opponent *creature.Creature, opts ...Option) (*Session, error) {
	active := owner.Party().NextAvailable()
	if active == nil || opponent == nil {
		return nil, ErrNoCombatant
	}
	s := newSession(ModeSingle, owner, singlePolicy{}, opts)
	s.allies = []*creature.Creature{active}
	s.enemies = []*creature.Creature{opponent}
	return s, nil
}

// NewDouble starts a two-on-two battle with the owner's first two
// creatures able to fight.
func NewDouble(owner Owner, enemies [2]*creature.Creature, opts ...Option) (*Session, error) {
	p := owner.Party()
	first := p.NextAvailable()
	if first == nil {
		return nil, ErrNoCombatant
	}
	second := p.NextAvailable(first)
	if second == nil || enemies[0] == nil || enemies[1] == nil {
		return nil, ErrNoCombatant
	}
	s := newSession(ModeDouble, owner, doublePolicy{}, opts)
	s.allies = []*creature.Creature{first, second}
	s.enemies = []*creature.Creature{enemies[0], enemies[1]}
	return s, nil
}

func newSession(mode Mode, owner Owner, pol policy, opts []Option) *Session {
	s := &Session{
		mode:      mode,
		owner:     owner,
		policy:    pol,
		remaining: owner.Party().Alive(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if s.sink == nil {
		s.sink = discard{}
	}
	s.machine = fsm.NewFSM(
		StateActive,
		fsm.Events{
			{Name: evResolve, Src: []string{StateActive}, Dst: StateResolving},
			{Name: evSettle, Src: []string{StateResolving}, Dst: StateActive},
			{Name: evConclude, Src: []string{StateActive}, Dst: StateConcluded},
		},
		fsm.Callbacks{
			"enter_" + StateConcluded: func(_ context.Context, _ *fsm.Event) {
				s.emit(Event{Kind: EventConcluded, Detail: s.outcome.String()})
			},
		},
	)
	return s
}

func (s *Session) ID() string { return s.id }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Turn() int { return s.turn }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) State() string { return s.machine.Current() }
func (s *Session) Concluded() bool { return s.machine.Is(StateConcluded) }
func (s *Session) Remaining() int { return s.remaining }
func (s *Session) Slots() int { return len(s.allies) }
func (s *Session) Active() *creature.Creature { return s.allies[0] }
func (s *Session) Opponent() *creature.Creature { return s.enemies[0] }

// Reward returns what the owner has gained so far.
func (s *Session) Reward() Reward {
	r := s.reward
	r.Captured = append([]string(nil), s.reward.Captured...)
	return r
}

// Ally returns the creature in an ally slot, or nil.
func (s *Session) Ally(slot int) *creature.Creature {
	if slot < 0 || slot >= len(s.allies) {
		return nil
	}
	return s.allies[slot]
}

// Enemy returns the creature in an enemy slot, or nil.
func (s *Session) Enemy(slot int) *creature.Creature {
	if slot < 0 || slot >= len(s.enemies) {
		return nil
	}
	return s.enemies[slot]
}

// Attack has the active ally use a against the first opponent.
func (s *Session) Attack(a *ability.Ability) error {
	return s.AttackSlot(a, 0, 0, true)
}

// AttackSlot has the creature in slot attacker use a against the creature
// in slot target on the other side. allySide reports whether the attacker
// is on the owner's side.
func (s *Session) AttackSlot(a *ability.Ability, attacker, target int, allySide bool) error {
	if s.Concluded() {
		return ErrConcluded
	}
	src, dst := s.Ally(attacker), s.Enemy(target)
	if !allySide {
		src, dst = s.Enemy(attacker), s.Ally(target)
	}
	if src == nil || dst == nil || a == nil {
		return ErrBadSlot
	}
	if !src.Owns(a) {
		return ErrNotOwned
	}
	if src.Fainted() {
		return ErrFaintedActor
	}
	if !a.Unlocked() {
		s.emit(Event{Kind: EventRejected, Actor: src.Name(), Ability: a.Name(), Detail: fmt.Sprintf("%s is locked until level %d", a.Name(), a.LevelRequirement())})
		return ErrAbilityLocked
	}
	if dst.Fainted() && hitsTarget(a.Effect()) {
		return ErrFaintedTarget
	}
	return s.resolve(func() { s.apply(a, src, dst) })
}

// NextTurn lets every standing enemy act and advances the turn counter.
func (s *Session) NextTurn() error {
	if s.Concluded() {
		return ErrConcluded
	}
	if err := s.resolve(func() { s.policy.enemyTurn(s) }); err != nil {
		return err
	}
	s.turn++
	return nil
}

// SwitchActive replaces the active ally with c.
func (s *Session) SwitchActive(c *creature.Creature) error {
	return s.Switch(0, c)
}

// Switch replaces the ally in slot with c. The switch costs no turn.
func (s *Session) Switch(slot int, c *creature.Creature) error {
	if s.Concluded() {
		return ErrConcluded
	}
	out := s.Ally(slot)
	if out == nil {
		return ErrBadSlot
	}
	if c == nil || c.Fainted() || !s.owner.Party().Contains(c) {
		return ErrInvalidSwitch
	}
	for _, a := range s.allies {
		if a == c {
			return ErrInvalidSwitch
		}
	}
	s.allies[slot] = c
	s.emit(Event{Kind: EventSwitch, Actor: out.Name(), Target: c.Name()})
	return nil
}

// UseItem applies one item from the owner's inventory to the ally in slot.
func (s *Session) UseItem(name string, slot int) error {
	if s.Concluded() {
		return ErrConcluded
	}
	c := s.Ally(slot)
	if c == nil {
		return ErrBadSlot
	}
	n, err := s.owner.UseItem(name, c)
	if err != nil {
		return err
	}
	s.emit(Event{Kind: EventItem, Target: c.Name(), Amount: n, Detail: name})
	return nil
}

// CheckEnd settles fainted combatants and reports whether the battle is
// over. Rewards, captures and revivals happen once; later calls keep
// returning true.
func (s *Session) CheckEnd() bool {
	if s.Concluded() {
		return true
	}
	out, done := s.policy.settle(s)
	if !done {
		return false
	}
	s.outcome = out
	if err := s.machine.Event(context.Background(), evConclude); err != nil {
		return false
	}
	return true
}

// Summary describes a session for the battle record.
type Summary struct {
	ID        string   `json:"id"`
	Mode      string   `json:"mode"`
	Outcome   string   `json:"outcome"`
	Turns     int      `json:"turns"`
	Allies    []string `json:"allies"`
	Opponents []string `json:"opponents"`
	Reward    Reward   `json:"reward"`
}

// Summary returns the record of the session so far.
func (s *Session) Summary() Summary {
	sum := Summary{
		ID:      s.id,
		Mode:    s.mode.String(),
		Outcome: s.outcome.String(),
		Turns:   s.turn,
		Reward:  s.Reward(),
	}
	for _, c := range s.allies {
		sum.Allies = append(sum.Allies, c.Name())
	}
	for _, c := range s.enemies {
		sum.Opponents = append(sum.Opponents, fmt.Sprintf("%s (lv %d)", c.Name(), c.Level()))
	}
	return sum
}

func (s *Session) resolve(fn func()) error {
	ctx := context.Background()
	if err := s.machine.Event(ctx, evResolve); err != nil {
		return fmt.Errorf("battle %s: %w", s.id, err)
	}
	fn()
	if err := s.machine.Event(ctx, evSettle); err != nil {
		return fmt.Errorf("battle %s: %w", s.id, err)
	}
	return nil
}

// apply resolves one ability use. Damage and statuses land on dst, heals
// and buffs on src.
func (s *Session) apply(a *ability.Ability, src, dst *creature.Creature) {
	amount := a.Amount(s.rng)
	ev := Event{Actor: src.Name(), Ability: a.Name()}
	switch k := a.Effect(); k {
	case effect.None:
		eff := element.Effectiveness(src.Type(), dst.Type())
		ev.Kind = EventDamage
		ev.Target = dst.Name()
		ev.Effectiveness = eff
		ev.Amount = dst.Damage(int(math.Round(float64(amount) * eff)))
	case effect.Heal:
		ev.Kind = EventHeal
		ev.Target = src.Name()
		ev.Amount = src.Heal(amount)
	case effect.BuffAttack, effect.BuffDefense, effect.BuffSpeed:
		stat := buffStat(k)
		src.Buff(stat, amount)
		ev.Kind = EventBuff
		ev.Target = src.Name()
		ev.Amount = max(amount, 0)
		ev.Detail = stat.String()
	default:
		dst.AddStatus(effect.Status{Kind: k, Magnitude: amount, Turns: a.Duration()})
		ev.Kind = EventStatus
		ev.Target = dst.Name()
		ev.Amount = amount
		ev.Detail = k.String()
	}
	s.emit(ev)
	if ev.Kind == EventDamage && dst.Fainted() {
		s.emit(Event{Kind: EventFainted, Target: dst.Name()})
	}
}

// hitsTarget reports whether an effect lands on the target rather than
// the user.
func hitsTarget(k effect.Kind) bool {
	return k == effect.None || !k.Immediate()
}

func buffStat(k effect.Kind) creature.Stat {
	switch k {
	case effect.BuffDefense:
		return creature.StatDefense
	case effect.BuffSpeed:
		return creature.StatSpeed
	}
	return creature.StatAttack
}

// pick returns a uniformly random unlocked ability of c, or nil.
func (s *Session) pick(c *creature.Creature) *ability.Ability {
	usable := c.UnlockedAbilities()
	if len(usable) == 0 {
		return nil
	}
	return usable[s.rng.Intn(len(usable))]
}

// act has an enemy use a random ability on target.
func (s *Session) act(enemy, target *creature.Creature) {
	a := s.pick(enemy)
	if a == nil {
		s.emit(Event{Kind: EventSkipped, Actor: enemy.Name(), Detail: "no usable ability"})
		return
	}
	s.apply(a, enemy, target)
}

// grant awards experience to c and reports any level-up.
func (s *Session) grant(c *creature.Creature, exp int) {
	s.reward.Experience += exp
	s.emit(Event{Kind: EventExperience, Target: c.Name(), Amount: exp})
	g, leveled := c.GainExperience(exp)
	if !leveled {
		return
	}
	ev := Event{Kind: EventLevelUp, Target: c.Name(), Amount: g.Level}
	if g.Evolved {
		ev.Detail = fmt.Sprintf("It evolved to tier %d!", g.Tier)
	}
	if len(g.Unlocked) > 0 {
		if ev.Detail != "" {
			ev.Detail += " "
		}
		ev.Detail += fmt.Sprintf("Unlocked %v.", g.Unlocked)
	}
	s.emit(ev)
}

func (s *Session) pay(gold int) {
	s.owner.GainGold(gold)
	s.reward.Gold += gold
	s.emit(Event{Kind: EventGold, Amount: gold})
}

// capture makes one capture attempt on a defeated enemy.
func (s *Session) capture(target *creature.Creature) {
	if target.Captured() {
		return
	}
	c := s.capturer
	if c == nil {
		ball, ok := s.owner.CaptureDevice()
		if !ok {
			s.emit(Event{Kind: EventCapture, Target: target.Name(), Detail: "no capture device"})
			return
		}
		c = ball
	}
	ok := c.AttemptCapture(s.rng, target)
	s.emit(Event{Kind: EventCapture, Target: target.Name(), Success: ok})
	if !ok {
		return
	}
	s.owner.Collect(target)
	s.reward.Captured = append(s.reward.Captured, target.Name())
}

func (s *Session) revive(c *creature.Creature) {
	c.Revive()
	s.emit(Event{Kind: EventRevived, Target: c.Name()})
}

func (s *Session) emit(e Event) {
	e.Session = s.id
	e.Turn = s.turn
	s.sink.Handle(e)
}
