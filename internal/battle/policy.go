package battle

import "creature-arena/internal/creature"

// policy decides how enemies act and when a session is over.
type policy interface {
	enemyTurn(s *Session)
	settle(s *Session) (Outcome, bool)
}

// singlePolicy is one active ally against one opponent. A fainted ally is
// replaced by the next roster member able to fight.
type singlePolicy struct{}

func (singlePolicy) enemyTurn(s *Session) {
	opp, act := s.enemies[0], s.allies[0]
	switch {
	case opp.Fainted():
		s.emit(Event{Kind: EventSkipped, Actor: opp.Name(), Detail: "fainted"})
	case act.Fainted():
		s.emit(Event{Kind: EventSkipped, Actor: opp.Name(), Detail: "no target standing"})
	default:
		s.act(opp, act)
	}
}

func (singlePolicy) settle(s *Session) (Outcome, bool) {
	opp, act := s.enemies[0], s.allies[0]
	if opp.Fainted() {
		reward := opp.Level() * RewardPerLevel
		s.grant(act, reward)
		s.pay(reward)
		s.capture(opp)
		return Win, true
	}
	if !act.Fainted() {
		return Pending, false
	}
	s.remaining--
	if s.remaining > 0 {
		if next := s.owner.Party().NextAvailable(act); next != nil {
			s.allies[0] = next
			s.emit(Event{Kind: EventSwitch, Actor: act.Name(), Target: next.Name()})
			return Pending, false
		}
	}
	s.revive(act)
	return Loss, true
}

// doublePolicy is two allies against two enemies.
type doublePolicy struct{}

func (doublePolicy) enemyTurn(s *Session) {
	for _, e := range s.enemies {
		if e.Fainted() {
			continue
		}
		targets := standing(s.allies)
		if len(targets) == 0 {
			s.emit(Event{Kind: EventSkipped, Actor: e.Name(), Detail: "no target standing"})
			continue
		}
		s.act(e, targets[s.rng.Intn(len(targets))])
	}
}

func (doublePolicy) settle(s *Session) (Outcome, bool) {
	if len(standing(s.enemies)) == 0 {
		for _, e := range s.enemies {
			s.capture(e)
		}
		for _, a := range standing(s.allies) {
			s.grant(a, FlatReward)
			s.pay(FlatReward)
		}
		return Win, true
	}
	if len(standing(s.allies)) == 0 {
		s.remaining = max(s.remaining-len(s.allies), 0)
		for _, a := range s.allies {
			s.revive(a)
		}
		return Loss, true
	}
	return Pending, false
}

func standing(cs []*creature.Creature) []*creature.Creature {
	var out []*creature.Creature
	for _, c := range cs {
		if !c.Fainted() {
			out = append(out, c)
		}
	}
	return out
}
