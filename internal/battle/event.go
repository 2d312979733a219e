package battle

import (
	"context"
	"fmt"
	"log/slog"
)

// EventKind classifies a battle diagnostic event.
type EventKind uint8

const (
	EventDamage EventKind = iota
	EventHeal
	EventBuff
	EventStatus
	EventRejected
	EventSkipped
	EventSwitch
	EventFainted
	EventItem
	EventExperience
	EventLevelUp
	EventGold
	EventCapture
	EventRevived
	EventConcluded
)

var eventNames = [...]string{
	EventDamage:     "damage",
	EventHeal:       "heal",
	EventBuff:       "buff",
	EventStatus:     "status",
	EventRejected:   "rejected",
	EventSkipped:    "skipped",
	EventSwitch:     "switch",
	EventFainted:    "fainted",
	EventItem:       "item",
	EventExperience: "experience",
	EventLevelUp:    "level_up",
	EventGold:       "gold",
	EventCapture:    "capture",
	EventRevived:    "revived",
	EventConcluded:  "concluded",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event is one structured thing that happened in a session.
type Event struct {
	Kind          EventKind
	Session       string
	Turn          int
	Actor         string
	Target        string
	Ability       string
	Amount        int
	Effectiveness float64
	Success       bool
	Detail        string
}

// Message renders the event as a one-line battle log entry.
func (e Event) Message() string {
	switch e.Kind {
	case EventDamage:
		msg := fmt.Sprintf("%s used %s on %s for %d damage.", e.Actor, e.Ability, e.Target, e.Amount)
		switch {
		case e.Effectiveness > 1:
			msg += " It's super effective!"
		case e.Effectiveness < 1:
			msg += " It's not very effective..."
		}
		return msg
	case EventHeal:
		return fmt.Sprintf("%s used %s and recovered %d HP.", e.Actor, e.Ability, e.Amount)
	case EventBuff:
		return fmt.Sprintf("%s used %s: %s +%d.", e.Actor, e.Ability, e.Detail, e.Amount)
	case EventStatus:
		return fmt.Sprintf("%s used %s: %s is afflicted with %s.", e.Actor, e.Ability, e.Target, e.Detail)
	case EventRejected:
		return fmt.Sprintf("%s cannot act: %s.", e.Actor, e.Detail)
	case EventSkipped:
		return fmt.Sprintf("%s does nothing (%s).", e.Actor, e.Detail)
	case EventSwitch:
		return fmt.Sprintf("%s is sent out in place of %s.", e.Target, e.Actor)
	case EventFainted:
		return fmt.Sprintf("%s fainted!", e.Target)
	case EventItem:
		return fmt.Sprintf("Used %s on %s (%d).", e.Detail, e.Target, e.Amount)
	case EventExperience:
		return fmt.Sprintf("%s gained %d experience.", e.Target, e.Amount)
	case EventLevelUp:
		msg := fmt.Sprintf("%s grew to level %d!", e.Target, e.Amount)
		if e.Detail != "" {
			msg += " " + e.Detail
		}
		return msg
	case EventGold:
		return fmt.Sprintf("Received %d gold.", e.Amount)
	case EventCapture:
		if e.Success {
			return fmt.Sprintf("Gotcha! %s was caught!", e.Target)
		}
		if e.Detail != "" {
			return fmt.Sprintf("Could not try to catch %s: %s.", e.Target, e.Detail)
		}
		return fmt.Sprintf("%s broke free!", e.Target)
	case EventRevived:
		return fmt.Sprintf("%s was revived and fully healed.", e.Target)
	case EventConcluded:
		return fmt.Sprintf("The battle is over: %s.", e.Detail)
	}
	return e.Kind.String()
}

// Sink receives session events.
type Sink interface {
	Handle(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Handle(e Event) { f(e) }

// Multi fans events out to several sinks in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Handle(e)
			}
		}
	})
}

type discard struct{}

func (discard) Handle(Event) {}

// Recorder keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Handle(e Event) { r.Events = append(r.Events, e) }

// Of returns the recorded events of the given kind.
func (r *Recorder) Of(kind EventKind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// LogSink forwards events to a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

func (l LogSink) Handle(e Event) {
	level := slog.LevelInfo
	switch e.Kind {
	case EventRejected:
		level = slog.LevelWarn
	case EventSkipped, EventDamage, EventHeal, EventBuff, EventStatus:
		level = slog.LevelDebug
	}
	attrs := []slog.Attr{
		slog.String("session", e.Session),
		slog.Int("turn", e.Turn),
	}
	if e.Actor != "" {
		attrs = append(attrs, slog.String("actor", e.Actor))
	}
	if e.Target != "" {
		attrs = append(attrs, slog.String("target", e.Target))
	}
	if e.Ability != "" {
		attrs = append(attrs, slog.String("ability", e.Ability))
	}
	if e.Amount != 0 {
		attrs = append(attrs, slog.Int("amount", e.Amount))
	}
	if e.Effectiveness != 0 {
		attrs = append(attrs, slog.Float64("effectiveness", e.Effectiveness))
	}
	if e.Kind == EventCapture {
		attrs = append(attrs, slog.Bool("success", e.Success))
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	l.Logger.LogAttrs(context.Background(), level, "battle "+e.Kind.String(), attrs...)
}
