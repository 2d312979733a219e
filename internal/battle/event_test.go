package battle

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestEventMessage(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: EventDamage, Actor: "A", Ability: "Ember", Target: "B", Amount: 12, Effectiveness: 2}, "A used Ember on B for 12 damage. It's super effective!"},
		{Event{Kind: EventDamage, Actor: "A", Ability: "Ember", Target: "B", Amount: 3, Effectiveness: 0.5}, "A used Ember on B for 3 damage. It's not very effective..."},
		{Event{Kind: EventFainted, Target: "B"}, "B fainted!"},
		{Event{Kind: EventCapture, Target: "B", Success: true}, "Gotcha! B was caught!"},
		{Event{Kind: EventCapture, Target: "B"}, "B broke free!"},
		{Event{Kind: EventConcluded, Detail: "win"}, "The battle is over: win."},
	}
	for _, tt := range tests {
		if got := tt.ev.Message(); got != tt.want {
			t.Errorf("Message() = %q, want %q", got, tt.want)
		}
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := LogSink{Logger: logger}
	sink.Handle(Event{Kind: EventRejected, Session: "s1", Actor: "A", Detail: "locked"})
	sink.Handle(Event{Kind: EventCapture, Session: "s1", Target: "B", Success: true})

	out := buf.String()
	for _, want := range []string{"level=WARN", `msg="battle rejected"`, "session=s1", "actor=A", "success=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestMultiSink(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	Multi(a, nil, b).Handle(Event{Kind: EventGold, Amount: 5})
	if len(a.Events) != 1 || len(b.Events) != 1 {
		t.Errorf("events = %d/%d, want 1/1", len(a.Events), len(b.Events))
	}
}
