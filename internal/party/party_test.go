package party

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"creature-arena/internal/apperr"
	"creature-arena/internal/creature"
	"creature-arena/internal/element"
)

func mon(name string, speed int) *creature.Creature {
	return creature.New(creature.Template{Name: name, Type: element.Water, HP: 50, Attack: 10, Defense: 10, Speed: speed})
}

func TestAddSortsBySpeedDescending(t *testing.T) {
	p := New()
	a := mon("a", 10)
	b := mon("b", 20)
	if err := p.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(b); err != nil {
		t.Fatal(err)
	}
	got := p.Members()
	if got[0] != b || got[1] != a {
		t.Fatalf("order = [%s, %s]; want [b, a]", got[0].Name(), got[1].Name())
	}
	if p.First() != b {
		t.Error("First should be the fastest member")
	}
}

func TestAddKeepsStableOrderForTies(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < MaxSize; i++ {
		if err := p.Add(mon(fmt.Sprintf("m%d", i), rng.Intn(3)*10)); err != nil {
			t.Fatal(err)
		}
		members := p.Members()
		for j := 1; j < len(members); j++ {
			if members[j-1].Speed() < members[j].Speed() {
				t.Fatalf("roster not sorted after add %d", i)
			}
			if members[j-1].Speed() == members[j].Speed() && members[j-1].Name() > members[j].Name() {
				t.Fatalf("tie order not stable: %s before %s", members[j-1].Name(), members[j].Name())
			}
		}
	}
}

func TestAddRejectsWhenFull(t *testing.T) {
	p := New()
	for i := 0; i < MaxSize; i++ {
		if err := p.Add(mon(fmt.Sprintf("m%d", i), i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.Add(mon("extra", 99)); !errors.Is(err, ErrFull) {
		t.Fatalf("Add on full party error = %v", err)
	}
	if p.Size() != MaxSize {
		t.Errorf("size = %d; want %d", p.Size(), MaxSize)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	p := New()
	if err := p.Add(mon("pikachu", 90)); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(mon("pikachu", 50)); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate add error = %v", err)
	}
}

func TestPowerPointsIncremental(t *testing.T) {
	p := New()
	a := mon("a", 10)
	b := mon("b", 20)
	p.Add(a)
	p.Add(b)
	want := a.PowerPoints() + b.PowerPoints()
	if p.PowerPoints() != want {
		t.Fatalf("PowerPoints = %d; want %d", p.PowerPoints(), want)
	}
	a.Damage(40) // stat changes after joining do not leak into removal
	if err := p.Remove(a); err != nil {
		t.Fatal(err)
	}
	if p.PowerPoints() != b.PowerPoints() {
		t.Fatalf("PowerPoints after remove = %d; want %d", p.PowerPoints(), b.PowerPoints())
	}
}

func TestRemoveAbsentFailsWithoutMutation(t *testing.T) {
	p := New()
	p.Add(mon("a", 10))
	p.Add(mon("b", 20))
	size, power := p.Size(), p.PowerPoints()

	err := p.Remove(mon("ghost", 5))
	if !errors.Is(err, ErrNotInParty) || !errors.Is(err, apperr.InvalidOperation) {
		t.Fatalf("Remove(absent) error = %v", err)
	}
	if p.Size() != size || p.PowerPoints() != power {
		t.Fatalf("failed removal mutated the party: size %d power %d", p.Size(), p.PowerPoints())
	}
}

func TestRemoveLastMemberFails(t *testing.T) {
	p := New()
	only := mon("only", 10)
	p.Add(only)
	if err := p.Remove(only); !errors.Is(err, ErrLastMember) {
		t.Fatalf("removing the last member error = %v", err)
	}
	if p.Size() != 1 {
		t.Fatal("last member should remain")
	}
}

func TestNextAvailableSkipsFaintedAndExcluded(t *testing.T) {
	p := New()
	fast := mon("fast", 30)
	mid := mon("mid", 20)
	slow := mon("slow", 10)
	p.Add(slow)
	p.Add(mid)
	p.Add(fast)

	fast.Damage(1000)
	if got := p.NextAvailable(); got != mid {
		t.Fatalf("NextAvailable = %v; want mid", got)
	}
	if got := p.NextAvailable(mid); got != slow {
		t.Fatalf("NextAvailable(excluding mid) = %v; want slow", got)
	}
	slow.Damage(1000)
	if got := p.NextAvailable(mid); got != nil {
		t.Fatalf("NextAvailable = %v; want nil", got)
	}
	if p.Alive() != 1 {
		t.Errorf("Alive = %d; want 1", p.Alive())
	}
	p.ReviveAll()
	if p.Alive() != 3 {
		t.Errorf("Alive after ReviveAll = %d; want 3", p.Alive())
	}
}

func TestMaxLevel(t *testing.T) {
	p := New()
	if p.MaxLevel() != 0 {
		t.Fatal("empty party max level should be 0")
	}
	a := mon("a", 1)
	b := mon("b", 2)
	b.LevelUp()
	b.LevelUp()
	p.Add(a)
	p.Add(b)
	if p.MaxLevel() != 3 {
		t.Fatalf("MaxLevel = %d; want 3", p.MaxLevel())
	}
}
