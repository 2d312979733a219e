package catalog

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"creature-arena/internal/apperr"
	"creature-arena/internal/creature"
	"creature-arena/internal/effect"
	"creature-arena/internal/element"
)

const abilitiesJSON = `[
  {"name": "Ember", "description": "A small flame.", "type": "fire", "cooldown": 0, "duration": 0, "power": 12, "level": 1, "effect": "none"},
  {"name": "Scorch", "description": "Burns.", "type": "fire", "cooldown": 2, "duration": 3, "power": 6, "level": 4, "effect": "burn"},
  {"name": "Tackle", "description": "A charge.", "type": "normal", "cooldown": 0, "duration": 0, "power": 10, "level": 1, "effect": "none"},
  {"name": "Rest", "description": "Naps.", "type": "normal", "cooldown": 3, "duration": 0, "power": 15, "level": 3, "effect": "heal"},
  {"name": "Glitch", "description": "Broken.", "type": "fire", "cooldown": 0, "duration": 0, "power": 5, "level": 1, "effect": "explode"},
  {"name": "Shadow", "description": "Spooky.", "type": "ghost", "cooldown": 0, "duration": 0, "power": 5, "level": 1, "effect": "none"}
]`

const abilitiesYAML = `
- {name: Ember, description: A small flame., type: fire, power: 12, level: 1, effect: none}
- name: Scorch
  description: Burns.
  type: fire
  duration: 3
  power: 6
  level: 4
  effect: burn
- {name: Tackle, description: A charge., type: normal, power: 10, level: 1, effect: none}
- {name: Rest, description: Naps., type: normal, cooldown: 3, power: 15, level: 3, effect: heal}
- {name: Glitch, description: Broken., type: fire, power: 5, level: 1, effect: explode}
- {name: Shadow, description: Spooky., type: ghost, power: 5, level: 1, effect: none}
`

const creaturesJSON = `[
  {"name": "Charmander", "type": "fire", "tier": 1, "baseHP": 39, "baseAttack": 52, "baseDefense": 43, "baseSpeed": 65, "evolvesInto": "Charmeleon"},
  {"name": "Squirtle", "type": "water", "tier": 1, "baseHP": 44, "baseAttack": 48, "baseDefense": 65, "baseSpeed": 43, "evolvesInto": "Wartortle"},
  {"name": "Missingno", "type": "glitch", "tier": 1, "baseHP": 1, "baseAttack": 1, "baseDefense": 1, "baseSpeed": 1, "evolvesInto": ""},
  {"name": "Snorlax", "type": "normal", "tier": 1, "baseHP": 160, "baseAttack": 110, "baseDefense": 65, "baseSpeed": 30, "evolvesInto": ""},
  {"name": "Charmander", "type": "fire", "tier": 1, "baseHP": 1, "baseAttack": 1, "baseDefense": 1, "baseSpeed": 1, "evolvesInto": ""}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"abilities.json", JSON, true},
		{"ABILITIES.JSON", JSON, true},
		{"abilities.yaml", YAML, true},
		{"dir/abilities.yml", YAML, true},
		{"abilities.toml", 0, false},
		{"abilities", 0, false},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("FormatOf(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, apperr.UnknownData) {
			t.Errorf("FormatOf(%q) err = %v, want UnknownData", tt.path, err)
		}
	}
}

func TestLoadAbilitiesSkipsUnknownRecords(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"json", "abilities.json", abilitiesJSON},
		{"yaml", "abilities.yaml", abilitiesYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, rep, err := LoadAbilities(writeFile(t, tt.file, tt.body), nil)
			if err != nil {
				t.Fatalf("LoadAbilities: %v", err)
			}
			if rep.Loaded != 4 || a.Size() != 4 {
				t.Errorf("loaded %d (size %d), want 4", rep.Loaded, a.Size())
			}
			if len(rep.Skipped) != 2 {
				t.Fatalf("skipped = %+v, want 2 entries", rep.Skipped)
			}
			for _, s := range rep.Skipped {
				if !errors.Is(s.Reason, apperr.UnknownData) {
					t.Errorf("skip %s reason %v, want UnknownData", s.Name, s.Reason)
				}
			}

			fire := a.Group(element.Fire)
			if len(fire) != 2 {
				t.Fatalf("fire group = %d abilities, want 2", len(fire))
			}
			if fire[1].Name() != "Scorch" || fire[1].Effect() != effect.Burn || fire[1].Duration() != 3 || fire[1].LevelRequirement() != 4 {
				t.Errorf("Scorch decoded as %s", fire[1])
			}
			if fire[0].Unlocked() {
				t.Error("catalog abilities start unlocked")
			}
		})
	}
}

func TestGroupFallsBackToNormal(t *testing.T) {
	a, _, err := ReadAbilities(strings.NewReader(abilitiesJSON), JSON, nil)
	if err != nil {
		t.Fatalf("ReadAbilities: %v", err)
	}
	ice := a.Group(element.Ice)
	if len(ice) != 2 {
		t.Fatalf("ice group = %d, want normal fallback of 2", len(ice))
	}
	for _, ab := range ice {
		if ab.Type() != element.Normal {
			t.Errorf("fallback ability %s has type %v", ab.Name(), ab.Type())
		}
	}
}

func TestGroupReturnsCopies(t *testing.T) {
	a, _, err := ReadAbilities(strings.NewReader(abilitiesJSON), JSON, nil)
	if err != nil {
		t.Fatalf("ReadAbilities: %v", err)
	}
	a.Group(element.Fire)[0].Unlock()
	if a.Group(element.Fire)[0].Unlocked() {
		t.Error("mutating a group entry changed the catalog")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := LoadAbilities(filepath.Join(t.TempDir(), "none.json"), nil)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, _, err := ReadAbilities(strings.NewReader("[{"), JSON, nil); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, _, err := ReadAbilities(strings.NewReader("- [unclosed"), YAML, nil); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func newDex(t *testing.T, seed int64) (*Pokedex, Report) {
	t.Helper()
	a, _, err := ReadAbilities(strings.NewReader(abilitiesJSON), JSON, nil)
	if err != nil {
		t.Fatalf("ReadAbilities: %v", err)
	}
	d, rep, err := ReadPokedex(strings.NewReader(creaturesJSON), JSON, a, rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		t.Fatalf("ReadPokedex: %v", err)
	}
	return d, rep
}

func TestPokedexSkipsBadSpecies(t *testing.T) {
	d, rep := newDex(t, 42)
	if d.Size() != 2 || rep.Loaded != 2 {
		t.Fatalf("size %d loaded %d, want 2", d.Size(), rep.Loaded)
	}
	if len(rep.Skipped) != 3 {
		t.Errorf("skipped = %+v, want Missingno, Snorlax and the duplicate", rep.Skipped)
	}
	if got := d.Names(); len(got) != 2 || got[0] != "Charmander" || got[1] != "Squirtle" {
		t.Errorf("names = %v", got)
	}
}

func TestPokedexAssignsAbilities(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d, _ := newDex(t, seed)

		c, err := d.Get("Charmander")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		abs := c.Abilities()
		if len(abs) != creature.MaxAbilities {
			t.Fatalf("seed %d: %d abilities, want %d", seed, len(abs), creature.MaxAbilities)
		}
		if abs[0].Type() != element.Fire || abs[0].LevelRequirement() != 1 || !abs[0].Unlocked() {
			t.Errorf("seed %d: first ability %s, want an unlocked level-1 fire ability", seed, abs[0])
		}

		// Water has no group of its own: only the two normal abilities fit.
		w, err := d.Get("Squirtle")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if n := len(w.Abilities()); n != 2 {
			t.Errorf("seed %d: Squirtle has %d abilities, want 2", seed, n)
		}
	}
}

func TestPokedexGetReturnsClones(t *testing.T) {
	d, _ := newDex(t, 42)
	a, _ := d.Get("Charmander")
	a.Damage(10)
	a.LevelUp()
	b, _ := d.Get("Charmander")
	if b.Health() != b.MaxHealth() || b.Level() != 1 {
		t.Errorf("template changed: %s", b)
	}
	if a.Abilities()[0] == b.Abilities()[0] {
		t.Error("clones share ability pointers")
	}
}

func TestPokedexGetUnknown(t *testing.T) {
	d, _ := newDex(t, 42)
	_, err := d.Get("Mew")
	if !errors.Is(err, ErrUnknownSpecies) || !errors.Is(err, apperr.UnknownData) {
		t.Errorf("err = %v, want ErrUnknownSpecies", err)
	}
}

func TestPokedexRandom(t *testing.T) {
	d, _ := newDex(t, 42)
	rng := rand.New(rand.NewSource(7))
	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		seen[d.Random(rng).Name()]++
	}
	if len(seen) != 2 {
		t.Errorf("random picks = %v, want both species", seen)
	}
	empty, _ := NewPokedex(nil, nil, rng, nil)
	if empty.Random(rng) != nil {
		t.Error("empty Pokedex returned a creature")
	}
}

func TestOpenEmbeddedDefaults(t *testing.T) {
	d, rep, err := Open("", "", rand.New(rand.NewSource(42)), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(rep.Skipped) != 0 {
		t.Errorf("embedded catalogs skipped %+v", rep.Skipped)
	}
	if d.Size() == 0 {
		t.Fatal("embedded Pokedex is empty")
	}
	if len(d.Tier(1)) == 0 {
		t.Error("no tier-1 species")
	}
	for _, name := range d.Names() {
		c, _ := d.Get(name)
		if len(c.Abilities()) != creature.MaxAbilities {
			t.Errorf("%s has %d abilities", name, len(c.Abilities()))
		}
		if len(c.UnlockedAbilities()) == 0 {
			t.Errorf("%s has no usable ability at level 1", name)
		}
	}
}

func TestOpenFromFiles(t *testing.T) {
	ab := writeFile(t, "abilities.yml", abilitiesYAML)
	cr := writeFile(t, "creatures.json", creaturesJSON)
	d, rep, err := Open(ab, cr, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d.Size() != 2 || len(rep.Skipped) != 5 {
		t.Errorf("size %d skipped %d, want 2 and 5", d.Size(), len(rep.Skipped))
	}
}
