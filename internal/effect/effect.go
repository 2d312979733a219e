// Package effect describes what an ability or consumable does to its target,
// and how large the outcome is.
package effect

import (
	"fmt"
	"math/rand"
	"strings"

	"creature-arena/internal/apperr"
)

// Kind is the category of outcome an ability or consumable produces.
type Kind uint8

const (
	None Kind = iota
	Heal
	BuffAttack
	BuffDefense
	BuffSpeed
	Poison
	Burn
	Freeze
	Shock
	Wet
	Entangle
)

var kindNames = [...]string{
	None:        "none",
	Heal:        "heal",
	BuffAttack:  "buff_attack",
	BuffDefense: "buff_defense",
	BuffSpeed:   "buff_speed",
	Poison:      "poison",
	Burn:        "burn",
	Freeze:      "freeze",
	Shock:       "shock",
	Wet:         "wet",
	Entangle:    "entangle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("effect(%d)", uint8(k))
}

// Immediate reports whether the engine resolves the kind on use. The other
// kinds are attached to the target as a Status.
func (k Kind) Immediate() bool {
	return k <= BuffSpeed
}

// ParseKind converts a catalog tag such as "buff_attack" into a Kind.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == key {
			return Kind(i), nil
		}
	}
	return None, apperr.Unknown(fmt.Sprintf("unknown effect %q", s))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Status is one application of a lingering effect on a creature. Statuses
// accumulate one entry per application; nothing ticks them down yet.
type Status struct {
	Kind      Kind
	Magnitude int
	Turns     int
}

// Amount rolls the magnitude of an ability-sourced effect: power jittered by
// a uniform draw in [-0.5, 0.5) scaled to half the power, i.e. ±25%,
// truncated toward zero.
func Amount(rng *rand.Rand, power int) int {
	jitter := rng.Float64() - 0.5
	return int(float64(power) + jitter*float64(power)/2)
}
