// Package element holds the elemental type tags and the type-effectiveness
// chart.
package element

import (
	"fmt"
	"strings"

	"creature-arena/internal/apperr"
)

// Type is an elemental type tag.
type Type uint8

const (
	Normal Type = iota // ability-only tag, also the catalog fallback group
	Fire
	Water
	Grass
	Electric
	Rock
	Poison
	Ice
)

var names = [...]string{
	Normal:   "normal",
	Fire:     "fire",
	Water:    "water",
	Grass:    "grass",
	Electric: "electric",
	Rock:     "rock",
	Poison:   "poison",
	Ice:      "ice",
}

func (t Type) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Creature reports whether a creature may carry this type.
func (t Type) Creature() bool {
	return t >= Fire && t <= Ice
}

// CreatureTypes lists every creature type in declaration order.
func CreatureTypes() []Type {
	return []Type{Fire, Water, Grass, Electric, Rock, Poison, Ice}
}

// Parse converts a catalog tag such as "fire" into a Type.
func Parse(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Type(i), nil
		}
	}
	return Normal, apperr.Unknown(fmt.Sprintf("unknown type %q", s))
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
