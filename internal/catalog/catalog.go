// Package catalog loads ability and creature definitions from JSON or YAML
// files and builds the Pokedex wild creatures are drawn from.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"creature-arena/assets"
	"creature-arena/internal/apperr"
)

// Format is a catalog file encoding.
type Format uint8

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, apperr.Unknown(fmt.Sprintf("catalog format of %q", path))
}

// AbilityRecord is one ability entry of an ability catalog.
type AbilityRecord struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Cooldown    int    `json:"cooldown" yaml:"cooldown"`
	Duration    int    `json:"duration" yaml:"duration"`
	Power       int    `json:"power" yaml:"power"`
	Level       int    `json:"level" yaml:"level"`
	Effect      string `json:"effect" yaml:"effect"`
}

// CreatureRecord is one species entry of a creature catalog.
type CreatureRecord struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Tier        int    `json:"tier" yaml:"tier"`
	BaseHP      int    `json:"baseHP" yaml:"baseHP"`
	BaseAttack  int    `json:"baseAttack" yaml:"baseAttack"`
	BaseDefense int    `json:"baseDefense" yaml:"baseDefense"`
	BaseSpeed   int    `json:"baseSpeed" yaml:"baseSpeed"`
	EvolvesInto string `json:"evolvesInto" yaml:"evolvesInto"`
}

// Skip records one catalog entry that was not loaded.
type Skip struct {
	Name   string
	Reason error
}

// Report summarizes a load.
type Report struct {
	Loaded  int
	Skipped []Skip
}

func (r *Report) skip(name string, err error) {
	r.Skipped = append(r.Skipped, Skip{Name: name, Reason: err})
}

// decode reads a list of records in the given format.
func decode[T any](r io.Reader, f Format) ([]T, error) {
	var out []T
	var err error
	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&out)
	default:
		err = json.NewDecoder(r).Decode(&out)
	}
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", f, err)
	}
	return out, nil
}

// open reads records from path, picking the format from its extension.
func open[T any](path string) ([]T, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	return decode[T](file, f)
}

// Open builds a Pokedex from an ability catalog and a creature catalog. An
// empty path selects the embedded default for that catalog. The returned
// report covers both files.
func Open(abilitiesPath, creaturesPath string, rng *rand.Rand, logger *slog.Logger) (*Pokedex, Report, error) {
	var (
		abilities *Abilities
		arep      Report
		err       error
	)
	if abilitiesPath == "" {
		abilities, arep, err = ReadAbilities(bytes.NewReader(assets.Abilities), YAML, logger)
	} else {
		abilities, arep, err = LoadAbilities(abilitiesPath, logger)
	}
	if err != nil {
		return nil, Report{}, fmt.Errorf("abilities: %w", err)
	}

	var (
		dex  *Pokedex
		crep Report
	)
	if creaturesPath == "" {
		dex, crep, err = ReadPokedex(bytes.NewReader(assets.Creatures), JSON, abilities, rng, logger)
	} else {
		dex, crep, err = LoadPokedex(creaturesPath, abilities, rng, logger)
	}
	if err != nil {
		return nil, Report{}, fmt.Errorf("creatures: %w", err)
	}
	return dex, Report{
		Loaded:  arep.Loaded + crep.Loaded,
		Skipped: append(arep.Skipped, crep.Skipped...),
	}, nil
}
