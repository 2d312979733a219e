package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"creature-arena/internal/battle"
)

// recordFile is the JSONL file battle records are appended to.
const recordFile = "battles.jsonl"

// BattleRecord is one line of the battle log.
type BattleRecord struct {
	battle.Summary
	Trainer string    `json:"trainer"`
	Fled    bool      `json:"fled,omitempty"`
	At      time.Time `json:"at"`
}

// saveBattleRecord appends rec as a single JSON line to dir/battles.jsonl,
// creating dir when needed.
func saveBattleRecord(dir string, rec BattleRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode battle record: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, recordFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open battle log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write battle log: %w", err)
	}
	return nil
}
