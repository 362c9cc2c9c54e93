package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"static-decay/internal/engine"

	"github.com/google/uuid"
)

// RunLogFile is the JSON-lines file appended to after every run.
const RunLogFile = "runs.jsonl"

// RunRecord is one finished run as written to runs.jsonl.
type RunRecord struct {
	ID     string       `json:"id"`
	Time   time.Time    `json:"time"`
	Player string       `json:"player,omitempty"`
	Seed   int64        `json:"seed"`
	Stats  engine.Stats `json:"stats"`
}

func newRunRecord(player string, seed int64, stats engine.Stats) RunRecord {
	return RunRecord{
		ID:     uuid.NewString(),
		Time:   time.Now().UTC(),
		Player: player,
		Seed:   seed,
		Stats:  stats,
	}
}

// appendRunLog appends rec as a single JSON line to dir/runs.jsonl,
// creating dir if needed.
func appendRunLog(dir string, rec RunRecord) error {
	if dir == "" {
		return fmt.Errorf("run log: no data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("run log: encode: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, RunLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("run log: write: %w", err)
	}
	return nil
}
