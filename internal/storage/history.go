package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one generated palette.
type HistoryEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Name      string `json:"name,omitempty"`
	Seed      string `json:"seed"`
	Mode      string `json:"mode"`
}

// Label is the short text shown for the entry in pickers.
func (e HistoryEntry) Label() string {
	if e.Name != "" {
		return e.Seed + " " + e.Mode + " (" + e.Name + ")"
	}
	return e.Seed + " " + e.Mode
}

// History is an append-only JSON lines file of generated palettes.
type History struct {
	mu       sync.Mutex
	filePath string
	now      func() time.Time
}

func NewHistory(dir string) (*History, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &History{
		filePath: filepath.Join(dir, "history.jsonl"),
		now:      time.Now,
	}, nil
}

// Add stamps entry with a fresh ID and time and appends it.
func (h *History) Add(entry HistoryEntry) (HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.Timestamp = h.now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(entry)
	if err != nil {
		return entry, fmt.Errorf("failed to marshal entry: %w", err)
	}

	f, err := os.OpenFile(h.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return entry, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return entry, fmt.Errorf("failed to write entry: %w", err)
	}
	return entry, nil
}

// Recent returns up to n entries, newest first, skipping repeated seeds.
// Malformed lines are skipped.
func (h *History) Recent(n int) ([]HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(h.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	var all []HistoryEntry
	dec := json.NewDecoder(f)
	for dec.More() {
		var entry HistoryEntry
		if err := dec.Decode(&entry); err != nil {
			// A torn line leaves the decoder unusable; keep what was read.
			break
		}
		all = append(all, entry)
	}

	out := []HistoryEntry{}
	seen := make(map[string]bool)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		key := all[i].Seed + "/" + all[i].Mode
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, all[i])
	}
	return out, nil
}
