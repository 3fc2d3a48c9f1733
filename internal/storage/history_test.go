package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	h, err := NewHistory(t.TempDir())
	require.NoError(t, err)

	got, err := h.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryAddAndRecent(t *testing.T) {
	h, err := NewHistory(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	first, err := h.Add(HistoryEntry{Source: "seed", Seed: "#3f51b5", Mode: "dark"})
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01T12:00:00Z", first.Timestamp)

	_, err = h.Add(HistoryEntry{Source: "wallpaper", Name: "sea.png", Seed: "#2020a0", Mode: "dark"})
	require.NoError(t, err)
	_, err = h.Add(HistoryEntry{Source: "seed", Seed: "#3f51b5", Mode: "dark"})
	require.NoError(t, err)
	_, err = h.Add(HistoryEntry{Source: "seed", Seed: "#3f51b5", Mode: "light"})
	require.NoError(t, err)

	got, err := h.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 3, "repeated seed and mode collapse")
	assert.Equal(t, "#3f51b5 light", got[0].Label())
	assert.Equal(t, "#3f51b5 dark", got[1].Label())
	assert.Equal(t, "#2020a0 dark (sea.png)", got[2].Label())
	assert.NotEqual(t, first.ID, got[1].ID, "newest duplicate wins")

	got, err = h.Recent(1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestHistoryStopsAtTornLine(t *testing.T) {
	dir := t.TempDir()
	h, err := NewHistory(dir)
	require.NoError(t, err)
	_, err = h.Add(HistoryEntry{Source: "seed", Seed: "#112233", Mode: "dark"})
	require.NoError(t, err)

	f, err := os.OpenFile(filepath.Join(dir, "history.jsonl"), os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"id":"x","seed":`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := h.Recent(5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "#112233", got[0].Seed)
}
