package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSlotsReadUnwritten(t *testing.T) {
	store := openTestStore(t)

	for slot := 0; slot < 3; slot++ {
		v, err := store.ReadSlot(slot)
		if err != nil {
			t.Fatalf("ReadSlot(%d) failed: %v", slot, err)
		}
		if v != 0 {
			t.Errorf("Unwritten slot %d should read 0, got %d", slot, v)
		}
	}
}

func TestSlotsWriteAndRead(t *testing.T) {
	store := openTestStore(t)

	writes := []struct {
		slot int
		v    byte
	}{
		{0, 12},
		{1, 255},
		{2, 1},
		{0, 40}, // overwrite
	}
	for _, w := range writes {
		if err := store.WriteSlot(w.slot, w.v); err != nil {
			t.Fatalf("WriteSlot(%d, %d) failed: %v", w.slot, w.v, err)
		}
	}

	want := map[int]byte{0: 40, 1: 255, 2: 1}
	for slot, v := range want {
		got, err := store.ReadSlot(slot)
		if err != nil {
			t.Fatalf("ReadSlot(%d) failed: %v", slot, err)
		}
		if got != v {
			t.Errorf("Slot %d: expected %d, got %d", slot, v, got)
		}
	}
}

func TestSlotsPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.WriteSlot(2, 77); err != nil {
		t.Fatalf("WriteSlot() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, err := store.ReadSlot(2)
	if err != nil {
		t.Fatalf("ReadSlot() failed: %v", err)
	}
	if v != 77 {
		t.Errorf("Expected 77 after reopen, got %d", v)
	}
}

func TestSlotsRange(t *testing.T) {
	store := openTestStore(t)

	for _, slot := range []int{-1, SlotCount} {
		if _, err := store.ReadSlot(slot); !errors.Is(err, ErrSlotRange) {
			t.Errorf("ReadSlot(%d): expected ErrSlotRange, got %v", slot, err)
		}
		if err := store.WriteSlot(slot, 1); !errors.Is(err, ErrSlotRange) {
			t.Errorf("WriteSlot(%d): expected ErrSlotRange, got %v", slot, err)
		}
	}
}

func TestSessionsTopAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	sessions := []struct {
		game  string
		score int
	}{
		{"flappy", 10},
		{"flappy", 5},
		{"snake", 7},
		{"flappy", 20},
	}
	for i, s := range sessions {
		if err := store.RecordSession(s.game, s.score, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions("flappy", 2)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 20 || top[1].Score != 10 {
		t.Errorf("Unexpected top sessions: %+v", top)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("Expected 4 recent sessions, got %d", len(recent))
	}
	if recent[0].Score != 20 || recent[3].Score != 10 {
		t.Errorf("Recent sessions not newest first: %+v", recent)
	}
	if !recent[0].CreatedAt.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("Expected created_at %v, got %v", base.Add(3*time.Minute), recent[0].CreatedAt)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	empty, err := store.Stats("pong")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.RecordSession("pong", 2, at)
	store.RecordSession("pong", 6, at.Add(time.Hour))

	stats, err := store.Stats("pong")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.AvgScore != 4 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if want := at.Add(time.Hour); !stats.LastPlayed.Equal(want) {
		t.Errorf("Expected LastPlayed %v, got %v", want, stats.LastPlayed)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 10, 19, 1, 4, 8, 245571096, time.UTC)

	tests := []struct {
		name string
		in   any
	}{
		{"stored layout", "2026-10-19 01:04:08.245571096"},
		{"time.Time string form", "2026-10-19 01:04:08.245571096 +0000 UTC"},
		{"rfc3339", "2026-10-19T01:04:08.245571096Z"},
		{"time value", want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, want)
			}
		})
	}
}

func TestClearGame(t *testing.T) {
	store := openTestStore(t)
	now := time.Now()

	store.WriteSlot(0, 9)
	store.WriteSlot(1, 3)
	store.RecordSession("flappy", 9, now)
	store.RecordSession("snake", 3, now)

	if err := store.ClearGame("flappy", 0); err != nil {
		t.Fatalf("ClearGame() failed: %v", err)
	}

	if v, _ := store.ReadSlot(0); v != 0 {
		t.Errorf("Flappy slot should be cleared, got %d", v)
	}
	if v, _ := store.ReadSlot(1); v != 3 {
		t.Errorf("Snake slot should be untouched, got %d", v)
	}
	if top, _ := store.TopSessions("flappy", 10); len(top) != 0 {
		t.Errorf("Expected no flappy sessions, got %d", len(top))
	}
	if top, _ := store.TopSessions("snake", 10); len(top) != 1 {
		t.Errorf("Snake sessions should not be affected by clearing flappy")
	}
}

func TestClearAll(t *testing.T) {
	store := openTestStore(t)

	store.WriteSlot(2, 50)
	store.RecordSession("pong", 50, time.Now())

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}

	if v, _ := store.ReadSlot(2); v != 0 {
		t.Errorf("Expected slot cleared, got %d", v)
	}
	if recent, _ := store.RecentSessions(10); len(recent) != 0 {
		t.Errorf("Expected empty history, got %d", len(recent))
	}
}
