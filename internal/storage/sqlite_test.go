package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveRun(RunRecord{Slot: "local", Level: 4, Coins: 1, TimeLeft: 90, Speed: 160}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := store.LoadRun("local")
	if err != nil || rec == nil {
		t.Fatalf("LoadRun() = %v, %v", rec, err)
	}
	if rec.Level != 4 {
		t.Errorf("Level = %d, expected 4", rec.Level)
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	rec := RunRecord{Slot: "local", RunID: "run-1", Seed: 77, Level: 3, Coins: 5, TimeLeft: 120, Speed: 140}
	if err := store.SaveRun(rec); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.LoadRun("local")
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}
	if got == nil {
		t.Fatal("LoadRun() returned nil for a saved slot")
	}
	if got.RunID != "run-1" || got.Seed != 77 || got.Level != 3 || got.Coins != 5 || got.TimeLeft != 120 || got.Speed != 140 {
		t.Errorf("LoadRun() = %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestSaveRunOverwritesSlot(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Slot: "local", RunID: "a", Level: 2})
	store.SaveRun(RunRecord{Slot: "local", RunID: "b", Level: 9})
	store.SaveRun(RunRecord{Slot: "other", RunID: "c", Level: 5})

	got, _ := store.LoadRun("local")
	if got == nil || got.RunID != "b" || got.Level != 9 {
		t.Errorf("slot should hold the latest save, got %+v", got)
	}
	other, _ := store.LoadRun("other")
	if other == nil || other.Level != 5 {
		t.Errorf("other slot affected: %+v", other)
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRun(RunRecord{Slot: "local", Level: 1}); err != nil {
		t.Fatal(err)
	}
	got, _ := store.LoadRun("local")
	if got == nil || got.RunID == "" {
		t.Errorf("expected a generated run ID, got %+v", got)
	}
}

func TestSaveRunRejectsEmptySlot(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveRun(RunRecord{Level: 1}); err == nil {
		t.Error("SaveRun() with empty slot should fail")
	}
}

func TestLoadRunMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadRun("nobody")
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty slot, got %+v", got)
	}
}

func TestClearRun(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Slot: "local", Level: 2})
	if err := store.ClearRun("local"); err != nil {
		t.Fatalf("ClearRun() failed: %v", err)
	}
	if got, _ := store.LoadRun("local"); got != nil {
		t.Errorf("slot should be empty, got %+v", got)
	}

	if err := store.ClearRun("local"); err != nil {
		t.Errorf("clearing an empty slot should succeed: %v", err)
	}
}

func TestCompletionLog(t *testing.T) {
	store := openTestStore(t)

	n, err := store.CompletionCount()
	if err != nil || n != 0 {
		t.Fatalf("CompletionCount() = %d, %v", n, err)
	}

	for i, player := range []string{"ana", "ben", "cy"} {
		id, err := store.RecordCompletion(Completion{RunID: player + "-run", Player: player, DurationSecs: 1000 + i})
		if err != nil {
			t.Fatalf("RecordCompletion() failed: %v", err)
		}
		if id == 0 {
			t.Error("expected a non-zero ID")
		}
	}

	n, _ = store.CompletionCount()
	if n != 3 {
		t.Errorf("CompletionCount() = %d, expected 3", n)
	}

	entries, err := store.Completions(2)
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries with limit, got %d", len(entries))
	}
	// Same-second inserts fall back to ID order, newest first
	if entries[0].Player != "cy" || entries[1].Player != "ben" {
		t.Errorf("unexpected order: %+v", entries)
	}
	if entries[0].DurationSecs != 1002 {
		t.Errorf("DurationSecs = %d, expected 1002", entries[0].DurationSecs)
	}
}

func TestRecordCompletionAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordCompletion(Completion{Player: "ana"}); err != nil {
		t.Fatal(err)
	}
	entries, _ := store.Completions(0)
	if len(entries) != 1 || entries[0].RunID == "" {
		t.Errorf("expected one entry with a run ID, got %+v", entries)
	}
}
