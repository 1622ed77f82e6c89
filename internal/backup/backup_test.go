package backup

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"daytrack/internal/datekey"
	"daytrack/internal/models"
	"daytrack/internal/storage"
)

func setupTestStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "daytrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestStore(t)
	if err := src.SetCategory("2026-08-29", models.CategoryGoals, true); err != nil {
		t.Fatalf("failed to set category: %v", err)
	}
	if err := src.SetMood("2026-08-29", 4.5); err != nil {
		t.Fatalf("failed to set mood: %v", err)
	}
	if err := src.SetNote("2026-08-30", "productive"); err != nil {
		t.Fatalf("failed to set note: %v", err)
	}
	if _, err := src.AddTask("buy groceries"); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	dir := t.TempDir()
	path, err := Export(src, dir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != ExportFileName(datekey.Today()) {
		t.Errorf("unexpected export file name: %s", filepath.Base(path))
	}

	dst := setupTestStore(t)
	if err := Import(dst, path); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if !reflect.DeepEqual(dst.AllDays(), src.AllDays()) {
		t.Errorf("day records did not round-trip:\nexported %v\nimported %v", src.AllDays(), dst.AllDays())
	}
	if !reflect.DeepEqual(dst.Tasks(), src.Tasks()) {
		t.Errorf("tasks did not round-trip:\nexported %v\nimported %v", src.Tasks(), dst.Tasks())
	}
}

func TestExportEmptyStoreRoundTrips(t *testing.T) {
	src := setupTestStore(t)

	path, err := Export(src, t.TempDir())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// The envelope always carries both fields, so importing an empty backup
	// clears a populated store rather than leaving it untouched.
	dst := setupTestStore(t)
	if _, err := dst.AddTask("stale task"); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := Import(dst, path); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(dst.AllDays()) != 0 || len(dst.Tasks()) != 0 {
		t.Error("importing an empty backup should clear both collections")
	}
}

func TestImportPartialBackup(t *testing.T) {
	store := setupTestStore(t)
	if err := store.SetNote("2026-08-30", "keep me"); err != nil {
		t.Fatalf("failed to set note: %v", err)
	}
	if _, err := store.AddTask("old task"); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	// A tasks-only envelope: day records must survive the import.
	path := filepath.Join(t.TempDir(), "partial.json")
	envelope := `{"tasks": [{"id": 1756500000000, "text": "imported task"}]}`
	if err := os.WriteFile(path, []byte(envelope), 0600); err != nil {
		t.Fatalf("failed to write partial backup: %v", err)
	}

	if err := Import(store, path); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if store.Day("2026-08-30").Note != "keep me" {
		t.Error("partial import clobbered day records")
	}
	tasks := store.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "imported task" {
		t.Errorf("tasks not replaced by partial import: %v", tasks)
	}
}

func TestImportMalformedFileLeavesStateUntouched(t *testing.T) {
	store := setupTestStore(t)
	if err := store.SetMood("2026-08-30", 2.0); err != nil {
		t.Fatalf("failed to set mood: %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write broken file: %v", err)
	}

	err := Import(store, path)
	if err == nil {
		t.Fatal("expected error importing malformed file, got nil")
	}
	if !strings.Contains(err.Error(), "not a valid backup") {
		t.Errorf("unexpected error message: %v", err)
	}

	if store.Day("2026-08-30").Mood != 2.0 {
		t.Error("failed import must not change existing state")
	}
}

func TestImportMissingFile(t *testing.T) {
	store := setupTestStore(t)
	if err := Import(store, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error importing missing file, got nil")
	}
}
