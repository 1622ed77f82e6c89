package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"001_first.sql":  {Data: []byte("CREATE TABLE first (id INTEGER PRIMARY KEY);")},
		"002_second.sql": {Data: []byte("CREATE TABLE second (id INTEGER PRIMARY KEY);")},
		"notes.txt":      {Data: []byte("not a migration")},
	}
}

func TestReadMigrationFiles(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations())

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}

	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "first" {
		t.Errorf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "second" {
		t.Errorf("unexpected second migration: %+v", migrations[1])
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations())

	var logged []string
	applied, err := runner.ApplyMigrations(func(s string) { logged = append(logged, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied migrations, got %d", applied)
	}
	if len(logged) != 2 {
		t.Errorf("expected 2 log lines, got %d", len(logged))
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected schema version 2, got %d", version)
	}

	// Both tables exist.
	for _, table := range []string{"first", "second"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s was not created: %v", table, err)
		}
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations())

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations failed: %v", err)
	}

	// A second run sees nothing pending.
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 applied migrations on second run, got %d", applied)
	}
}

func TestGetLatestVersion(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations())

	latest, err := runner.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion failed: %v", err)
	}
	if latest != 2 {
		t.Errorf("expected latest version 2, got %d", latest)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations())

	if err := runner.SetVersion(99); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for schema newer than supported, got nil")
	}
}

func TestValidateVersionAcceptsCurrentSchema(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations())

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("expected current schema to validate, got %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewEmbeddedRunner(db)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied < 1 {
		t.Errorf("expected at least one embedded migration, got %d", applied)
	}

	// The blobs table backs the SQLite store.
	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='blobs'").Scan(&name)
	if err != nil {
		t.Errorf("blobs table was not created: %v", err)
	}
}
