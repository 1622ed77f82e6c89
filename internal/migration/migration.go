// Package migration manages the SQLite backend's schema with numbered SQL
// files applied in order. The schema version lives in PRAGMA user_version.
package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migration is one numbered schema step.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Runner applies migrations from a filesystem to a database.
type Runner struct {
	db   *sql.DB
	fsys fs.FS
}

// NewRunner creates a runner over an arbitrary migration filesystem, used by
// tests. Production code uses NewEmbeddedRunner.
func NewRunner(db *sql.DB, fsys fs.FS) *Runner {
	return &Runner{db: db, fsys: fsys}
}

// NewEmbeddedRunner creates a runner over the migrations compiled into the
// binary.
func NewEmbeddedRunner(db *sql.DB) *Runner {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		// The embedded tree always contains migrations/.
		panic(err)
	}
	return &Runner{db: db, fsys: sub}
}

var migrationName = regexp.MustCompile(`^(\d+)_(.+)\.sql$`)

// ReadMigrationFiles returns every migration sorted by version.
func (r *Runner) ReadMigrationFiles() ([]Migration, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := migrationName.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		version, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		data, err := fs.ReadFile(r.fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, Migration{
			Version: version,
			Name:    m[2],
			SQL:     string(data),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// GetCurrentVersion reads the database's schema version.
func (r *Runner) GetCurrentVersion() (int, error) {
	var version int
	if err := r.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// SetVersion records a new schema version.
func (r *Runner) SetVersion(version int) error {
	// PRAGMA does not accept bound parameters
	_, err := r.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version))
	return err
}

// GetLatestVersion returns the highest available migration version.
func (r *Runner) GetLatestVersion() (int, error) {
	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, err
	}
	if len(migrations) == 0 {
		return 0, nil
	}
	return migrations[len(migrations)-1].Version, nil
}

// ValidateVersion fails when the database was written by a newer binary.
func (r *Runner) ValidateVersion() error {
	current, err := r.GetCurrentVersion()
	if err != nil {
		return err
	}
	latest, err := r.GetLatestVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

// ApplyMigrations runs every pending migration in order and returns how many
// were applied. logf, when non-nil, receives a progress line per migration.
func (r *Runner) ApplyMigrations(logf func(string)) (int, error) {
	current, err := r.GetCurrentVersion()
	if err != nil {
		return 0, err
	}

	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if logf != nil {
			logf(fmt.Sprintf("Applying migration %03d_%s", m.Version, m.Name))
		}
		if _, err := r.db.Exec(m.SQL); err != nil {
			return applied, fmt.Errorf("migration %03d_%s failed: %w", m.Version, m.Name, err)
		}
		if err := r.SetVersion(m.Version); err != nil {
			return applied, fmt.Errorf("failed to record version %d: %w", m.Version, err)
		}
		applied++
	}

	return applied, nil
}
