// Package backup covers both transfer backups (the JSON envelope a user
// exports and imports by hand) and local safety snapshots of the store file
// taken before destructive operations.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"daytrack/internal/datekey"
	"daytrack/internal/models"
	"daytrack/internal/storage"
)

// ExportFileName is the transfer backup name for a given date key.
func ExportFileName(dateKey string) string {
	return fmt.Sprintf("tracker_backup_%s.json", dateKey)
}

// Export writes the full-state envelope to dir, named after today's date
// key, and returns the file path.
func Export(store storage.Provider, dir string) (string, error) {
	envelope := models.Backup{
		Data:  store.AllDays(),
		Tasks: store.Tasks(),
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	path := filepath.Join(dir, ExportFileName(datekey.Today()))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	return path, nil
}

// Import reads an envelope file and replaces store collections with the
// fields it carries. A malformed file aborts with zero state change; a
// missing field leaves that collection untouched, so partial backups are
// supported. Shapes beyond JSON syntax are not validated.
func Import(store storage.Provider, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var envelope models.Backup
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("file error: not a valid backup: %w", err)
	}

	if envelope.Data != nil {
		if err := store.ReplaceDays(envelope.Data); err != nil {
			return fmt.Errorf("failed to restore day records: %w", err)
		}
	}
	if envelope.Tasks != nil {
		if err := store.ReplaceTasks(envelope.Tasks); err != nil {
			return fmt.Errorf("failed to restore tasks: %w", err)
		}
	}

	return nil
}
