package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxSnapshots is the number of safety snapshots to keep.
	MaxSnapshots = 14
	// SnapshotDirName is the directory next to the store file.
	SnapshotDirName = "backups"
	// SnapshotFilePrefix is the prefix for snapshot files.
	SnapshotFilePrefix = "daytrack-"
)

// SnapshotInfo describes one safety snapshot.
type SnapshotInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager takes and restores safety snapshots of the store file. Snapshots
// keep the store file's extension, so both backends are covered.
type Manager struct {
	storePath   string
	snapshotDir string
}

// NewManager creates a manager for the given store path.
func NewManager(storePath string) *Manager {
	return &Manager{
		storePath:   storePath,
		snapshotDir: filepath.Join(filepath.Dir(storePath), SnapshotDirName),
	}
}

// GetSnapshotDir returns the snapshot directory path.
func (m *Manager) GetSnapshotDir() string {
	return m.snapshotDir
}

func (m *Manager) suffix() string {
	if ext := filepath.Ext(m.storePath); ext != "" {
		return ext
	}
	return ".json"
}

// CreateSnapshot copies the store file into the snapshot directory under a
// timestamped name and rotates old snapshots out.
func (m *Manager) CreateSnapshot() (string, error) {
	return m.createSnapshot(false)
}

// createSnapshot takes a snapshot; skipRotation prevents recursive rotation
// during restore.
func (m *Manager) createSnapshot(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.snapshotDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	// Minute precision first; fall back to seconds, then a counter, when a
	// snapshot with the same name already exists.
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.snapshotDir, SnapshotFilePrefix+timestamp+m.suffix())
	if _, err := os.Stat(path); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		path = filepath.Join(m.snapshotDir, SnapshotFilePrefix+timestamp+m.suffix())
		counter := 1
		for {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			path = filepath.Join(m.snapshotDir, fmt.Sprintf("%s%s-%d%s", SnapshotFilePrefix, timestamp, counter, m.suffix()))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique snapshot filename")
			}
		}
	}

	if err := copyFile(m.storePath, path); err != nil {
		return "", fmt.Errorf("failed to snapshot store: %w", err)
	}

	if !skipRotation {
		if err := m.rotateSnapshots(); err != nil {
			// Rotation failure should not fail the snapshot itself
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old snapshots: %v\n", err)
		}
	}

	return path, nil
}

// ListSnapshots returns all snapshots, newest first.
func (m *Manager) ListSnapshots() ([]SnapshotInfo, error) {
	if _, err := os.Stat(m.snapshotDir); os.IsNotExist(err) {
		return []SnapshotInfo{}, nil
	}

	entries, err := os.ReadDir(m.snapshotDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snapshots []SnapshotInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, SnapshotFilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, SnapshotFilePrefix), m.suffix())
		// Strip a trailing collision counter (always after the last hyphen,
		// never 4 or 6 digits which would be a time segment)
		parts := strings.Split(stamp, "-")
		if len(parts) > 2 {
			last := parts[len(parts)-1]
			if len(last) != 4 && len(last) != 6 && isDigits(last) {
				stamp = strings.Join(parts[:len(parts)-1], "-")
			}
		}

		timestamp, err := time.Parse("20060102-1504", stamp)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", stamp)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.snapshotDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		snapshots = append(snapshots, SnapshotInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})

	return snapshots, nil
}

func (m *Manager) rotateSnapshots() error {
	snapshots, err := m.ListSnapshots()
	if err != nil {
		return err
	}

	if len(snapshots) <= MaxSnapshots {
		return nil
	}

	for i := MaxSnapshots; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}

	return nil
}

// RestoreSnapshot replaces the store file with a snapshot, taking a snapshot
// of the current store first. The swap goes through a temp file and an
// atomic rename.
func (m *Manager) RestoreSnapshot(snapshotPath string) error {
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		return fmt.Errorf("snapshot does not exist: %s", snapshotPath)
	}

	if err := m.verifySnapshot(snapshotPath); err != nil {
		return fmt.Errorf("snapshot is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		current, err := m.createSnapshot(true)
		if err != nil {
			return fmt.Errorf("failed to snapshot current store before restore: %w", err)
		}
		fmt.Printf("Created snapshot of current store: %s\n", filepath.Base(current))
	}

	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(snapshotPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy snapshot: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore store: %w", err)
	}

	return nil
}

// verifySnapshot rejects obviously broken snapshot files. JSON stores must
// at least parse; other backends must be non-empty.
func (m *Manager) verifySnapshot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("snapshot is empty")
	}
	if m.suffix() != ".json" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("snapshot is not valid JSON")
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
