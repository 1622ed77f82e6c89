package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"daytrack/internal/migration"
	"daytrack/internal/models"
)

// SQLiteStore keeps the same two JSON collections as the JSON backend, stored
// as rows of a key-value blobs table. State is held in memory and written
// through on every mutation, one collection per row.
type SQLiteStore struct {
	path  string
	db    *sql.DB
	days  map[string]models.DayRecord
	tasks []models.TaskEntry
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner := migration.NewEmbeddedRunner(db)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.days = make(map[string]models.DayRecord)
	s.tasks = []models.TaskEntry{}

	if err := s.saveDays(); err != nil {
		return err
	}
	return s.saveTasks()
}

func (s *SQLiteStore) Load() error {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daytrack init' first")
		}

		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	runner := migration.NewEmbeddedRunner(s.db)
	if err := runner.ValidateVersion(); err != nil {
		return err
	}
	if _, err := runner.ApplyMigrations(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.days = make(map[string]models.DayRecord)
	if err := s.readBlob(DataKey, &s.days); err != nil {
		return err
	}
	s.tasks = []models.TaskEntry{}
	if err := s.readBlob(TasksKey, &s.tasks); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetDB exposes the handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) readBlob(key string, dest any) error {
	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) writeBlob(key string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, datetime('now')) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) saveDays() error {
	return s.writeBlob(DataKey, s.days)
}

func (s *SQLiteStore) saveTasks() error {
	return s.writeBlob(TasksKey, s.tasks)
}

func (s *SQLiteStore) loaded() bool {
	return s.db != nil && s.days != nil
}

func (s *SQLiteStore) Day(key string) models.DayRecord {
	if !s.loaded() {
		return models.NewDayRecord()
	}
	return getOrDefault(s.days, key)
}

func (s *SQLiteStore) AllDays() map[string]models.DayRecord {
	if !s.loaded() {
		return map[string]models.DayRecord{}
	}
	return cloneDays(s.days)
}

func (s *SQLiteStore) SetCategory(key string, cat models.Category, on bool) error {
	if !s.loaded() {
		return fmt.Errorf("storage not loaded")
	}

	s.days = withDay(s.days, key, func(rec *models.DayRecord) {
		rec.Categories[cat] = on
	})
	return s.saveDays()
}

func (s *SQLiteStore) SetMood(key string, mood float64) error {
	if !s.loaded() {
		return fmt.Errorf("storage not loaded")
	}

	s.days = withDay(s.days, key, func(rec *models.DayRecord) {
		rec.Mood = mood
	})
	return s.saveDays()
}

func (s *SQLiteStore) SetNote(key string, note string) error {
	if !s.loaded() {
		return fmt.Errorf("storage not loaded")
	}

	s.days = withDay(s.days, key, func(rec *models.DayRecord) {
		rec.Note = note
	})
	return s.saveDays()
}

func (s *SQLiteStore) ReplaceDays(days map[string]models.DayRecord) error {
	if !s.loaded() {
		return fmt.Errorf("storage not loaded")
	}

	s.days = cloneDays(days)
	return s.saveDays()
}

func (s *SQLiteStore) Tasks() []models.TaskEntry {
	if !s.loaded() {
		return nil
	}

	tasks := make([]models.TaskEntry, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *SQLiteStore) AddTask(text string) (models.TaskEntry, error) {
	if !s.loaded() {
		return models.TaskEntry{}, fmt.Errorf("storage not loaded")
	}

	// Blank input is ignored without an error
	if isBlank(text) {
		return models.TaskEntry{}, nil
	}

	task := models.TaskEntry{
		ID:   newTaskID(s.tasks, time.Now()),
		Text: text,
	}
	s.tasks = append(s.tasks, task)
	if err := s.saveTasks(); err != nil {
		return models.TaskEntry{}, err
	}

	return task, nil
}

func (s *SQLiteStore) DeleteTask(id int64) error {
	if !s.loaded() {
		return fmt.Errorf("storage not loaded")
	}

	kept := make([]models.TaskEntry, 0, len(s.tasks))
	found := false
	for _, t := range s.tasks {
		if !found && t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("task not found: %d", id)
	}

	s.tasks = kept
	return s.saveTasks()
}

func (s *SQLiteStore) ReplaceTasks(tasks []models.TaskEntry) error {
	if !s.loaded() {
		return fmt.Errorf("storage not loaded")
	}

	s.tasks = make([]models.TaskEntry, len(tasks))
	copy(s.tasks, tasks)
	return s.saveTasks()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
