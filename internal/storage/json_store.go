package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"daytrack/internal/models"
)

// Store is the on-disk shape of the JSON backend: both persisted collections
// under their fixed keys, plus a format version.
type Store struct {
	Version int                         `json:"version"`
	Days    map[string]models.DayRecord `json:"dayTrackerData_v2"`
	Tasks   []models.TaskEntry          `json:"dayTrackerTasks_v2"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Days:    make(map[string]models.DayRecord),
		Tasks:   []models.TaskEntry{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daytrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.store.Days == nil {
		s.store.Days = make(map[string]models.DayRecord)
	}
	if s.store.Tasks == nil {
		s.store.Tasks = []models.TaskEntry{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Day(key string) models.DayRecord {
	if s.store == nil {
		return models.NewDayRecord()
	}
	return getOrDefault(s.store.Days, key)
}

func (s *JSONStore) AllDays() map[string]models.DayRecord {
	if s.store == nil {
		return map[string]models.DayRecord{}
	}
	return cloneDays(s.store.Days)
}

func (s *JSONStore) SetCategory(key string, cat models.Category, on bool) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Days = withDay(s.store.Days, key, func(rec *models.DayRecord) {
		rec.Categories[cat] = on
	})
	return s.save()
}

func (s *JSONStore) SetMood(key string, mood float64) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Days = withDay(s.store.Days, key, func(rec *models.DayRecord) {
		rec.Mood = mood
	})
	return s.save()
}

func (s *JSONStore) SetNote(key string, note string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Days = withDay(s.store.Days, key, func(rec *models.DayRecord) {
		rec.Note = note
	})
	return s.save()
}

func (s *JSONStore) ReplaceDays(days map[string]models.DayRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Days = cloneDays(days)
	return s.save()
}

func (s *JSONStore) Tasks() []models.TaskEntry {
	if s.store == nil {
		return nil
	}

	tasks := make([]models.TaskEntry, len(s.store.Tasks))
	copy(tasks, s.store.Tasks)
	return tasks
}

func (s *JSONStore) AddTask(text string) (models.TaskEntry, error) {
	if s.store == nil {
		return models.TaskEntry{}, fmt.Errorf("storage not loaded")
	}

	// Blank input is ignored without an error
	if isBlank(text) {
		return models.TaskEntry{}, nil
	}

	task := models.TaskEntry{
		ID:   newTaskID(s.store.Tasks, time.Now()),
		Text: text,
	}
	s.store.Tasks = append(s.store.Tasks, task)
	if err := s.save(); err != nil {
		return models.TaskEntry{}, err
	}

	return task, nil
}

func (s *JSONStore) DeleteTask(id int64) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := make([]models.TaskEntry, 0, len(s.store.Tasks))
	found := false
	for _, t := range s.store.Tasks {
		if !found && t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("task not found: %d", id)
	}

	s.store.Tasks = kept
	return s.save()
}

func (s *JSONStore) ReplaceTasks(tasks []models.TaskEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Tasks = make([]models.TaskEntry, len(tasks))
	copy(s.store.Tasks, tasks)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
