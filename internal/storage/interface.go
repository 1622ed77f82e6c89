package storage

import "daytrack/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Day records
	Day(key string) models.DayRecord
	AllDays() map[string]models.DayRecord
	SetCategory(key string, cat models.Category, on bool) error
	SetMood(key string, mood float64) error
	SetNote(key string, note string) error
	ReplaceDays(days map[string]models.DayRecord) error

	// Tasks
	Tasks() []models.TaskEntry
	AddTask(text string) (models.TaskEntry, error)
	DeleteTask(id int64) error
	ReplaceTasks(tasks []models.TaskEntry) error

	// Utils
	GetConfigPath() string
}
