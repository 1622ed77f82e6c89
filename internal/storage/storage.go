// Package storage persists the record store and task list. Two backends
// share the same write-through model: every mutation updates the in-memory
// state and immediately serializes the whole affected collection under its
// fixed key.
//
// Concurrency note:
//   - A store is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple daytrack processes against the same store path at the
//     same time is not supported and may lead to data loss.
package storage

import (
	"strings"
	"time"

	"daytrack/internal/models"
)

// Fixed persistence keys, shared by both backends and pinned by the backup
// format.
const (
	DataKey  = "dayTrackerData_v2"
	TasksKey = "dayTrackerTasks_v2"
)

// getOrDefault returns the stored record for key, or the implicit default
// (mood 3, no categories, empty note) without materializing it.
func getOrDefault(days map[string]models.DayRecord, key string) models.DayRecord {
	if rec, ok := days[key]; ok {
		return rec.Clone()
	}
	return models.NewDayRecord()
}

// withDay builds a new day map with key's record replaced by a mutated clone.
// The input map and every record it holds are left untouched, so snapshots
// handed out earlier stay valid.
func withDay(days map[string]models.DayRecord, key string, mutate func(*models.DayRecord)) map[string]models.DayRecord {
	next := make(map[string]models.DayRecord, len(days)+1)
	for k, v := range days {
		next[k] = v
	}
	rec := getOrDefault(days, key)
	mutate(&rec)
	next[key] = rec
	return next
}

// cloneDays deep-copies a day map.
func cloneDays(days map[string]models.DayRecord) map[string]models.DayRecord {
	out := make(map[string]models.DayRecord, len(days))
	for k, v := range days {
		out[k] = v.Clone()
	}
	return out
}

// newTaskID derives a task id from the current wall clock in milliseconds,
// bumped past every id already in the list so ids never collide even when
// two tasks are created within the same millisecond.
func newTaskID(tasks []models.TaskEntry, now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// isBlank reports whether a task text is empty or whitespace-only. Blank
// tasks are silently ignored rather than rejected with an error.
func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
