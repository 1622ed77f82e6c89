package models

// Backup is the export/import envelope: a full snapshot of the record store
// and task list. On import a nil field means "leave that collection
// unchanged", so partial backups restore cleanly.
type Backup struct {
	Data  map[string]DayRecord `json:"data"`
	Tasks []TaskEntry          `json:"tasks"`
}
