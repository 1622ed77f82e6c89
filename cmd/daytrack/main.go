package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"daytrack/internal/cli"
	"daytrack/internal/logger"
	"daytrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path; a .db extension selects the SQLite backend." type:"path" default:"~/.config/daytrack/daytrack.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize daytrack storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day    cli.DayCmd    `cmd:"" help:"Show a day's record."`
	Track  cli.TrackCmd  `cmd:"" help:"Toggle an activity category for a day."`
	Mood   cli.MoodCmd   `cmd:"" help:"Set a day's mood score."`
	Note   cli.NoteCmd   `cmd:"" help:"Set or clear a day's note."`
	Stats  cli.StatsCmd  `cmd:"" help:"Chart week/month/year trends."`
	Export cli.ExportCmd `cmd:"" help:"Export all data as a backup file."`
	Import cli.ImportCmd `cmd:"" help:"Import a backup file."`
	Task   struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a task."`
		List   cli.TaskListCmd   `cmd:"" help:"List all tasks."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task by ID."`
	} `cmd:"" help:"Manage the task list."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the store file."`
		List    cli.BackupListCmd    `cmd:"" help:"List store snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a store snapshot."`
	} `cmd:"" help:"Manage store snapshots."`
	Migrate cli.MigrateCmd `cmd:"" help:"Copy the store to another backend."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daytrack"),
		kong.Description("Personal daily tracker: activities, mood and notes, all on this device"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the backend by extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("failed to close store", "err", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
