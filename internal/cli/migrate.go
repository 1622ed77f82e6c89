package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"daytrack/internal/storage"
)

type MigrateCmd struct {
	Target string `arg:"" help:"Target store path; a .db extension selects the SQLite backend, anything else JSON." type:"path"`
}

func (c *MigrateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	target, err := filepath.Abs(c.Target)
	if err != nil {
		return err
	}
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("target already exists: %s", target)
	}

	var dest storage.Provider
	if strings.HasSuffix(target, ".db") {
		dest = storage.NewSQLiteStore(target)
	} else {
		dest = storage.NewJSONStore(target)
	}

	if err := dest.Init(); err != nil {
		return fmt.Errorf("failed to initialize target store: %w", err)
	}
	defer dest.Close()

	if err := dest.ReplaceDays(ctx.Store.AllDays()); err != nil {
		return fmt.Errorf("failed to copy day records: %w", err)
	}
	if err := dest.ReplaceTasks(ctx.Store.Tasks()); err != nil {
		return fmt.Errorf("failed to copy tasks: %w", err)
	}

	fmt.Printf("✓ Migrated store to %s\n", target)
	fmt.Printf("Run daytrack with --config %s to use it.\n", target)
	return nil
}
