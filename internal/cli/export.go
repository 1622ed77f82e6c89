package cli

import (
	"fmt"

	"daytrack/internal/backup"
)

type ExportCmd struct {
	Dir string `arg:"" help:"Directory to write the backup into." type:"existingdir" default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	path, err := backup.Export(ctx.Store, c.Dir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported backup: %s\n", path)
	return nil
}
