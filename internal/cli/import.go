package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"daytrack/internal/backup"
	"daytrack/internal/logger"
)

type ImportCmd struct {
	File string `arg:"" help:"Backup file to import." type:"existingfile"`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: Collections present in the backup replace your current data.")
		fmt.Println("A snapshot of your current store will be created first.")
		fmt.Printf("\nImport from: %s\n", c.File)
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticSnapshot()

	if err := backup.Import(ctx.Store, c.File); err != nil {
		logger.Error("import failed", "file", c.File, "err", err)
		return err
	}

	fmt.Println("✓ Backup imported.")
	return nil
}
