package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"daytrack/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateSnapshot()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	fmt.Printf("✓ Snapshot created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	snapshots, err := mgr.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found.")
		fmt.Printf("Snapshots are stored in: %s\n", mgr.GetSnapshotDir())
		return nil
	}

	fmt.Printf("Available snapshots (%d total, keeping most recent %d):\n\n", len(snapshots), backup.MaxSnapshots)
	for _, s := range snapshots {
		sizeKB := float64(s.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n", s.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(s.Path), sizeKB)
	}
	fmt.Printf("\nSnapshot directory: %s\n", mgr.GetSnapshotDir())

	return nil
}

type BackupRestoreCmd struct {
	Snapshot string `arg:"" help:"Path or filename of the snapshot to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	snapshotPath := c.Snapshot
	if !filepath.IsAbs(snapshotPath) {
		// Bare filenames resolve against the snapshot directory
		possible := filepath.Join(mgr.GetSnapshotDir(), c.Snapshot)
		if _, err := os.Stat(possible); err == nil {
			snapshotPath = possible
		}
	}

	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		return fmt.Errorf("snapshot not found: %s", snapshotPath)
	}

	fmt.Println("⚠️  WARNING: This will replace your current store with the snapshot.")
	fmt.Println("A snapshot of your current store will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", filepath.Base(snapshotPath))
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	response = strings.TrimSpace(strings.ToLower(response))

	if response != "y" && response != "yes" {
		fmt.Println("Restore cancelled.")
		return nil
	}

	// Release the store file before swapping it out
	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
	}

	if err := mgr.RestoreSnapshot(snapshotPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Store restored successfully!")
	return nil
}
