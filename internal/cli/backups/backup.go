package backups

import (
	"fmt"

	"github.com/proudly-app/proudly/internal/backup"
	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/dateutil"
)

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if !ctx.UsingSQLite() {
		return nil, fmt.Errorf("backups are not supported for the JSON backend, please use SQLite")
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", dateutil.FormatDateAndTime(b.Timestamp), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	// Close the live database before overwriting it
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}

	if err := mgr.RestoreBackup(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored backup from: %s\n", c.Path)
	return nil
}
