package cli

import (
	"fmt"

	"github.com/blsam/trackie/internal/backup"
)

type BackupCreateCmd struct{}

func (cmd *BackupCreateCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.StorePath())
	path, err := manager.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (cmd *BackupListCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.StorePath())
	backups, err := manager.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups.")
		return nil
	}
	for _, info := range backups {
		fmt.Printf("%s  %8d bytes  %s\n", info.Timestamp.Format("2006-01-02 15:04:05"), info.Size, info.Path)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" type:"path" help:"Backup archive to restore."`
}

func (cmd *BackupRestoreCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.StorePath())
	if err := manager.Restore(cmd.Path); err != nil {
		return err
	}
	fmt.Printf("Restored store from %s\n", cmd.Path)
	return nil
}
