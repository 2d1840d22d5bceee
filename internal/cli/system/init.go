package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lifebalance/lifebalance/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues on the delete.
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(ctx.Store.GetConfigPath()), 0700); err != nil {
		return err
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized lifebalance storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
