package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing storage: %w", err)
		}
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized proudly storage at: %s\n", ctx.Store.GetConfigPath())

	// First-launch welcome, shown once
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if settings.IsFirstLaunch {
		fmt.Println()
		fmt.Println("Welcome to Proudly! Record one thing you're proud of each day.")
		fmt.Println("Start with: proudly entry add \"...\"")
		settings.IsFirstLaunch = false
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	return nil
}

func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if ctx.UsingSQLite() {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
		return nil
	}

	for _, name := range []string{constants.EntriesDocumentName, constants.SettingsDocumentName} {
		doc := filepath.Join(path, name)
		if _, err := os.Stat(doc); err == nil {
			if err := os.Remove(doc); err != nil {
				return fmt.Errorf("failed to delete existing document: %w", err)
			}
			fmt.Printf("Deleted existing document at: %s\n", doc)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing document: %w", err)
		}
	}
	return nil
}
