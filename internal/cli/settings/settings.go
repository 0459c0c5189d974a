package settings

import (
	"fmt"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme *string `help:"Set the theme preference (light|dark|system)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:          %s\n", settings.Theme)
		fmt.Printf("  First launch:   %v\n", settings.IsFirstLaunch)
		fmt.Printf("  Current streak: %d\n", settings.Streaks.Current)
		fmt.Printf("  Longest streak: %d\n", settings.Streaks.Longest)
		return nil
	}

	updated := false
	if c.Theme != nil {
		theme, err := models.ParseTheme(*c.Theme)
		if err != nil {
			return err
		}
		settings.Theme = theme
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
