package system

import (
	"fmt"
	"path/filepath"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/constants"
)

type DebugCmd struct {
	Info DebugInfoCmd `cmd:"" default:"1" help:"Show storage paths and counts."`
}

type DebugInfoCmd struct{}

func (c *DebugInfoCmd) Run(ctx *cli.Context) error {
	backend := "json"
	configDir := ctx.Store.GetConfigPath()
	if ctx.UsingSQLite() {
		backend = "sqlite"
		configDir = filepath.Dir(configDir)
	}

	fmt.Printf("Version:     %s\n", constants.Version)
	fmt.Printf("Backend:     %s\n", backend)
	fmt.Printf("Config path: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Log file:    %s\n", filepath.Join(configDir, "logs", "proudly.log"))

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	fmt.Printf("Entries:     %d\n", len(entries))

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Printf("Streak:      current=%d longest=%d last=%s\n",
		settings.Streaks.Current, settings.Streaks.Longest, settings.Streaks.LastPostDate)
	return nil
}
