package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/cli/backups"
	"github.com/proudly-app/proudly/internal/cli/entries"
	"github.com/proudly-app/proudly/internal/cli/settings"
	"github.com/proudly-app/proudly/internal/cli/streaks"
	"github.com/proudly-app/proudly/internal/cli/system"
	"github.com/proudly-app/proudly/internal/cli/views"
	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/errors"
	"github.com/proudly-app/proudly/internal/journal"
	"github.com/proudly-app/proudly/internal/logger"
	"github.com/proudly-app/proudly/internal/storage"
	"github.com/proudly-app/proudly/internal/streak"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path: a .db file for SQLite or a directory for JSON documents." default:"~/.config/proudly/proudly.db"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize proudly storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Debug  system.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
	Entry  struct {
		Add    entries.EntryAddCmd    `cmd:"" help:"Add a new entry."`
		Edit   entries.EntryEditCmd   `cmd:"" help:"Edit an existing entry."`
		Delete entries.EntryDeleteCmd `cmd:"" help:"Delete an entry."`
		Show   entries.EntryShowCmd   `cmd:"" help:"Show a single entry."`
	} `cmd:"" help:"Manage journal entries."`
	Day       views.DayCmd       `cmd:"" help:"Show entries for a day."`
	Calendar  views.CalendarCmd  `cmd:"" help:"Show a month calendar of entries."`
	Onthisday views.OnThisDayCmd `cmd:"" help:"Show entries from this day across past years."`
	Streak    streaks.StreakCmd  `cmd:"" help:"Show or reset the posting streak."`
	Settings  settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup    struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal journal for daily wins, with streaks and On This Day."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath, err := expandPath(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A .db path selects the SQLite backend; anything else is treated as a
	// directory holding the JSON documents.
	var store storage.Provider
	var configDir string
	if strings.HasSuffix(configPath, constants.BackupFileSuffix) {
		store = storage.NewSQLiteStore(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
		configDir = configPath
	}

	if err := logger.Init(logger.Config{Debug: CLI.Verbose, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Journal: journal.New(store),
		Streaks: streak.New(store),
	}
	appCtx.Journal.Subscribe(func(e journal.Event) {
		logger.Debug("journal event", "op", e.Op, "id", e.Entry.ID)
	})

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
