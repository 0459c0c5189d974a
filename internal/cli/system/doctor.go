package system

import (
	"fmt"
	"time"

	"github.com/proudly-app/proudly/internal/backup"
	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: settings document readable
	if storeReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings document: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings document: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings document: SKIPPED (storage not reachable)\n")
	}

	// Check 3: entries document readable and ordered
	if storeReachable {
		if err := checkEntries(ctx); err != nil {
			fmt.Printf("❌ Entries document: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Entries document: OK\n")
		}
	} else {
		fmt.Printf("⊘ Entries document: SKIPPED (storage not reachable)\n")
	}

	// Check 4: backups present (warning only, SQLite backend only)
	if ctx.UsingSQLite() {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Backups present: OK\n")
		}
	} else {
		fmt.Printf("⊘ Backups present: SKIPPED (JSON backend)\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if _, err := models.ParseTheme(string(settings.Theme)); err != nil {
		return err
	}
	if settings.Streaks.Current < 0 || settings.Streaks.Longest < settings.Streaks.Current {
		return fmt.Errorf("streak counters are inconsistent: current=%d longest=%d",
			settings.Streaks.Current, settings.Streaks.Longest)
	}
	return nil
}

func checkEntries(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry with empty id found")
		}
		if e.Text == "" {
			return fmt.Errorf("entry %s has empty text", e.ID)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'proudly backup' to create one")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears to be wrong: %s", now)
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset out of range: %d seconds", offset)
	}
	return nil
}
