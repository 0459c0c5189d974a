package cli

import (
	"strings"

	"github.com/proudly-app/proudly/internal/backup"
	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/journal"
	"github.com/proudly-app/proudly/internal/logger"
	"github.com/proudly-app/proudly/internal/storage"
	"github.com/proudly-app/proudly/internal/streak"
)

// Context carries the composition root's objects to every command.
type Context struct {
	Store   storage.Provider
	Journal *journal.Journal
	Streaks *streak.Tracker
}

// UsingSQLite reports whether the active backend is the SQLite store.
// Backups only apply there; the JSON documents are plain files.
func (c *Context) UsingSQLite() bool {
	return strings.HasSuffix(c.Store.GetConfigPath(), constants.BackupFileSuffix)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.UsingSQLite() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
