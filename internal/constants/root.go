package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "proudly"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/proudly/proudly.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayDateFormat is the human-facing date format (e.g. "Jan 2, 2006")
	DisplayDateFormat = "Jan 2, 2006"

	// DisplayTimeFormat is the human-facing 12-hour clock format (e.g. "3:04 PM")
	DisplayTimeFormat = "3:04 PM"

	// JSON document names, one file per persisted document
	EntriesDocumentName  = "proudly-entries.json"
	SettingsDocumentName = "proudly-settings.json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "proudly-"
	BackupFileSuffix = ".db"

	// Session States
	StateToday SessionState = iota
	StateCalendar
	StateOnThisDay
	StateAddEntry
	StateConfirmDelete
)
