package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/proudly-app/proudly/internal/models"
)

// schemaVersion is tracked via PRAGMA user_version. The persisted contract
// has no migration path; the schema is created idempotently on init.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	date TEXT NOT NULL,
	text TEXT NOT NULL,
	media TEXT NOT NULL DEFAULT '[]',
	tags TEXT NOT NULL DEFAULT '[]',
	is_private INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_seq ON entries(seq);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore persists entries as rows and settings as a key/value table.
// The observable contract matches the JSON store: entries come back in
// storage order (most recent first, tracked by seq) and every mutation is
// durable before the call returns.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'proudly init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		db := s.db
		s.db = nil
		return db.Close()
	}
	return nil
}

func (s *SQLiteStore) validateSchemaVersion() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("unsupported schema version %d (expected %d)", version, schemaVersion)
	}
	return nil
}

// SchemaVersion returns the database's recorded schema version.
func (s *SQLiteStore) SchemaVersion() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "theme":
			settings.Theme = models.Theme(value)
		case "streak_current":
			if _, err := fmt.Sscanf(value, "%d", &settings.Streaks.Current); err != nil {
				return models.Settings{}, fmt.Errorf("parsing streak_current: %w", err)
			}
		case "streak_longest":
			if _, err := fmt.Sscanf(value, "%d", &settings.Streaks.Longest); err != nil {
				return models.Settings{}, fmt.Errorf("parsing streak_longest: %w", err)
			}
		case "streak_last_post_date":
			settings.Streaks.LastPostDate = value
		case "is_first_launch":
			settings.IsFirstLaunch = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("theme", string(settings.Theme)); err != nil {
		return err
	}
	if _, err := stmt.Exec("streak_current", fmt.Sprintf("%d", settings.Streaks.Current)); err != nil {
		return err
	}
	if _, err := stmt.Exec("streak_longest", fmt.Sprintf("%d", settings.Streaks.Longest)); err != nil {
		return err
	}
	if _, err := stmt.Exec("streak_last_post_date", settings.Streaks.LastPostDate); err != nil {
		return err
	}
	if _, err := stmt.Exec("is_first_launch", fmt.Sprintf("%v", settings.IsFirstLaunch)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddEntry(entry models.Entry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	media, tags, err := marshalEntryLists(entry)
	if err != nil {
		return err
	}

	// seq preserves storage order across updates: new entries take the next
	// sequence number, updates keep theirs.
	_, err = s.db.Exec(`
		INSERT INTO entries (id, seq, date, text, media, tags, is_private, created_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM entries), ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Date.Format(time.RFC3339Nano),
		entry.Text,
		media,
		tags,
		boolToInt(entry.IsPrivate),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetEntry(id string) (models.Entry, error) {
	if s.db == nil {
		return models.Entry{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT id, date, text, media, tags, is_private, created_at
		FROM entries WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return models.Entry{}, fmt.Errorf("entry not found: %s", id)
	}
	return entry, err
}

func (s *SQLiteStore) GetAllEntries() ([]models.Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, date, text, media, tags, is_private, created_at
		FROM entries ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) UpdateEntry(entry models.Entry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	media, tags, err := marshalEntryLists(entry)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE entries SET date = ?, text = ?, media = ?, tags = ?, is_private = ?, created_at = ?
		WHERE id = ?`,
		entry.Date.Format(time.RFC3339Nano),
		entry.Text,
		media,
		tags,
		boolToInt(entry.IsPrivate),
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", entry.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteEntry(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	var date, createdAt, media, tags string
	var isPrivate int

	if err := row.Scan(&e.ID, &date, &e.Text, &media, &tags, &isPrivate, &createdAt); err != nil {
		return models.Entry{}, err
	}

	var err error
	e.Date, err = time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse date for entry %s: %w", e.ID, err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(media), &e.Media); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse media for entry %s: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse tags for entry %s: %w", e.ID, err)
	}
	e.IsPrivate = isPrivate != 0

	return e, nil
}

func marshalEntryLists(entry models.Entry) (media string, tags string, err error) {
	m, err := json.Marshal(nonNil(entry.Media))
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize media: %w", err)
	}
	t, err := json.Marshal(nonNil(entry.Tags))
	if err != nil {
		return "", "", fmt.Errorf("failed to serialize tags: %w", err)
	}
	return string(m), string(t), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
