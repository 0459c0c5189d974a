package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/models"
)

// JSONStore persists the two documents as separate JSON files inside a
// config directory. Each mutation rewrites the affected document in full.
type JSONStore struct {
	dir      string
	entries  []models.Entry
	settings *models.Settings
}

func NewJSONStore(configDir string) *JSONStore {
	return &JSONStore{
		dir: configDir,
	}
}

func (s *JSONStore) entriesPath() string {
	return filepath.Join(s.dir, constants.EntriesDocumentName)
}

func (s *JSONStore) settingsPath() string {
	return filepath.Join(s.dir, constants.SettingsDocumentName)
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.entriesPath()); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.dir)
	}

	s.entries = []models.Entry{}
	defaults := models.DefaultSettings()
	s.settings = &defaults

	if err := s.saveEntries(); err != nil {
		return err
	}
	return s.saveSettings()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.entriesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'proudly init' first")
		}
		return fmt.Errorf("failed to read entries document: %w", err)
	}

	s.entries = []models.Entry{}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return fmt.Errorf("failed to parse entries document: %w", err)
	}

	data, err = os.ReadFile(s.settingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			// The documents are independent; a missing settings document
			// falls back to defaults rather than failing the load.
			defaults := models.DefaultSettings()
			s.settings = &defaults
			return nil
		}
		return fmt.Errorf("failed to read settings document: %w", err)
	}

	settings := models.Settings{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse settings document: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	s.settings = &settings

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) saveEntries() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize entries: %w", err)
	}
	if err := os.WriteFile(s.entriesPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write entries document: %w", err)
	}
	return nil
}

func (s *JSONStore) saveSettings() error {
	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(s.settingsPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write settings document: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.settings == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return *s.settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.settings == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.settings = &settings
	return s.saveSettings()
}

func (s *JSONStore) AddEntry(entry models.Entry) error {
	if s.entries == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Newest entries go first; the persisted order is the display order.
	s.entries = append([]models.Entry{entry}, s.entries...)
	return s.saveEntries()
}

func (s *JSONStore) GetEntry(id string) (models.Entry, error) {
	if s.entries == nil {
		return models.Entry{}, fmt.Errorf("storage not loaded")
	}

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return models.Entry{}, fmt.Errorf("entry not found: %s", id)
}

func (s *JSONStore) GetAllEntries() ([]models.Entry, error) {
	if s.entries == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.Entry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

func (s *JSONStore) UpdateEntry(entry models.Entry) error {
	if s.entries == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries[i] = entry
			return s.saveEntries()
		}
	}
	return fmt.Errorf("entry not found: %s", entry.ID)
}

func (s *JSONStore) DeleteEntry(id string) error {
	if s.entries == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.saveEntries()
		}
	}
	return fmt.Errorf("entry not found: %s", id)
}

func (s *JSONStore) GetConfigPath() string {
	return s.dir
}
