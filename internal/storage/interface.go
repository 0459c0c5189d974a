package storage

import "github.com/proudly-app/proudly/internal/models"

// Provider is the persistence seam. Both backends persist two independent
// documents: the entries collection (most-recent-first) and the settings.
// Writes are whole-document, last-writer-wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	AddEntry(models.Entry) error
	GetEntry(id string) (models.Entry, error)
	// GetAllEntries returns the full collection in storage order,
	// most recent first.
	GetAllEntries() ([]models.Entry, error)
	UpdateEntry(models.Entry) error
	DeleteEntry(id string) error

	// Utils
	GetConfigPath() string
}
