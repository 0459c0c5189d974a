package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func testEntry(id, text string, date time.Time) models.Entry {
	return models.Entry{
		ID:        id,
		Date:      date,
		Text:      text,
		CreatedAt: date,
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	store := NewJSONStore(t.TempDir())
	err := store.Load()
	if err == nil {
		t.Fatal("expected Load to fail on an uninitialized directory")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJSONStore_InitWritesBothDocuments(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, name := range []string{constants.EntriesDocumentName, constants.SettingsDocumentName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist after init: %v", name, err)
		}
	}
}

func TestJSONStore_AddEntryPrepends(t *testing.T) {
	store := newTestJSONStore(t)
	now := time.Now()

	for _, id := range []string{"first", "second", "third"} {
		if err := store.AddEntry(testEntry(id, "text "+id, now)); err != nil {
			t.Fatalf("AddEntry(%s) failed: %v", id, err)
		}
	}

	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, want := range []string{"third", "second", "first"} {
		if entries[i].ID != want {
			t.Errorf("entries[%d].ID = %s, want %s", i, entries[i].ID, want)
		}
	}
}

func TestJSONStore_PersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	date := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.Local)
	entry := models.Entry{
		ID:        "e1",
		Date:      date,
		Text:      "hit a PR at the gym",
		Tags:      []string{"health"},
		Media:     []string{"photo.jpg"},
		IsPrivate: true,
		CreatedAt: date,
	}
	if err := store.AddEntry(entry); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	settings := models.Settings{
		Theme:         models.ThemeDark,
		Streaks:       models.StreakData{Current: 3, Longest: 7, LastPostDate: "2024-03-05"},
		IsFirstLaunch: false,
	}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	reloaded := NewJSONStore(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reloaded.GetEntry("e1")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Text != entry.Text || !got.IsPrivate {
		t.Errorf("entry did not round-trip: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "health" {
		t.Errorf("tags did not round-trip: %v", got.Tags)
	}
	if !got.Date.Equal(entry.Date) {
		t.Errorf("date did not round-trip: got %v, want %v", got.Date, entry.Date)
	}

	gotSettings, err := reloaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if gotSettings != settings {
		t.Errorf("settings did not round-trip: got %+v, want %+v", gotSettings, settings)
	}
}

func TestJSONStore_LoadWithMissingSettingsDocument(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, constants.SettingsDocumentName)); err != nil {
		t.Fatalf("failed to remove settings document: %v", err)
	}

	reloaded := NewJSONStore(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	settings, err := reloaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Theme != models.ThemeSystem {
		t.Errorf("expected default settings, got %+v", settings)
	}
}

func TestJSONStore_UpdateEntryKeepsPosition(t *testing.T) {
	store := newTestJSONStore(t)
	now := time.Now()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.AddEntry(testEntry(id, id, now)); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
	}

	updated := testEntry("b", "edited", now)
	if err := store.UpdateEntry(updated); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	entries, _ := store.GetAllEntries()
	if entries[1].ID != "b" || entries[1].Text != "edited" {
		t.Errorf("entry b should stay in place with new text, got %+v", entries[1])
	}
}

func TestJSONStore_UpdateUnknownEntry(t *testing.T) {
	store := newTestJSONStore(t)
	err := store.UpdateEntry(testEntry("ghost", "x", time.Now()))
	if err == nil || !strings.Contains(err.Error(), "entry not found") {
		t.Errorf("expected entry-not-found error, got %v", err)
	}
}

func TestJSONStore_DeleteEntry(t *testing.T) {
	store := newTestJSONStore(t)
	now := time.Now()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.AddEntry(testEntry(id, id, now)); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
	}

	if err := store.DeleteEntry("b"); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if _, err := store.GetEntry("b"); err == nil {
		t.Error("expected GetEntry to fail after delete")
	}
	entries, _ := store.GetAllEntries()
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}

	if err := store.DeleteEntry("b"); err == nil {
		t.Error("expected second delete to fail")
	}
}

func TestJSONStore_GetAllEntriesReturnsCopy(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.AddEntry(testEntry("a", "original", time.Now())); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	entries, _ := store.GetAllEntries()
	entries[0].Text = "mutated"

	got, _ := store.GetEntry("a")
	if got.Text != "original" {
		t.Error("mutating the returned slice should not affect the store")
	}
}
