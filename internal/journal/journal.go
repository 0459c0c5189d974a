// Package journal owns the entry collection and its calendar-shaped read
// queries. Mutations go through the store (whole-document persist) and are
// announced to subscribers, so views refresh off an explicit event stream
// rather than ambient shared state.
package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/proudly-app/proudly/internal/dateutil"
	"github.com/proudly-app/proudly/internal/logger"
	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/storage"
)

// Op identifies the kind of mutation an Event describes.
type Op string

const (
	OpAdded   Op = "added"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event is emitted to subscribers after every successful mutation.
type Event struct {
	Op    Op
	Entry models.Entry
}

// Journal is the entry repository. It is owned by the composition root and
// handed to the presentation layer explicitly.
type Journal struct {
	store storage.Provider
	subs  []func(Event)
}

func New(store storage.Provider) *Journal {
	return &Journal{store: store}
}

// Subscribe registers an observer for mutation events. Subscribers are
// invoked synchronously, in registration order, after the store write.
func (j *Journal) Subscribe(fn func(Event)) {
	j.subs = append(j.subs, fn)
}

func (j *Journal) emit(op Op, entry models.Entry) {
	for _, fn := range j.subs {
		fn(Event{Op: op, Entry: entry})
	}
}

// AddEntry creates an entry from the draft and prepends it to the
// collection. Date and CreatedAt are both set to the same instant; there is
// no backdating path. The journal performs no validation; callers are
// expected to reject empty text before calling.
func (j *Journal) AddEntry(draft models.EntryDraft) (models.Entry, error) {
	now := time.Now()
	entry := models.Entry{
		ID:        uuid.New().String(),
		Date:      now,
		Text:      draft.Text,
		Media:     draft.Media,
		Tags:      models.DedupeTags(draft.Tags),
		IsPrivate: draft.IsPrivate,
		CreatedAt: now,
	}

	if err := j.store.AddEntry(entry); err != nil {
		return models.Entry{}, fmt.Errorf("failed to add entry: %w", err)
	}

	j.emit(OpAdded, entry)
	return entry, nil
}

// Entry returns a single entry by id.
func (j *Journal) Entry(id string) (models.Entry, error) {
	return j.store.GetEntry(id)
}

// Entries returns the full collection in storage order, most recent first.
func (j *Journal) Entries() ([]models.Entry, error) {
	return j.store.GetAllEntries()
}

// UpdateEntry applies a partial-field update to the matching entry. An
// unknown id is a silent no-op, per the repository contract.
func (j *Journal) UpdateEntry(id string, update models.EntryUpdate) error {
	entry, err := j.store.GetEntry(id)
	if err != nil {
		logger.Debug("update skipped, entry not found", "id", id)
		return nil
	}

	entry.Apply(update)
	if err := j.store.UpdateEntry(entry); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	j.emit(OpUpdated, entry)
	return nil
}

// DeleteEntry removes the matching entry. An unknown id is a silent no-op.
func (j *Journal) DeleteEntry(id string) error {
	entry, err := j.store.GetEntry(id)
	if err != nil {
		logger.Debug("delete skipped, entry not found", "id", id)
		return nil
	}

	if err := j.store.DeleteEntry(id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	j.emit(OpDeleted, entry)
	return nil
}

// EntriesByDate returns all entries whose date falls on the same local
// calendar day as t, in storage order.
func (j *Journal) EntriesByDate(t time.Time) ([]models.Entry, error) {
	all, err := j.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	matches := []models.Entry{}
	for _, entry := range all {
		if dateutil.SameDay(entry.Date, t) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// EntriesForMonth buckets the given month's entries by day of month. Keys
// are the day numerals as strings ("1".."31"); days without entries have no
// key. Bucket order follows storage order.
func (j *Journal) EntriesForMonth(year int, month time.Month) (map[string][]models.Entry, error) {
	all, err := j.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	byDay := map[string][]models.Entry{}
	for _, entry := range all {
		d := entry.Date.Local()
		if d.Year() == year && d.Month() == month {
			key := fmt.Sprintf("%d", d.Day())
			byDay[key] = append(byDay[key], entry)
		}
	}
	return byDay, nil
}

// OnThisDayEntries returns every entry sharing the given month and day of
// month, across all years, in storage order (most recent first).
func (j *Journal) OnThisDayEntries(month time.Month, day int) ([]models.Entry, error) {
	all, err := j.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	matches := []models.Entry{}
	for _, entry := range all {
		d := entry.Date.Local()
		if d.Month() == month && d.Day() == day {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}
