// Package streak maintains the daily-posting streak counters persisted in
// the settings document.
package streak

import (
	"fmt"
	"time"

	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/dateutil"
	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/storage"
)

// Tracker decides, once per post, whether the streak extends, restarts, or
// stays put. All comparisons run at calendar-day granularity in local time.
type Tracker struct {
	store storage.Provider
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Current returns the persisted streak counters.
func (t *Tracker) Current() (models.StreakData, error) {
	settings, err := t.store.GetSettings()
	if err != nil {
		return models.StreakData{}, err
	}
	return settings.Streaks, nil
}

// RecordPost advances the streak for a post made at the given time. Call it
// exactly once per successful entry creation.
//
// Same day as the last post: no change, so multiple entries on one day do
// not inflate the streak. Last post yesterday: streak extends. Any other
// gap, a missing last post, or a last post in the future: the streak
// restarts at 1. Longest is a watermark of current and never decreases here.
func (t *Tracker) RecordPost(now time.Time) (models.StreakData, error) {
	settings, err := t.store.GetSettings()
	if err != nil {
		return models.StreakData{}, err
	}

	streaks := advance(settings.Streaks, now)
	if streaks == settings.Streaks {
		return streaks, nil
	}

	settings.Streaks = streaks
	if err := t.store.SaveSettings(settings); err != nil {
		return models.StreakData{}, fmt.Errorf("failed to save streak: %w", err)
	}
	return streaks, nil
}

// Reset clears the current streak and the last-post day while preserving
// the longest streak. This is the explicit user-invoked reset, distinct
// from the natural break detection in RecordPost.
func (t *Tracker) Reset() (models.StreakData, error) {
	settings, err := t.store.GetSettings()
	if err != nil {
		return models.StreakData{}, err
	}

	settings.Streaks = models.StreakData{
		Current:      0,
		Longest:      settings.Streaks.Longest,
		LastPostDate: "",
	}
	if err := t.store.SaveSettings(settings); err != nil {
		return models.StreakData{}, fmt.Errorf("failed to save streak: %w", err)
	}
	return settings.Streaks, nil
}

func advance(streaks models.StreakData, now time.Time) models.StreakData {
	today := dateutil.DayString(now)
	if streaks.LastPostDate == today {
		// Already posted today
		return streaks
	}

	yesterday := dateutil.DayString(now.AddDate(0, 0, -1))

	current := 1
	if streaks.LastPostDate == yesterday {
		current = streaks.Current + 1
	}

	longest := streaks.Longest
	if current > longest {
		longest = current
	}

	return models.StreakData{
		Current:      current,
		Longest:      longest,
		LastPostDate: today,
	}
}

// Alive reports whether the streak would survive a post today: true when
// the last post was today or yesterday relative to now.
func Alive(streaks models.StreakData, now time.Time) bool {
	if streaks.LastPostDate == "" {
		return false
	}
	last, err := time.ParseInLocation(constants.DateFormat, streaks.LastPostDate, now.Location())
	if err != nil {
		return false
	}
	return dateutil.IsTodayAt(last, now) || dateutil.IsYesterdayAt(last, now)
}
