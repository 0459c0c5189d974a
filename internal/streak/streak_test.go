package streak

import (
	"testing"
	"time"

	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return New(store), store
}

func seedStreaks(t *testing.T, store storage.Provider, streaks models.StreakData) {
	t.Helper()
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	settings.Streaks = streaks
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
}

func localDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 14, 0, 0, 0, time.Local)
}

func TestRecordPost_FirstEver(t *testing.T) {
	tracker, _ := newTestTracker(t)
	now := localDay(2024, time.March, 5)

	got, err := tracker.RecordPost(now)
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	want := models.StreakData{Current: 1, Longest: 1, LastPostDate: "2024-03-05"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecordPost_SameDayIsIdempotent(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 3, Longest: 5, LastPostDate: "2024-03-05"})

	got, err := tracker.RecordPost(localDay(2024, time.March, 5))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}
	want := models.StreakData{Current: 3, Longest: 5, LastPostDate: "2024-03-05"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// A later post the same day still changes nothing
	got, err = tracker.RecordPost(localDay(2024, time.March, 5).Add(8 * time.Hour))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}
	if got != want {
		t.Errorf("second same-day post changed the streak: %+v", got)
	}
}

func TestRecordPost_ConsecutiveDayExtends(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 5, Longest: 5, LastPostDate: "2024-01-01"})

	got, err := tracker.RecordPost(localDay(2024, time.January, 2))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	want := models.StreakData{Current: 6, Longest: 6, LastPostDate: "2024-01-02"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecordPost_GapResetsButKeepsLongest(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 3, Longest: 5, LastPostDate: "2024-01-01"})

	got, err := tracker.RecordPost(localDay(2024, time.January, 3))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	want := models.StreakData{Current: 1, Longest: 5, LastPostDate: "2024-01-03"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecordPost_LastPostInFutureRestarts(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 4, Longest: 4, LastPostDate: "2024-06-01"})

	got, err := tracker.RecordPost(localDay(2024, time.March, 5))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	want := models.StreakData{Current: 1, Longest: 4, LastPostDate: "2024-03-05"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecordPost_AcrossMonthBoundary(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 2, Longest: 2, LastPostDate: "2024-02-29"})

	got, err := tracker.RecordPost(localDay(2024, time.March, 1))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	want := models.StreakData{Current: 3, Longest: 3, LastPostDate: "2024-03-01"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRecordPost_Persists(t *testing.T) {
	tracker, store := newTestTracker(t)

	if _, err := tracker.RecordPost(localDay(2024, time.March, 5)); err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Streaks.Current != 1 || settings.Streaks.LastPostDate != "2024-03-05" {
		t.Errorf("streak not persisted to settings: %+v", settings.Streaks)
	}
}

func TestReset_KeepsLongest(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 4, Longest: 7, LastPostDate: "2024-03-05"})

	got, err := tracker.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	want := models.StreakData{Current: 0, Longest: 7, LastPostDate: ""}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReset_ThenPostSameDayStartsFresh(t *testing.T) {
	tracker, store := newTestTracker(t)
	seedStreaks(t, store, models.StreakData{Current: 4, Longest: 7, LastPostDate: "2024-03-05"})

	if _, err := tracker.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	// The day of the last counted post was cleared, so posting again on the
	// same calendar day starts a new streak rather than being absorbed.
	got, err := tracker.RecordPost(localDay(2024, time.March, 5))
	if err != nil {
		t.Fatalf("RecordPost failed: %v", err)
	}

	want := models.StreakData{Current: 1, Longest: 7, LastPostDate: "2024-03-05"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAlive(t *testing.T) {
	now := localDay(2024, time.March, 5)

	tests := []struct {
		name    string
		streaks models.StreakData
		want    bool
	}{
		{"posted today", models.StreakData{Current: 1, LastPostDate: "2024-03-05"}, true},
		{"posted yesterday", models.StreakData{Current: 2, LastPostDate: "2024-03-04"}, true},
		{"two days ago", models.StreakData{Current: 2, LastPostDate: "2024-03-03"}, false},
		{"never posted", models.StreakData{}, false},
		{"garbage date", models.StreakData{LastPostDate: "not-a-date"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Alive(tt.streaks, now); got != tt.want {
				t.Errorf("Alive = %v, want %v", got, tt.want)
			}
		})
	}
}
