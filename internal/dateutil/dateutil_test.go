package dateutil

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local)
	if got := FormatDate(ts); got != "Mar 5, 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "Mar 5, 2024")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{0, 5, "12:05 AM"},
		{9, 0, "9:00 AM"},
		{12, 0, "12:00 PM"},
		{15, 4, "3:04 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		ts := time.Date(2024, time.March, 5, tt.hour, tt.min, 0, 0, time.Local)
		if got := FormatTime(ts); got != tt.want {
			t.Errorf("FormatTime(%02d:%02d) = %q, want %q", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestFormatDateAndTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 15, 4, 0, 0, time.Local)
	want := "Mar 5, 2024 at 3:04 PM"
	if got := FormatDateAndTime(ts); got != want {
		t.Errorf("FormatDateAndTime = %q, want %q", got, want)
	}
}

func TestDayString(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := DayString(ts); got != "2024-03-05" {
		t.Errorf("DayString = %q, want %q", got, "2024-03-05")
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			"same day different times",
			time.Date(2024, time.March, 5, 0, 1, 0, 0, time.Local),
			time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local),
			true,
		},
		{
			"across midnight",
			time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local),
			time.Date(2024, time.March, 6, 0, 1, 0, 0, time.Local),
			false,
		},
		{
			"same day different year",
			time.Date(2023, time.March, 5, 12, 0, 0, 0, time.Local),
			time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local),
			false,
		},
		{
			"same day different month",
			time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local),
			time.Date(2024, time.April, 5, 12, 0, 0, 0, time.Local),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelativeDayAt(t *testing.T) {
	now := time.Date(2024, time.March, 5, 18, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"today", time.Date(2024, time.March, 5, 8, 0, 0, 0, time.Local), "Today"},
		{"yesterday", time.Date(2024, time.March, 4, 23, 0, 0, 0, time.Local), "Yesterday"},
		{"older", time.Date(2024, time.February, 29, 12, 0, 0, 0, time.Local), "Feb 29, 2024"},
		{"tomorrow is not today", time.Date(2024, time.March, 6, 8, 0, 0, 0, time.Local), "Mar 6, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDayAt(tt.ts, now); got != tt.want {
				t.Errorf("RelativeDayAt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsYesterdayAt_MonthBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	lastDayOfFeb := time.Date(2024, time.February, 29, 22, 0, 0, 0, time.Local)

	if !IsYesterdayAt(lastDayOfFeb, now) {
		t.Error("expected Feb 29 to be yesterday relative to Mar 1 in a leap year")
	}
}
