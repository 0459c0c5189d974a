package dateutil

import (
	"fmt"
	"time"

	"github.com/proudly-app/proudly/internal/constants"
)

// FormatDate formats a timestamp for display, e.g. "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Local().Format(constants.DisplayDateFormat)
}

// FormatTime formats a timestamp's time of day on a 12-hour clock, e.g. "3:04 PM".
func FormatTime(t time.Time) string {
	return t.Local().Format(constants.DisplayTimeFormat)
}

// FormatDateAndTime combines FormatDate and FormatTime, e.g. "Jan 2, 2006 at 3:04 PM".
func FormatDateAndTime(t time.Time) string {
	return fmt.Sprintf("%s at %s", FormatDate(t), FormatTime(t))
}

// DayString returns the calendar day of a timestamp as YYYY-MM-DD in local time.
func DayString(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// SameDay reports whether two timestamps fall on the same calendar day
// (year, month, day) in local time. Time of day is ignored.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsTodayAt reports whether t falls on the same calendar day as now.
func IsTodayAt(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsToday reports whether t falls on today's calendar day.
func IsToday(t time.Time) bool {
	return IsTodayAt(t, time.Now())
}

// IsYesterdayAt reports whether t falls on the calendar day before now.
func IsYesterdayAt(t, now time.Time) bool {
	return SameDay(t, now.AddDate(0, 0, -1))
}

// IsYesterday reports whether t falls on yesterday's calendar day.
func IsYesterday(t time.Time) bool {
	return IsYesterdayAt(t, time.Now())
}

// RelativeDayAt classifies a timestamp relative to now: "Today", "Yesterday",
// or the formatted date for anything else.
func RelativeDayAt(t, now time.Time) string {
	if IsTodayAt(t, now) {
		return "Today"
	}
	if IsYesterdayAt(t, now) {
		return "Yesterday"
	}
	return FormatDate(t)
}

// RelativeDay classifies a timestamp relative to the current wall clock.
func RelativeDay(t time.Time) string {
	return RelativeDayAt(t, time.Now())
}
