package models

import "fmt"

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	}
	return "", fmt.Errorf("invalid theme %q (expected light, dark, or system)", s)
}

// StreakData holds the posting-streak counters. LastPostDate is the calendar
// day (YYYY-MM-DD, local time) of the last counted post, or empty if never
// posted or after a reset.
type StreakData struct {
	Current      int    `json:"current"`
	Longest      int    `json:"longest"`
	LastPostDate string `json:"last_post_date,omitempty"`
}

// Settings represents application-wide settings, persisted as one document.
type Settings struct {
	Theme         Theme      `json:"theme"`
	Streaks       StreakData `json:"streaks"`
	IsFirstLaunch bool       `json:"is_first_launch"`
}

// DefaultSettings returns the settings written on first initialization.
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeSystem,
		IsFirstLaunch: true,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Theme == "" {
		settings.Theme = ThemeSystem
	}
}
