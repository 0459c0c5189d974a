package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/journal"
	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/streak"
	"github.com/proudly-app/proudly/internal/tui/components/entrylist"
	"github.com/proudly-app/proudly/internal/tui/components/monthgrid"
	"github.com/proudly-app/proudly/internal/tui/components/onthisday"
)

type EntryFormModel struct {
	Text    string
	Tags    string
	Private bool
}

type Model struct {
	journal *journal.Journal
	streaks *streak.Tracker

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	day        time.Time
	dayList    entrylist.Model
	grid       monthgrid.Model
	otd        onthisday.Model
	streakData models.StreakData

	form      *huh.Form
	entryForm *EntryFormModel

	entryToDeleteID string
	statusMsg       string
	quitting        bool
	width           int
	height          int
}

func NewModel(j *journal.Journal, t *streak.Tracker) Model {
	now := time.Now()
	m := Model{
		journal: j,
		streaks: t,
		state:   constants.StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		day:     now,
		dayList: entrylist.New(),
		grid:    monthgrid.New(now.Year(), now.Month()),
		otd:     onthisday.New(),
	}
	m.refresh()
	return m
}

// refresh re-reads every pane's data from the journal. Views pull on demand
// rather than holding live references into the store.
func (m *Model) refresh() {
	if entries, err := m.journal.EntriesByDate(m.day); err == nil {
		m.dayList.SetEntries(entries)
	}

	if byDay, err := m.journal.EntriesForMonth(m.grid.Year(), m.grid.Month()); err == nil {
		counts := make(map[string]int, len(byDay))
		for day, entries := range byDay {
			counts[day] = len(entries)
		}
		m.grid.SetCounts(counts)
	}

	now := time.Now()
	if entries, err := m.journal.OnThisDayEntries(now.Month(), now.Day()); err == nil {
		m.otd.SetEntries(entries, now)
	}

	if data, err := m.streaks.Current(); err == nil {
		m.streakData = data
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
