package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsz.Width, wsz.Height
		m.help.Width = wsz.Width
	}

	// The form owns all input while it is open
	if m.state == constants.StateAddEntry && m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == constants.StateConfirmDelete {
		return m.updateConfirmDelete(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Today):
		m.state = constants.StateToday

	case key.Matches(keyMsg, m.keys.Calendar):
		m.state = constants.StateCalendar

	case key.Matches(keyMsg, m.keys.OnThisDay):
		m.state = constants.StateOnThisDay

	case key.Matches(keyMsg, m.keys.Add):
		return m.openEntryForm()

	case key.Matches(keyMsg, m.keys.Delete):
		if m.state == constants.StateToday {
			if entry, ok := m.dayList.Selected(); ok {
				m.entryToDeleteID = entry.ID
				m.previousState = m.state
				m.state = constants.StateConfirmDelete
			}
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.state == constants.StateToday {
			m.dayList.CursorUp()
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.state == constants.StateToday {
			m.dayList.CursorDown()
		}

	case key.Matches(keyMsg, m.keys.PrevDay):
		switch m.state {
		case constants.StateToday:
			m.day = m.day.AddDate(0, 0, -1)
			m.refresh()
		case constants.StateCalendar:
			m.grid.MoveMonth(-1)
			m.refresh()
		}

	case key.Matches(keyMsg, m.keys.NextDay):
		switch m.state {
		case constants.StateToday:
			m.day = m.day.AddDate(0, 0, 1)
			m.refresh()
		case constants.StateCalendar:
			m.grid.MoveMonth(1)
			m.refresh()
		}
	}

	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := m.journal.DeleteEntry(m.entryToDeleteID); err != nil {
			m.statusMsg = err.Error()
		} else {
			m.statusMsg = "Entry deleted."
		}
		m.entryToDeleteID = ""
		m.state = m.previousState
		m.refresh()
	case "n", "N", "esc", "q":
		m.entryToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

func (m Model) openEntryForm() (tea.Model, tea.Cmd) {
	m.entryForm = &EntryFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you proud of today?").
				Value(&m.entryForm.Text),
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated, optional.").
				Value(&m.entryForm.Tags),
			huh.NewConfirm().
				Title("Private entry?").
				Value(&m.entryForm.Private),
		),
	)
	m.previousState = m.state
	m.state = constants.StateAddEntry
	m.statusMsg = ""
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitEntryForm()
		m.form = nil
		m.state = m.previousState
	case huh.StateAborted:
		m.form = nil
		m.state = m.previousState
	}

	return m, cmd
}

func (m *Model) submitEntryForm() {
	draft := models.EntryDraft{
		Text:      m.entryForm.Text,
		IsPrivate: m.entryForm.Private,
	}
	for _, t := range strings.Split(m.entryForm.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			draft.Tags = append(draft.Tags, t)
		}
	}

	if err := validation.ValidateDraft(draft); err != nil {
		m.statusMsg = err.Error()
		return
	}

	if _, err := m.journal.AddEntry(draft); err != nil {
		m.statusMsg = err.Error()
		return
	}

	streaks, err := m.streaks.RecordPost(time.Now())
	if err != nil {
		m.statusMsg = fmt.Sprintf("Entry saved, but recording the streak failed: %v", err)
	} else {
		m.statusMsg = fmt.Sprintf("Entry added — 🔥 %d-day streak!", streaks.Current)
	}

	m.refresh()
}
