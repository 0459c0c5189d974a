package tui

import (
	"fmt"
	"strings"

	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/dateutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateAddEntry && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Proudly"))
	b.WriteString("  ")
	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d", m.streakData.Current)))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  best %d", m.streakData.Longest)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case constants.StateToday, constants.StateConfirmDelete:
		b.WriteString(headerStyle.Render(dateutil.RelativeDay(m.day)))
		b.WriteString("\n")
		b.WriteString(m.dayList.View())
	case constants.StateCalendar:
		b.WriteString(m.grid.View())
	case constants.StateOnThisDay:
		b.WriteString(m.otd.View())
	}

	if m.state == constants.StateConfirmDelete {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render("Delete selected entry? (y/n)"))
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := []struct {
		state constants.SessionState
		label string
	}{
		{constants.StateToday, "Today"},
		{constants.StateCalendar, "Calendar"},
		{constants.StateOnThisDay, "On This Day"},
	}

	rendered := make([]string, 0, len(tabs))
	active := m.state
	if active == constants.StateConfirmDelete {
		active = m.previousState
	}
	for _, tab := range tabs {
		if tab.state == active {
			rendered = append(rendered, activeTabStyle.Render(tab.label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tab.label))
		}
	}
	return strings.Join(rendered, " ")
}
