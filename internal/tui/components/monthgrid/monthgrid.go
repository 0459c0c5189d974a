package monthgrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	markedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			Underline(true)
)

// Model renders one month with entry-count badges.
type Model struct {
	year   int
	month  time.Month
	counts map[string]int
}

func New(year int, month time.Month) Model {
	return Model{
		year:   year,
		month:  month,
		counts: map[string]int{},
	}
}

func (m *Model) Year() int         { return m.year }
func (m *Model) Month() time.Month { return m.month }

// SetCounts installs the day-of-month → entry-count mapping for the
// currently displayed month.
func (m *Model) SetCounts(counts map[string]int) {
	m.counts = counts
}

// MoveMonth shifts the displayed month by delta months.
func (m *Model) MoveMonth(delta int) {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	m.year, m.month = t.Year(), t.Month()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m.month, m.year)))
	b.WriteString("\n")
	b.WriteString(weekdayStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, time.Local).Day()
	now := time.Now()

	b.WriteString(strings.Repeat("    ", int(first.Weekday())))

	weekday := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%3d", day)
		hasEntries := m.counts[fmt.Sprintf("%d", day)] > 0

		isToday := now.Year() == m.year && now.Month() == m.month && now.Day() == day
		switch {
		case isToday:
			cell = todayStyle.Render(cell)
		case hasEntries:
			cell = markedStyle.Render(cell)
		}
		b.WriteString(cell)
		if hasEntries {
			b.WriteString("•")
		} else {
			b.WriteString(" ")
		}

		weekday++
		if weekday == 7 {
			weekday = 0
			b.WriteString("\n")
		}
	}
	if weekday != 0 {
		b.WriteString("\n")
	}

	return b.String()
}
