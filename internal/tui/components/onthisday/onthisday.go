package onthisday

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/proudly-app/proudly/internal/dateutil"
	"github.com/proudly-app/proudly/internal/models"
)

var (
	yearStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model renders entries sharing today's month and day across all years.
type Model struct {
	entries []models.Entry
	now     time.Time
}

func New() Model {
	return Model{now: time.Now()}
}

func (m *Model) SetEntries(entries []models.Entry, now time.Time) {
	m.entries = entries
	m.now = now
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return emptyStyle.Render("No memories for this day yet. Keep posting!")
	}

	var b strings.Builder
	lastYear := -1
	for _, entry := range m.entries {
		year := entry.Date.Local().Year()
		if year != lastYear {
			b.WriteString(yearStyle.Render(yearHeader(m.now.Year() - year)))
			b.WriteString("\n")
			lastYear = year
		}
		marker := ""
		if entry.IsPrivate {
			marker = "🔒 "
		}
		fmt.Fprintf(&b, "  %s%s  %s\n", marker, dateutil.FormatDate(entry.Date), summarize(entry.Text))
	}
	return b.String()
}

func yearHeader(diff int) string {
	switch diff {
	case 0:
		return "Today"
	case 1:
		return "1 year ago"
	default:
		return fmt.Sprintf("%d years ago", diff)
	}
}

func summarize(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + " …"
	}
	if len(text) > 64 {
		text = text[:64] + "…"
	}
	return text
}
