package entrylist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/proudly-app/proudly/internal/dateutil"
	"github.com/proudly-app/proudly/internal/models"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model is a cursored list of entries for a single day.
type Model struct {
	entries []models.Entry
	cursor  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetEntries(entries []models.Entry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.entries)-1 {
		m.cursor++
	}
}

// Selected returns the entry under the cursor, if any.
func (m *Model) Selected() (models.Entry, bool) {
	if len(m.entries) == 0 {
		return models.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return emptyStyle.Render("No entries yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := ""
		if entry.IsPrivate {
			marker = "🔒 "
		}

		line := fmt.Sprintf("%s%s%s  %s", cursor, marker, dateutil.FormatTime(entry.Date), summarize(entry.Text))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if len(entry.Tags) > 0 {
			b.WriteString("  " + tagStyle.Render("["+strings.Join(entry.Tags, ", ")+"]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func summarize(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + " …"
	}
	if len(text) > 72 {
		text = text[:72] + "…"
	}
	return text
}
