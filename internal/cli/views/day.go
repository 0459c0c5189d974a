package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/constants"
	"github.com/proudly-app/proudly/internal/dateutil"
	"github.com/proudly-app/proudly/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	day := time.Now()
	if c.Date != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		day = parsed
	}

	entries, err := ctx.Journal.EntriesByDate(day)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", dateutil.RelativeDay(day))
	if len(entries) == 0 {
		fmt.Println("No entries for this day.")
		return nil
	}

	for _, entry := range entries {
		PrintEntryLine(entry)
	}
	return nil
}

// PrintEntryLine prints an entry as a single summary line shared by the day
// and on-this-day views.
func PrintEntryLine(entry models.Entry) {
	marker := " "
	if entry.IsPrivate {
		marker = "🔒"
	}
	line := fmt.Sprintf("%s %s  %s", marker, dateutil.FormatTime(entry.Date), firstLine(entry.Text))
	if len(entry.Tags) > 0 {
		line += fmt.Sprintf("  [%s]", strings.Join(entry.Tags, ", "))
	}
	fmt.Println(line)
	fmt.Printf("   id: %s\n", entry.ID)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
