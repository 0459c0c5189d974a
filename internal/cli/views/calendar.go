package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/proudly-app/proudly/internal/cli"
)

type CalendarCmd struct {
	Year  int `arg:"" optional:"" help:"Year (default: current)."`
	Month int `arg:"" optional:"" help:"Month 1-12 (default: current)."`
}

func (c *CalendarCmd) Validate() error {
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	year := c.Year
	if year == 0 {
		year = now.Year()
	}
	month := time.Month(c.Month)
	if c.Month == 0 {
		month = now.Month()
	}

	byDay, err := ctx.Journal.EntriesForMonth(year, month)
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(byDay))
	total := 0
	for day, entries := range byDay {
		counts[day] = len(entries)
		total += len(entries)
	}

	fmt.Println(RenderMonth(year, month, counts))
	fmt.Printf("%d entries in %s %d. Days with entries are marked with *.\n", total, month, year)
	return nil
}

// RenderMonth renders a month grid. Days with at least one entry are marked
// with an asterisk; counts keys are day-of-month numerals ("1".."31").
func RenderMonth(year int, month time.Month, counts map[string]int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "      %s %d\n", month, year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	// Leading blanks up to the first weekday
	b.WriteString(strings.Repeat("    ", int(first.Weekday())))

	weekday := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		mark := " "
		if counts[fmt.Sprintf("%d", day)] > 0 {
			mark = "*"
		}
		fmt.Fprintf(&b, "%3d%s", day, mark)

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
