package views

import (
	"fmt"
	"time"

	"github.com/proudly-app/proudly/internal/cli"
)

type OnThisDayCmd struct{}

func (c *OnThisDayCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	entries, err := ctx.Journal.OnThisDayEntries(now.Month(), now.Day())
	if err != nil {
		return err
	}

	fmt.Printf("On this day (%s %d)\n\n", now.Month(), now.Day())
	if len(entries) == 0 {
		fmt.Println("No memories for this day yet.")
		return nil
	}

	// Entries arrive most-recent-first, so year headers come out descending.
	lastYear := -1
	for _, entry := range entries {
		year := entry.Date.Local().Year()
		if year != lastYear {
			switch diff := now.Year() - year; {
			case diff == 0:
				fmt.Println("Today:")
			case diff == 1:
				fmt.Println("1 year ago:")
			default:
				fmt.Printf("%d years ago:\n", diff)
			}
			lastYear = year
		}
		PrintEntryLine(entry)
	}
	return nil
}
