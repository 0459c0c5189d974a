package entries

import (
	"fmt"
	"strings"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/dateutil"
)

type EntryShowCmd struct {
	ID string `arg:"" help:"Entry id."`
}

func (c *EntryShowCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Journal.Entry(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:      %s\n", entry.ID)
	fmt.Printf("Date:    %s\n", dateutil.FormatDateAndTime(entry.Date))
	if entry.IsPrivate {
		fmt.Println("Private: yes")
	}
	if len(entry.Tags) > 0 {
		fmt.Printf("Tags:    %s\n", strings.Join(entry.Tags, ", "))
	}
	if len(entry.Media) > 0 {
		fmt.Printf("Media:   %s\n", strings.Join(entry.Media, ", "))
	}
	fmt.Println()
	fmt.Println(entry.Text)
	return nil
}
