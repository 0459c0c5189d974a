package entries

import (
	"fmt"

	"github.com/proudly-app/proudly/internal/cli"
)

type EntryDeleteCmd struct {
	ID string `arg:"" help:"Entry id."`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Journal.Entry(c.ID); err != nil {
		return err
	}

	if err := ctx.Journal.DeleteEntry(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted entry %s\n", c.ID)
	return nil
}
