package entries

import (
	"fmt"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/validation"
)

type EntryEditCmd struct {
	ID         string   `arg:"" help:"Entry id."`
	Text       *string  `help:"Replace the entry text."`
	Tags       []string `short:"t" help:"Replace the tag list (repeatable)."`
	ClearTags  bool     `help:"Remove all tags."`
	Media      []string `short:"m" help:"Replace the media list (repeatable)."`
	ClearMedia bool     `help:"Remove all media references."`
	Private    *bool    `help:"Set or clear the private flag."`
}

func (c *EntryEditCmd) Run(ctx *cli.Context) error {
	// The repository treats unknown ids as silent no-ops; the command looks
	// the entry up first so the user gets told.
	if _, err := ctx.Journal.Entry(c.ID); err != nil {
		return err
	}

	update := models.EntryUpdate{
		Text:      c.Text,
		IsPrivate: c.Private,
	}
	if c.ClearTags {
		empty := []string{}
		update.Tags = &empty
	} else if len(c.Tags) > 0 {
		update.Tags = &c.Tags
	}
	if c.ClearMedia {
		empty := []string{}
		update.Media = &empty
	} else if len(c.Media) > 0 {
		update.Media = &c.Media
	}

	if update.IsZero() {
		fmt.Println("No changes specified. Use flags to update fields.")
		return nil
	}

	if err := validation.ValidateUpdate(update); err != nil {
		return err
	}

	if err := ctx.Journal.UpdateEntry(c.ID, update); err != nil {
		return err
	}

	fmt.Printf("Updated entry %s\n", c.ID)
	return nil
}
