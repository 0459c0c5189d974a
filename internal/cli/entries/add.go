package entries

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/models"
	"github.com/proudly-app/proudly/internal/validation"
)

type EntryAddCmd struct {
	Text    string   `arg:"" optional:"" help:"Entry text. Omit to open the interactive form."`
	Tags    []string `short:"t" help:"Tags to attach (repeatable)."`
	Media   []string `short:"m" help:"Local media paths or URIs to attach (repeatable)."`
	Private bool     `short:"p" help:"Mark the entry as private."`
}

func (c *EntryAddCmd) Run(ctx *cli.Context) error {
	draft := models.EntryDraft{
		Text:      c.Text,
		Media:     c.Media,
		Tags:      c.Tags,
		IsPrivate: c.Private,
	}

	if strings.TrimSpace(draft.Text) == "" {
		if err := promptDraft(&draft); err != nil {
			return err
		}
	}

	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}

	entry, err := ctx.Journal.AddEntry(draft)
	if err != nil {
		return err
	}

	streaks, err := ctx.Streaks.RecordPost(time.Now())
	if err != nil {
		return fmt.Errorf("entry saved, but recording the streak failed: %w", err)
	}

	fmt.Printf("Added entry %s\n", entry.ID)
	if streaks.Current == 1 {
		fmt.Println("Streak started! Post again tomorrow to keep it going.")
	} else {
		fmt.Printf("🔥 %d-day streak!\n", streaks.Current)
	}
	return nil
}

func promptDraft(draft *models.EntryDraft) error {
	var tags string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you proud of today?").
				Value(&draft.Text),
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated, optional.").
				Value(&tags),
			huh.NewConfirm().
				Title("Private entry?").
				Value(&draft.IsPrivate),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			draft.Tags = append(draft.Tags, t)
		}
	}
	return nil
}
