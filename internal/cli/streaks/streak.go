package streaks

import (
	"fmt"
	"time"

	"github.com/proudly-app/proudly/internal/cli"
	"github.com/proudly-app/proudly/internal/streak"
)

type StreakCmd struct {
	Show  StreakShowCmd  `cmd:"" default:"1" help:"Show streak counters."`
	Reset StreakResetCmd `cmd:"" help:"Reset the current streak (longest is kept)."`
}

type StreakShowCmd struct{}

func (c *StreakShowCmd) Run(ctx *cli.Context) error {
	streaks, err := ctx.Streaks.Current()
	if err != nil {
		return err
	}

	fmt.Printf("Current streak: %d\n", streaks.Current)
	fmt.Printf("Longest streak: %d\n", streaks.Longest)
	if streaks.LastPostDate == "" {
		fmt.Println("Last post:      never")
		return nil
	}
	fmt.Printf("Last post:      %s\n", streaks.LastPostDate)

	if streak.Alive(streaks, time.Now()) {
		fmt.Println("Status:         alive — post today to keep it going")
	} else {
		fmt.Println("Status:         broken — your next entry starts a new streak")
	}
	return nil
}

type StreakResetCmd struct{}

func (c *StreakResetCmd) Run(ctx *cli.Context) error {
	streaks, err := ctx.Streaks.Reset()
	if err != nil {
		return err
	}
	fmt.Printf("Streak reset. Longest streak of %d is kept.\n", streaks.Longest)
	return nil
}
