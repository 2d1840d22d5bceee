package cli

import (
	"fmt"

	"github.com/lifebalance/lifebalance/internal/validation"
)

type QuranReadCmd struct {
	Pages int `arg:"" help:"Pages read (negative to correct a mistake)."`
}

func (c *QuranReadCmd) Run(ctx *Context) error {
	effects, err := ctx.Engine.AddPages(c.Pages)
	if err != nil {
		return err
	}

	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	fmt.Printf("Pages today: %d / %d (streak: %d days)\n",
		state.QuranPagesReadToday, state.QuranPagesGoal, state.QuranStreakDays)
	PrintEffects(effects)
	return nil
}

type QuranGoalCmd struct {
	Pages int `arg:"" help:"Daily pages goal."`
}

func (c *QuranGoalCmd) Validate() error {
	return validation.PagesGoal(c.Pages)
}

func (c *QuranGoalCmd) Run(ctx *Context) error {
	if err := ctx.Engine.SetPagesGoal(c.Pages); err != nil {
		return err
	}
	fmt.Printf("Daily reading goal set to %d pages\n", c.Pages)
	return nil
}

type QuranResetCmd struct{}

func (c *QuranResetCmd) Run(ctx *Context) error {
	if err := ctx.Engine.ResetPages(); err != nil {
		return err
	}
	fmt.Println("Reading session closed; today's count reset.")
	return nil
}

type QuranEditionCmd struct {
	Edition string `arg:"" help:"Page-count edition (e.g. kingFahd)."`
}

func (c *QuranEditionCmd) Run(ctx *Context) error {
	if err := ctx.Engine.SetQuranEdition(c.Edition); err != nil {
		return err
	}
	fmt.Printf("Edition set to %s\n", c.Edition)
	return nil
}

type QuranStatusCmd struct{}

func (c *QuranStatusCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	pct := 0.0
	if state.QuranPagesGoal > 0 {
		pct = float64(state.QuranPagesReadToday) / float64(state.QuranPagesGoal) * 100
	}

	fmt.Printf("Today: %d / %d pages (%.0f%%)\n", state.QuranPagesReadToday, state.QuranPagesGoal, pct)
	fmt.Printf("%s\n", ProgressBar(pct, 30))
	fmt.Printf("Streak: %d days   Total read: %d pages   Edition: %s\n",
		state.QuranStreakDays, state.QuranTotalPagesEver, state.QuranEdition)
	return nil
}
