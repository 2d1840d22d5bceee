package cli

import (
	"fmt"
	"strings"

	"github.com/lifebalance/lifebalance/internal/validation"
)

type WaterAddCmd struct {
	Amount int `arg:"" help:"Amount in milliliters (negative to correct a mistake)."`
}

func (c *WaterAddCmd) Run(ctx *Context) error {
	effects, err := ctx.Engine.AddWater(c.Amount)
	if err != nil {
		return err
	}

	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	fmt.Printf("Water: %dml / %dml\n", state.WaterIntakeMl, state.WaterGoalMl())
	PrintEffects(effects)
	return nil
}

type WaterGoalCmd struct {
	Liters float64 `arg:"" help:"Daily goal in liters."`
}

func (c *WaterGoalCmd) Validate() error {
	return validation.WaterGoal(c.Liters)
}

func (c *WaterGoalCmd) Run(ctx *Context) error {
	if err := ctx.Engine.SetWaterGoal(c.Liters); err != nil {
		return err
	}
	fmt.Printf("Daily water goal set to %.1f L\n", c.Liters)
	return nil
}

type WaterScheduleCmd struct {
	Times []string `arg:"" optional:"" help:"Reminder times (HH:MM). Omit to show the current schedule."`
}

func (c *WaterScheduleCmd) Validate() error {
	if len(c.Times) == 0 {
		return nil
	}
	return validation.Schedule(c.Times)
}

func (c *WaterScheduleCmd) Run(ctx *Context) error {
	if len(c.Times) == 0 {
		state, err := ctx.Engine.State()
		if err != nil {
			return err
		}
		if len(state.WaterSchedule) == 0 {
			fmt.Println("No water reminders scheduled.")
			return nil
		}
		fmt.Printf("Water reminders: %s\n", strings.Join(state.WaterSchedule, ", "))
		return nil
	}

	if err := ctx.Engine.SetWaterSchedule(c.Times); err != nil {
		return err
	}
	fmt.Printf("Scheduled %d water reminders. Run 'lifebalance watch' to receive them.\n", len(c.Times))
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	goal := state.WaterGoalMl()
	pct := 0.0
	if goal > 0 {
		pct = float64(state.WaterIntakeMl) / float64(goal) * 100
	}

	fmt.Printf("Today: %dml / %dml (%.0f%%)\n", state.WaterIntakeMl, goal, pct)
	fmt.Printf("%s\n", ProgressBar(pct, 30))
	if len(state.WaterSchedule) > 0 {
		fmt.Printf("Reminders: %s\n", strings.Join(state.WaterSchedule, ", "))
	}
	return nil
}
