package cli

import (
	"fmt"
	"time"

	"github.com/lifebalance/lifebalance/internal/constants"
	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/validation"
)

type SleepLogCmd struct {
	Quality string `arg:"" help:"How you slept (good|average|poor)."`
}

func (c *SleepLogCmd) Validate() error {
	_, err := validation.Quality(c.Quality)
	return err
}

func (c *SleepLogCmd) Run(ctx *Context) error {
	quality, err := validation.Quality(c.Quality)
	if err != nil {
		return err
	}
	if err := ctx.Engine.RecordSleep(quality); err != nil {
		return err
	}
	fmt.Printf("Sleep recorded: %s\n", quality)
	return nil
}

type SleepWakeupCmd struct {
	Time    string `arg:"" help:"Wakeup time (HH:MM)."`
	Weekend bool   `short:"w" help:"Set the weekend wakeup time instead."`
}

func (c *SleepWakeupCmd) Validate() error {
	return validation.TimeOfDay(c.Time)
}

func (c *SleepWakeupCmd) Run(ctx *Context) error {
	if err := ctx.Engine.SetWakeup(c.Time, c.Weekend); err != nil {
		return err
	}
	which := "weekday"
	if c.Weekend {
		which = "weekend"
	}
	fmt.Printf("Wakeup time (%s) set to %s\n", which, c.Time)
	return nil
}

type SleepBedtimeCmd struct {
	Cycles int `short:"c" help:"Schedule a reminder for the option with this many sleep cycles (4-6)."`
}

func (c *SleepBedtimeCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	now := time.Now()
	wakeup := state.WakeupTime
	next := now.AddDate(0, 0, 1)
	if next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		wakeup = state.WeekendWakeupTime
	}

	options, err := engine.SuggestBedtimes(wakeup, now)
	if err != nil {
		return err
	}

	fmt.Printf("To wake up at %s:\n", wakeup)
	for _, opt := range options {
		fmt.Printf("  %s  (%d cycles, %.1fh of sleep)\n", opt.Clock, opt.Cycles, opt.SleepHours)
	}

	if c.Cycles == 0 {
		return nil
	}

	for _, opt := range options {
		if opt.Cycles != c.Cycles {
			continue
		}
		reminderAt := opt.At
		if err := ctx.Engine.ScheduleBedtime(reminderAt); err != nil {
			return err
		}
		fmt.Printf("\nBedtime reminder scheduled for %s. Run 'lifebalance watch' to receive it.\n",
			reminderAt.Format(constants.TimeFormat))
		return nil
	}
	return fmt.Errorf("no bedtime option with %d cycles (choose 4, 5, or 6)", c.Cycles)
}

type SleepHistoryCmd struct {
	Days int `short:"n" help:"Number of recent check-ins to show." default:"7"`
}

func (c *SleepHistoryCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	if len(state.SleepHistory) == 0 {
		fmt.Println("No sleep check-ins yet. Record one with 'lifebalance sleep log'.")
		return nil
	}

	entries := state.SleepHistory
	if len(entries) > c.Days {
		entries = entries[len(entries)-c.Days:]
	}
	for _, e := range entries {
		fmt.Printf("  %s  %s\n", e.Date, e.Quality)
	}
	return nil
}
