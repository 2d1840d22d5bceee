package cli

import (
	"fmt"

	"github.com/lifebalance/lifebalance/internal/achievements"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	statuses := achievements.Evaluate(state)

	fmt.Printf("Activity streak:  %d days\n", state.StreakDays)
	fmt.Printf("Reading streak:   %d days\n", state.QuranStreakDays)
	fmt.Printf("Water today:      %dml / %dml\n", state.WaterIntakeMl, state.WaterGoalMl())
	fmt.Printf("Tasks done:       %d (board), %d archived\n", state.DoneTaskCount(), len(state.ArchivedTasks))
	fmt.Printf("Gratitude notes:  %d\n", len(state.GratitudeNotes))
	if avg := achievements.SleepAverage(state); avg > 0 {
		fmt.Printf("Sleep (7 days):   %.1f / 3.0\n", avg)
	}
	fmt.Printf("Achievements:     %d / %d unlocked\n", achievements.Unlocked(statuses), len(statuses))

	if acct, ok := ctx.CurrentAccount(); ok {
		fmt.Printf("\nSigned in as %s (time in app: %s)\n", acct.Name, FormatDuration(acct.TotalTimeSpent))
	}
	return nil
}

type AchievementsCmd struct {
	All bool `short:"a" help:"Show locked achievements too."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	statuses := achievements.Evaluate(state)
	fmt.Printf("Unlocked %d of %d achievements\n\n", achievements.Unlocked(statuses), len(statuses))

	for _, st := range statuses {
		if !st.Unlocked && !c.All {
			continue
		}
		mark := " "
		if st.Unlocked {
			mark = "★"
		}
		fmt.Printf("  %s %-20s %-6s %s %3.0f%%\n",
			mark, st.Rule.Name, st.Rule.Rank, ProgressBar(st.Progress, 20), st.Progress)
	}

	if !c.All {
		locked := len(statuses) - achievements.Unlocked(statuses)
		if locked > 0 {
			fmt.Printf("\n(%d locked; use --all to show them)\n", locked)
		}
	}
	return nil
}
