package tasks

import (
	"fmt"

	"github.com/lifebalance/lifebalance/internal/cli"
)

type TaskDeleteCmd struct {
	ID       string `arg:"" help:"Task ID (a unique prefix is enough)."`
	Archived bool   `short:"a" help:"Delete from the archive instead of the board."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	id, err := ResolveTaskID(ctx, c.ID, c.Archived)
	if err != nil {
		return err
	}

	if err := ctx.Engine.DeleteTask(id, c.Archived); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s\n", id[:8])
	return nil
}
