package tasks

import (
	"fmt"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/validation"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Priority string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
}

func (c *TaskAddCmd) Validate() error {
	if err := validation.Title(c.Title); err != nil {
		return err
	}
	_, err := validation.Priority(c.Priority)
	return err
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	priority, err := validation.Priority(c.Priority)
	if err != nil {
		return err
	}

	task, err := ctx.Engine.AddTask(c.Title, priority)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
