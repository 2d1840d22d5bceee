package cli

import (
	"fmt"

	"github.com/lifebalance/lifebalance/internal/models"
)

type TaskListCmd struct {
	Archived bool `short:"a" help:"List archived tasks instead of the board."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	if c.Archived {
		if len(state.ArchivedTasks) == 0 {
			fmt.Println("No archived tasks.")
			return nil
		}
		fmt.Printf("Archived tasks (%d):\n", len(state.ArchivedTasks))
		for _, t := range state.ArchivedTasks {
			printTask(t)
		}
		return nil
	}

	if len(state.Tasks) == 0 {
		fmt.Println("No tasks. Add one with 'lifebalance task add'.")
		return nil
	}

	for _, status := range []models.TaskStatus{models.TaskTodo, models.TaskInProgress, models.TaskDone} {
		header := map[models.TaskStatus]string{
			models.TaskTodo:       "To Do",
			models.TaskInProgress: "In Progress",
			models.TaskDone:       "Done",
		}[status]

		printed := false
		for _, t := range state.Tasks {
			if t.Status != status {
				continue
			}
			if !printed {
				fmt.Printf("\n%s:\n", header)
				printed = true
			}
			printTask(t)
		}
	}
	return nil
}

func printTask(t models.Task) {
	marker := " "
	if t.Status == models.TaskDone {
		marker = "x"
	}
	fmt.Printf("  [%s] %-40s %-6s %s\n", marker, t.Title, t.Priority, t.ID[:8])
}
