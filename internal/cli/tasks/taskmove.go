package tasks

import (
	"fmt"
	"strings"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/validation"
)

type TaskMoveCmd struct {
	ID     string `arg:"" help:"Task ID (a unique prefix is enough)."`
	Status string `arg:"" help:"New status (todo|in_progress|done)."`
}

func (c *TaskMoveCmd) Validate() error {
	_, err := validation.Status(c.Status)
	return err
}

func (c *TaskMoveCmd) Run(ctx *cli.Context) error {
	status, err := validation.Status(c.Status)
	if err != nil {
		return err
	}

	id, err := ResolveTaskID(ctx, c.ID, false)
	if err != nil {
		return err
	}

	if err := ctx.Engine.SetTaskStatus(id, status); err != nil {
		return err
	}
	fmt.Printf("Task %s moved to %s\n", id[:8], status)
	return nil
}

// ResolveTaskID expands a task ID prefix into the full ID, looking at the
// board or the archive.
func ResolveTaskID(ctx *cli.Context, prefix string, archived bool) (string, error) {
	state, err := ctx.Engine.State()
	if err != nil {
		return "", err
	}

	pool := state.Tasks
	if archived {
		pool = state.ArchivedTasks
	}

	var matches []models.Task
	for _, t := range pool {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %s", prefix)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}
