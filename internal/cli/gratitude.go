package cli

import (
	"fmt"
	"strings"

	"github.com/lifebalance/lifebalance/internal/validation"
)

type GratitudeAddCmd struct {
	Text []string `arg:"" help:"What you're grateful for."`
}

func (c *GratitudeAddCmd) Validate() error {
	return validation.Title(strings.Join(c.Text, " "))
}

func (c *GratitudeAddCmd) Run(ctx *Context) error {
	note, err := ctx.Engine.AddGratitude(strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Noted (ID: %s)\n", note.ID[:8])
	return nil
}

type GratitudeListCmd struct {
	Limit int `short:"n" help:"Number of recent notes to show." default:"10"`
}

func (c *GratitudeListCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	if len(state.GratitudeNotes) == 0 {
		fmt.Println("No gratitude notes yet.")
		return nil
	}

	notes := state.GratitudeNotes
	if len(notes) > c.Limit {
		notes = notes[:c.Limit]
	}
	for _, n := range notes {
		fmt.Printf("  %s  %s  (%s)\n", n.Date, n.Text, n.ID[:8])
	}
	return nil
}

type GratitudeDeleteCmd struct {
	ID string `arg:"" help:"Note ID (a unique prefix is enough)."`
}

func (c *GratitudeDeleteCmd) Run(ctx *Context) error {
	state, err := ctx.Engine.State()
	if err != nil {
		return err
	}

	var matches []string
	for _, n := range state.GratitudeNotes {
		if strings.HasPrefix(n.ID, c.ID) {
			matches = append(matches, n.ID)
		}
	}
	switch len(matches) {
	case 0:
		return fmt.Errorf("note not found: %s", c.ID)
	case 1:
	default:
		return fmt.Errorf("note ID prefix %q is ambiguous (%d matches)", c.ID, len(matches))
	}

	if err := ctx.Engine.DeleteGratitude(matches[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted note %s\n", matches[0][:8])
	return nil
}
