package system

import (
	"fmt"

	"github.com/lifebalance/lifebalance/internal/cli"
)

type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Notification text." default:"Test notification from lifebalance"`
	DryRun  bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		fmt.Println("[DryRun] " + c.Message)
		return nil
	}
	if err := ctx.Notifier.Notify(c.Message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Println("Notification sent.")
	return nil
}
