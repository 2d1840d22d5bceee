package system

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/scheduler"
)

type WatchCmd struct{}

// Run keeps the reminder scheduler alive until interrupted. Session time is
// tracked across the run.
func (c *WatchCmd) Run(appCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appCtx.BeginSession()
	defer appCtx.EndSession()

	fmt.Println("Watching for reminders. Press Ctrl-C to stop.")

	sched := scheduler.New(appCtx.Engine, appCtx.Notifier)
	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("\nStopped.")
	return nil
}
