package system

import (
	"context"
	"fmt"
	"time"

	"github.com/lifebalance/lifebalance/internal/cli"
)

type SyncCmd struct{}

// Run pushes the signed-in account's summary to the host dashboard right now
// instead of waiting for the next mutation.
func (c *SyncCmd) Run(appCtx *cli.Context) error {
	if appCtx.Sync == nil {
		return fmt.Errorf("remote sync is not configured; set %s first", "LIFEBALANCE_SYNC_URL")
	}

	acct, ok := appCtx.CurrentAccount()
	if !ok {
		return fmt.Errorf("sign in first; guest data is not synced")
	}

	state, err := appCtx.Engine.State()
	if err != nil {
		return err
	}
	acct.State = state

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := appCtx.Sync.Upsert(ctx, acct); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	fmt.Printf("Synced account %s\n", acct.Name)
	return nil
}
