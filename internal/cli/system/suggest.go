package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/validation"
)

type SuggestCmd struct {
	Text []string `arg:"" help:"Suggestion or feedback text."`
}

func (c *SuggestCmd) Validate() error {
	return validation.Title(strings.Join(c.Text, " "))
}

func (c *SuggestCmd) Run(appCtx *cli.Context) error {
	if appCtx.Sync == nil {
		return fmt.Errorf("remote sync is not configured; set %s first", "LIFEBALANCE_SYNC_URL")
	}

	name, identifier := "", ""
	if acct, ok := appCtx.CurrentAccount(); ok {
		name, identifier = acct.Name, acct.Identifier
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := appCtx.Sync.Suggest(ctx, name, identifier, strings.Join(c.Text, " ")); err != nil {
		return fmt.Errorf("failed to submit suggestion: %w", err)
	}
	fmt.Println("Suggestion submitted. Thank you!")
	return nil
}
