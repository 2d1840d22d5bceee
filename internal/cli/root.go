package cli

import (
	"fmt"
	"time"

	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/logger"
	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/notifier"
	"github.com/lifebalance/lifebalance/internal/storage"
	syncc "github.com/lifebalance/lifebalance/internal/sync"
)

type Context struct {
	Store    storage.Provider
	Engine   *engine.Engine
	Sync     *syncc.Client
	Notifier *notifier.Notifier
}

// BeginSession stamps the session start for usage tracking. Silently handles
// errors; telemetry must never interrupt the user.
func (c *Context) BeginSession() {
	sess, err := c.Store.GetSession()
	if err != nil {
		logger.Warn("Failed to load session", "error", err)
		return
	}
	now := time.Now()
	sess.StartedAt = &now
	if err := c.Store.SaveSession(sess); err != nil {
		logger.Warn("Failed to record session start", "error", err)
	}
}

// EndSession folds the elapsed session time into the signed-in account's
// usage total and clears the start stamp.
func (c *Context) EndSession() {
	sess, err := c.Store.GetSession()
	if err != nil || sess.StartedAt == nil {
		return
	}

	elapsed := time.Since(*sess.StartedAt)
	sess.StartedAt = nil
	if err := c.Store.SaveSession(sess); err != nil {
		logger.Warn("Failed to clear session start", "error", err)
	}

	if !sess.SignedIn() || elapsed <= 0 {
		return
	}
	acct, err := c.Store.GetAccount(sess.AccountID)
	if err != nil {
		return
	}
	acct.TotalTimeSpent += elapsed
	if err := c.Store.SaveAccount(acct); err != nil {
		logger.Warn("Failed to record usage time", "account", acct.ID, "error", err)
	}
}

// CurrentAccount returns the signed-in account, or ok=false for guest usage.
func (c *Context) CurrentAccount() (models.Account, bool) {
	sess, err := c.Store.GetSession()
	if err != nil || !sess.SignedIn() {
		return models.Account{}, false
	}
	acct, err := c.Store.GetAccount(sess.AccountID)
	if err != nil {
		return models.Account{}, false
	}
	return acct, true
}

// PrintEffects surfaces celebration effects returned by a mutator.
func PrintEffects(effects []engine.Effect) {
	for _, e := range effects {
		fmt.Printf("🎉 %s\n", e.Message)
	}
}

// ProgressBar renders a fixed-width textual progress bar for a 0-100 value.
func ProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// FormatDuration renders a usage total as whole hours and minutes.
func FormatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
