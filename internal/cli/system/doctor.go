package system

import (
	"fmt"
	"time"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/sync"
	"github.com/lifebalance/lifebalance/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		if err := checkStateIntegrity(ctx); err != nil {
			fmt.Printf("❌ State integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ State integrity: OK\n")
		}

		if err := checkAccounts(ctx); err != nil {
			fmt.Printf("❌ Accounts: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Accounts: OK\n")
		}
	} else {
		fmt.Printf("⊘ State integrity: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Accounts: SKIPPED (storage not reachable)\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if ctx.Notifier.Available() {
		fmt.Printf("✓ Tray notifier: OK\n")
	} else {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   lifebalance-tray is not running; reminders will be silent\n")
	}

	if url, _ := sync.LoadConfig(); url == "" {
		fmt.Printf("⊘ Remote sync: DISABLED (no endpoint configured)\n")
	} else {
		fmt.Printf("✓ Remote sync: configured (%s)\n", url)
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStateIntegrity(ctx *cli.Context) error {
	state, err := ctx.Store.GetState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	for _, dateStr := range []string{state.LastWaterResetDate, state.LastActivityDate, state.LastQuranResetDate} {
		if dateStr == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			return fmt.Errorf("invalid date stamp in state: %q", dateStr)
		}
	}

	for _, slot := range state.WaterSchedule {
		if !utils.ValidateTimeFormat(slot) {
			return fmt.Errorf("invalid water schedule slot: %q", slot)
		}
	}

	ids := make(map[string]bool)
	for _, t := range state.Tasks {
		if ids[t.ID] {
			return fmt.Errorf("duplicate task ID found: %s", t.ID)
		}
		ids[t.ID] = true
	}

	if state.WaterIntakeMl < 0 {
		return fmt.Errorf("negative water intake: %d", state.WaterIntakeMl)
	}
	return nil
}

func checkAccounts(ctx *cli.Context) error {
	accts, err := ctx.Store.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	seen := make(map[string]bool)
	for _, a := range accts {
		if seen[a.Identifier] {
			return fmt.Errorf("duplicate account identifier: %s", a.Identifier)
		}
		seen[a.Identifier] = true
	}

	sess, err := ctx.Store.GetSession()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if sess.SignedIn() {
		if _, err := ctx.Store.GetAccount(sess.AccountID); err != nil {
			return fmt.Errorf("session points at missing account %s", sess.AccountID)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
