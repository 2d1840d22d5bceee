// Package accounts holds the multi-user commands: local profiles that each
// carry their own tracked state, plus the session that selects one of them.
package accounts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/validation"
)

type AccountCreateCmd struct {
	Name       string `arg:"" help:"Display name."`
	Identifier string `short:"i" help:"Unique handle or email. Defaults to the name."`
}

func (c *AccountCreateCmd) Validate() error {
	return validation.Title(c.Name)
}

func (c *AccountCreateCmd) Run(ctx *cli.Context) error {
	identifier := c.Identifier
	if identifier == "" {
		identifier = c.Name
	}

	if _, err := ctx.Store.GetAccountByIdentifier(identifier); err == nil {
		return fmt.Errorf("an account with identifier %q already exists", identifier)
	}

	acct := models.Account{
		ID:         uuid.New().String(),
		Name:       c.Name,
		Identifier: identifier,
		State:      models.DefaultState(),
		CreatedAt:  time.Now(),
	}
	if err := ctx.Store.SaveAccount(acct); err != nil {
		return err
	}

	fmt.Printf("Created account %s (%s)\n", acct.Name, acct.Identifier)
	fmt.Printf("Sign in with: lifebalance account signin %s\n", acct.Identifier)
	return nil
}

type AccountListCmd struct{}

func (c *AccountListCmd) Run(ctx *cli.Context) error {
	accts, err := ctx.Store.GetAllAccounts()
	if err != nil {
		return err
	}
	if len(accts) == 0 {
		fmt.Println("No accounts. Create one with 'lifebalance account create'.")
		return nil
	}

	sess, _ := ctx.Store.GetSession()
	for _, a := range accts {
		marker := " "
		if sess.SignedIn() && sess.AccountID == a.ID {
			marker = "*"
		}
		fmt.Printf("  %s %-20s %-25s streak %3dd  %s in app\n",
			marker, a.Name, a.Identifier, a.State.StreakDays, cli.FormatDuration(a.TotalTimeSpent))
	}
	return nil
}

type SigninCmd struct {
	Identifier string `arg:"" help:"Account identifier."`
}

func (c *SigninCmd) Run(ctx *cli.Context) error {
	acct, err := ctx.Store.GetAccountByIdentifier(c.Identifier)
	if err != nil {
		return fmt.Errorf("account not found: %s", c.Identifier)
	}

	// Park the current guest/previous state in the outgoing account before
	// switching.
	if prev, ok := ctx.CurrentAccount(); ok && prev.ID != acct.ID {
		if state, err := ctx.Store.GetState(); err == nil {
			prev.State = state
			_ = ctx.Store.SaveAccount(prev)
		}
	}

	acct.LastLogin = time.Now()
	if err := ctx.Store.SaveAccount(acct); err != nil {
		return err
	}
	if err := ctx.Store.SaveSession(models.Session{AccountID: acct.ID}); err != nil {
		return err
	}
	if err := ctx.Store.SaveState(acct.State); err != nil {
		return err
	}

	fmt.Printf("Signed in as %s\n", acct.Name)
	if ctx.Sync != nil {
		ctx.Sync.UpsertAsync(acct)
	}
	return nil
}

type SignoutCmd struct{}

func (c *SignoutCmd) Run(ctx *cli.Context) error {
	sess, err := ctx.Store.GetSession()
	if err != nil {
		return err
	}
	if !sess.SignedIn() {
		fmt.Println("Not signed in.")
		return nil
	}

	if err := ctx.Store.SaveSession(models.Session{Guest: true}); err != nil {
		return err
	}
	fmt.Println("Signed out. Continuing as guest.")
	return nil
}

type AccountDeleteCmd struct {
	Identifier string `arg:"" help:"Account identifier."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *AccountDeleteCmd) Run(ctx *cli.Context) error {
	acct, err := ctx.Store.GetAccountByIdentifier(c.Identifier)
	if err != nil {
		return fmt.Errorf("account not found: %s", c.Identifier)
	}

	if !c.Yes {
		fmt.Printf("Delete account %s (%s) and all its data? [y/N] ", acct.Name, acct.Identifier)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	sess, _ := ctx.Store.GetSession()
	if sess.AccountID == acct.ID {
		if err := ctx.Store.SaveSession(models.Session{Guest: true}); err != nil {
			return err
		}
	}

	if err := ctx.Store.DeleteAccount(acct.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted account %s\n", acct.Name)
	return nil
}
