package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/cli/accounts"
	"github.com/lifebalance/lifebalance/internal/cli/system"
	"github.com/lifebalance/lifebalance/internal/cli/tasks"
	"github.com/lifebalance/lifebalance/internal/engine"
	errs "github.com/lifebalance/lifebalance/internal/errors"
	"github.com/lifebalance/lifebalance/internal/logger"
	"github.com/lifebalance/lifebalance/internal/notifier"
	"github.com/lifebalance/lifebalance/internal/storage"
	"github.com/lifebalance/lifebalance/internal/sync"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (JSON or .db for SQLite) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." type:"string" default:"~/.config/lifebalance/lifebalance.db"`
	Json    bool   `help:"Use the plain JSON file store instead of SQLite."`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize lifebalance storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Watch  system.WatchCmd  `cmd:"" help:"Run the reminder scheduler in the foreground."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a test notification."`
	Sync   system.SyncCmd   `cmd:"" help:"Push the signed-in account to the host dashboard now."`

	Water struct {
		Add      cli.WaterAddCmd      `cmd:"" help:"Log water intake in milliliters."`
		Goal     cli.WaterGoalCmd     `cmd:"" help:"Set the daily goal in liters."`
		Schedule cli.WaterScheduleCmd `cmd:"" help:"Set or show reminder times."`
		Status   cli.WaterStatusCmd   `cmd:"" help:"Show today's intake." default:"1"`
	} `cmd:"" help:"Track water intake."`

	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a task to the board."`
		Move   tasks.TaskMoveCmd   `cmd:"" help:"Move a task between columns."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		List   cli.TaskListCmd     `cmd:"" help:"List tasks." default:"1"`
	} `cmd:"" help:"Manage the task board."`

	Sleep struct {
		Log     cli.SleepLogCmd     `cmd:"" help:"Record this morning's sleep quality."`
		Wakeup  cli.SleepWakeupCmd  `cmd:"" help:"Set the wakeup time."`
		Bedtime cli.SleepBedtimeCmd `cmd:"" help:"Show suggested bedtimes; optionally schedule a reminder."`
		History cli.SleepHistoryCmd `cmd:"" help:"Show recent check-ins." default:"1"`
	} `cmd:"" help:"Track sleep."`

	Gratitude struct {
		Add    cli.GratitudeAddCmd    `cmd:"" help:"Add a gratitude note."`
		List   cli.GratitudeListCmd   `cmd:"" help:"List recent notes." default:"1"`
		Delete cli.GratitudeDeleteCmd `cmd:"" help:"Delete a note."`
	} `cmd:"" help:"Keep a gratitude journal."`

	Quran struct {
		Read    cli.QuranReadCmd    `cmd:"" help:"Record pages read."`
		Goal    cli.QuranGoalCmd    `cmd:"" help:"Set the daily pages goal."`
		Reset   cli.QuranResetCmd   `cmd:"" help:"Close today's reading session."`
		Edition cli.QuranEditionCmd `cmd:"" help:"Set the page-count edition."`
		Status  cli.QuranStatusCmd  `cmd:"" help:"Show today's progress." default:"1"`
	} `cmd:"" help:"Track Quran reading."`

	Stats        cli.StatsCmd        `cmd:"" help:"Show a summary of all trackers."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievement progress."`

	Account struct {
		Create  accounts.AccountCreateCmd `cmd:"" help:"Create a local account."`
		List    accounts.AccountListCmd   `cmd:"" help:"List accounts." default:"1"`
		Signin  accounts.SigninCmd        `cmd:"" help:"Sign in to an account."`
		Signout accounts.SignoutCmd       `cmd:"" help:"Sign out and continue as guest."`
		Delete  accounts.AccountDeleteCmd `cmd:"" help:"Delete an account and its data."`
	} `cmd:"" help:"Manage local accounts."`

	Suggest system.SuggestCmd `cmd:"" help:"Send a suggestion to the developers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifebalance"),
		kong.Description("Personal wellness tracker: water, sleep, tasks, gratitude, reading"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.3.0"},
	)

	cfgPath := expandHome(CLI.Config)

	configDir := filepath.Dir(cfgPath)
	if strings.HasPrefix(cfgPath, "postgres") {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config", "lifebalance")
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var store storage.Provider
	switch {
	case strings.HasPrefix(cfgPath, "postgres://") || strings.HasPrefix(cfgPath, "postgresql://"):
		if storage.HasEmbeddedCredentials(cfgPath) {
			errs.Fatalf("PostgreSQL connection strings with embedded credentials are not allowed; use environment variables or a .pgpass file instead")
		}
		store = storage.NewPostgresStore(cfgPath)
	case CLI.Json || strings.HasSuffix(cfgPath, ".json"):
		store = storage.NewJSONStore(cfgPath)
	default:
		store = storage.NewSQLiteStore(cfgPath)
	}

	syncClient := sync.New(sync.LoadConfig())

	appCtx := &cli.Context{
		Store:    store,
		Engine:   engine.New(store, nil, syncClient),
		Sync:     syncClient,
		Notifier: notifier.New(),
	}

	// Load the store before running the command (init handles its own loading).
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
