package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifebalance/lifebalance/internal/cli"
	"github.com/lifebalance/lifebalance/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.BeginSession()
	defer ctx.EndSession()

	app := tui.NewApp(ctx.Engine)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
