// Package tui is the interactive dashboard built on Bubble Tea. It is a thin
// shell over the engine: every user action maps to one mutator call and every
// view renders from a fresh StateRecord snapshot.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/models"
)

type viewState int

const (
	viewDashboard viewState = iota
	viewBoard
	viewSleep
	viewAwards

	viewCount
)

type tickMsg time.Time

type stateMsg struct {
	state models.StateRecord
	err   error
}

type statusMsg string

// App is the root Bubble Tea model.
type App struct {
	engine *engine.Engine
	width  int
	height int

	activeView viewState
	showHelp   bool

	dashboard dashboardModel
	board     boardModel
	sleep     sleepModel
	awards    awardsModel

	help   help.Model
	status string
}

func NewApp(eng *engine.Engine) App {
	h := help.New()
	h.ShowAll = false

	return App{
		engine:     eng,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(eng),
		board:      newBoardModel(eng),
		sleep:      newSleepModel(eng),
		awards:     newAwardsModel(eng),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(loadState(a.engine), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadState fetches a fresh snapshot; the engine applies the day rollover on
// the way out, so the TUI never shows yesterday's counters after midnight.
func loadState(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		state, err := eng.State()
		return stateMsg{state: state, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.board.setSize(a.width, contentHeight)
		a.sleep.setSize(a.width, contentHeight)
		a.awards.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.formActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, loadState(a.engine)
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewBoard
			return a, loadState(a.engine)
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewSleep
			return a, loadState(a.engine)
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewAwards
			return a, loadState(a.engine)
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewCount
			return a, loadState(a.engine)
		}
		return a.updateActiveView(msg)

	case tickMsg:
		return a, tea.Batch(tickCmd(), loadState(a.engine))

	case stateMsg:
		if msg.err != nil {
			a.status = errorStyle.Render(msg.err.Error())
			return a, nil
		}
		a.dashboard.state = msg.state
		a.board.setState(msg.state)
		a.sleep.setState(msg.state)
		a.awards.setState(msg.state)
		return a, nil

	case statusMsg:
		a.status = string(msg)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) formActive() bool {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.form != nil
	case viewBoard:
		return a.board.form != nil
	case viewSleep:
		return a.sleep.form != nil
	}
	return false
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewBoard:
		a.board, cmd = a.board.update(msg)
	case viewSleep:
		a.sleep, cmd = a.sleep.update(msg)
	case viewAwards:
		a.awards, cmd = a.awards.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	tabs := a.renderTabs()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewBoard:
		content = a.board.view()
	case viewSleep:
		content = a.sleep.view()
	case viewAwards:
		content = a.awards.view()
	}

	footer := statusBarStyle.Render(a.status)
	if a.status == "" {
		footer = a.help.View(keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, content, footer)
}

func (a App) renderTabs() string {
	labels := []string{"1:Dashboard", "2:Tasks", "3:Sleep", "4:Awards"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if viewState(i) == a.activeView {
			rendered[i] = activeTabStyle.Render(label)
		} else {
			rendered[i] = inactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}
