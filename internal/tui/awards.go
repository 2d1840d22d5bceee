package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifebalance/lifebalance/internal/achievements"
	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/models"
)

type awardsModel struct {
	engine   *engine.Engine
	statuses []achievements.Status
	width    int
	height   int
}

func newAwardsModel(eng *engine.Engine) awardsModel {
	return awardsModel{engine: eng}
}

func (a *awardsModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a *awardsModel) setState(s models.StateRecord) {
	a.statuses = achievements.Evaluate(s)
}

func (a awardsModel) update(msg tea.Msg) (awardsModel, tea.Cmd) {
	return a, nil
}

func (a awardsModel) view() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Achievements (%d/%d)",
		achievements.Unlocked(a.statuses), len(a.statuses))) + "\n\n")

	for _, st := range a.statuses {
		mark := subtitleStyle.Render("  ")
		name := subtitleStyle.Render(st.Rule.Name)
		if st.Unlocked {
			mark = successStyle.Render("★ ")
			name = titleStyle.Render(st.Rule.Name)
		}
		sb.WriteString(fmt.Sprintf("%s%-22s %s %3.0f%%  %s\n",
			mark, name, bar(st.Progress, 16), st.Progress, subtitleStyle.Render(string(st.Rule.Rank))))
	}

	return panelStyle.Width(max(40, a.width-4)).Render(sb.String())
}
