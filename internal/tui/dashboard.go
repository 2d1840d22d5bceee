package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/models"
)

type dashboardFormKind int

const (
	formNone dashboardFormKind = iota
	formWater
	formGratitude
)

type dashboardModel struct {
	engine *engine.Engine
	state  models.StateRecord
	width  int
	height int

	form     *huh.Form
	formKind dashboardFormKind
	amount   string
	text     string
}

func newDashboardModel(eng *engine.Engine) dashboardModel {
	return dashboardModel{engine: eng}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func newWaterForm(amount *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Water (ml)").
				Description("Negative values correct a mistake").
				Value(amount).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("enter a whole number of milliliters")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newGratitudeForm(text *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Grateful for").
				Value(text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("note cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.form != nil {
		form, cmd := d.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			d.form = f
		}

		switch d.form.State {
		case huh.StateCompleted:
			kind := d.formKind
			d.form = nil
			d.formKind = formNone
			return d, d.submit(kind)
		case huh.StateAborted:
			d.form = nil
			d.formKind = formNone
			return d, nil
		}
		return d, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Water):
			d.amount = ""
			d.formKind = formWater
			d.form = newWaterForm(&d.amount)
			return d, d.form.Init()
		case key.Matches(msg, keys.Add):
			d.text = ""
			d.formKind = formGratitude
			d.form = newGratitudeForm(&d.text)
			return d, d.form.Init()
		}
	}
	return d, nil
}

func (d dashboardModel) submit(kind dashboardFormKind) tea.Cmd {
	eng := d.engine
	amount := strings.TrimSpace(d.amount)
	text := strings.TrimSpace(d.text)

	return func() tea.Msg {
		switch kind {
		case formWater:
			ml, err := strconv.Atoi(amount)
			if err != nil {
				return statusMsg(errorStyle.Render(err.Error()))
			}
			effects, err := eng.AddWater(ml)
			if err != nil {
				return statusMsg(errorStyle.Render(err.Error()))
			}
			for _, e := range effects {
				return statusMsg(successStyle.Render("🎉 " + e.Message))
			}
		case formGratitude:
			if _, err := eng.AddGratitude(text); err != nil {
				return statusMsg(errorStyle.Render(err.Error()))
			}
		}
		state, err := eng.State()
		return stateMsg{state: state, err: err}
	}
}

func (d dashboardModel) view() string {
	if d.form != nil {
		return panelStyle.Render(d.form.View())
	}

	s := d.state

	waterPct := 0.0
	if goal := s.WaterGoalMl(); goal > 0 {
		waterPct = float64(s.WaterIntakeMl) / float64(goal) * 100
	}
	quranPct := 0.0
	if s.QuranPagesGoal > 0 {
		quranPct = float64(s.QuranPagesReadToday) / float64(s.QuranPagesGoal) * 100
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Today") + "\n\n")
	b.WriteString(fmt.Sprintf("Water    %s %dml / %dml\n", bar(waterPct, 24), s.WaterIntakeMl, s.WaterGoalMl()))
	b.WriteString(fmt.Sprintf("Reading  %s %d / %d pages\n\n", bar(quranPct, 24), s.QuranPagesReadToday, s.QuranPagesGoal))
	b.WriteString(fmt.Sprintf("Streak %s   Reading streak %s\n",
		successStyle.Render(fmt.Sprintf("%dd", s.StreakDays)),
		successStyle.Render(fmt.Sprintf("%dd", s.QuranStreakDays))))

	if len(s.GratitudeNotes) > 0 {
		b.WriteString("\n" + titleStyle.Render("Gratitude") + "\n")
		notes := s.GratitudeNotes
		if len(notes) > 3 {
			notes = notes[:3]
		}
		for _, n := range notes {
			b.WriteString(fmt.Sprintf("  • %s %s\n", n.Text, subtitleStyle.Render("("+n.Date+")")))
		}
	}

	b.WriteString("\n" + subtitleStyle.Render("w: log water   a: gratitude note"))
	return panelStyle.Width(max(40, d.width-4)).Render(b.String())
}

func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	full := lipgloss.NewStyle().Foreground(colorPrimary).Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().Foreground(colorSubtle).Render(strings.Repeat("░", width-filled))
	return full + empty
}
