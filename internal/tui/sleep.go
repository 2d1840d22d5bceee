package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/models"
)

type sleepModel struct {
	engine *engine.Engine
	state  models.StateRecord
	width  int
	height int

	chart barchart.Model

	form    *huh.Form
	quality models.SleepQuality
}

func newSleepModel(eng *engine.Engine) sleepModel {
	return sleepModel{
		engine:  eng,
		chart:   barchart.New(40, 8),
		quality: models.SleepGood,
	}
}

func (s *sleepModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.buildChart()
}

func (s *sleepModel) setState(state models.StateRecord) {
	s.state = state
	s.buildChart()
}

// buildChart renders the last 7 check-ins as bars scored good=3, average=2,
// poor=1. Missing days show as empty bars.
func (s *sleepModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 30 {
		chartWidth = 30
	}
	s.chart = barchart.New(chartWidth, 8)

	byDate := make(map[string]models.SleepQuality)
	for _, e := range s.state.SleepHistory {
		byDate[e.Date] = e.Quality
	}

	scores := map[models.SleepQuality]float64{
		models.SleepGood:    3,
		models.SleepAverage: 2,
		models.SleepPoor:    1,
	}
	colors := map[models.SleepQuality]lipgloss.Color{
		models.SleepGood:    colorSuccess,
		models.SleepAverage: colorWarning,
		models.SleepPoor:    colorError,
	}

	var bars []barchart.BarData
	now := time.Now()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")
		label := day.Format("Mon")

		value := barchart.BarValue{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}
		if q, ok := byDate[dateStr]; ok {
			value = barchart.BarValue{
				Name:  string(q),
				Value: scores[q],
				Style: lipgloss.NewStyle().Foreground(colors[q]),
			}
		}
		bars = append(bars, barchart.BarData{Label: label, Values: []barchart.BarValue{value}})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func newSleepForm(quality *models.SleepQuality) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.SleepQuality]().
				Title("How did you sleep?").
				Options(
					huh.NewOption("Good", models.SleepGood),
					huh.NewOption("Average", models.SleepAverage),
					huh.NewOption("Poor", models.SleepPoor),
				).
				Value(quality),
		),
	).WithTheme(huh.ThemeDracula())
}

func (s sleepModel) update(msg tea.Msg) (sleepModel, tea.Cmd) {
	if s.form != nil {
		form, cmd := s.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			s.form = f
		}

		switch s.form.State {
		case huh.StateCompleted:
			quality := s.quality
			s.form = nil
			eng := s.engine
			return s, func() tea.Msg {
				if err := eng.RecordSleep(quality); err != nil {
					return statusMsg(errorStyle.Render(err.Error()))
				}
				state, err := eng.State()
				return stateMsg{state: state, err: err}
			}
		case huh.StateAborted:
			s.form = nil
			return s, nil
		}
		return s, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Add) {
			s.quality = models.SleepGood
			s.form = newSleepForm(&s.quality)
			return s, s.form.Init()
		}
	}
	return s, nil
}

func (s sleepModel) view() string {
	if s.form != nil {
		return panelStyle.Render(s.form.View())
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Sleep, last 7 days") + "\n\n")
	sb.WriteString(s.chart.View() + "\n")

	wakeup := s.state.WakeupTime
	next := time.Now().AddDate(0, 0, 1)
	if next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		wakeup = s.state.WeekendWakeupTime
	}

	if options, err := engine.SuggestBedtimes(wakeup, time.Now()); err == nil {
		sb.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Bedtimes for a %s wakeup", wakeup)) + "\n")
		for _, opt := range options {
			sb.WriteString(fmt.Sprintf("  %s  %s\n",
				successStyle.Render(opt.Clock),
				subtitleStyle.Render(fmt.Sprintf("%d cycles, %.1fh", opt.Cycles, opt.SleepHours))))
		}
	}

	sb.WriteString("\n" + subtitleStyle.Render("a: record check-in"))
	return panelStyle.Width(max(40, s.width-4)).Render(sb.String())
}
