package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/models"
)

type boardModel struct {
	engine *engine.Engine
	tasks  []models.Task
	cursor int
	width  int
	height int

	form     *huh.Form
	title    string
	priority models.Priority
}

func newBoardModel(eng *engine.Engine) boardModel {
	return boardModel{engine: eng, priority: models.PriorityMedium}
}

func (b *boardModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b *boardModel) setState(s models.StateRecord) {
	b.tasks = s.Tasks
	if b.cursor >= len(b.tasks) {
		b.cursor = len(b.tasks) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func newTaskForm(title *string, priority *models.Priority) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", models.PriorityLow),
					huh.NewOption("Medium", models.PriorityMedium),
					huh.NewOption("High", models.PriorityHigh),
				).
				Value(priority),
		),
	).WithTheme(huh.ThemeDracula())
}

func (b boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	if b.form != nil {
		form, cmd := b.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			b.form = f
		}

		switch b.form.State {
		case huh.StateCompleted:
			title, priority := strings.TrimSpace(b.title), b.priority
			b.form = nil
			eng := b.engine
			return b, func() tea.Msg {
				if _, err := eng.AddTask(title, priority); err != nil {
					return statusMsg(errorStyle.Render(err.Error()))
				}
				state, err := eng.State()
				return stateMsg{state: state, err: err}
			}
		case huh.StateAborted:
			b.form = nil
			return b, nil
		}
		return b, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, keys.Down):
			if b.cursor < len(b.tasks)-1 {
				b.cursor++
			}
		case key.Matches(msg, keys.Add):
			b.title = ""
			b.priority = models.PriorityMedium
			b.form = newTaskForm(&b.title, &b.priority)
			return b, b.form.Init()
		case key.Matches(msg, keys.Cycle):
			if b.cursor < len(b.tasks) {
				task := b.tasks[b.cursor]
				eng := b.engine
				next := nextStatus(task.Status)
				return b, func() tea.Msg {
					if err := eng.SetTaskStatus(task.ID, next); err != nil {
						return statusMsg(errorStyle.Render(err.Error()))
					}
					state, err := eng.State()
					return stateMsg{state: state, err: err}
				}
			}
		case key.Matches(msg, keys.Del):
			if b.cursor < len(b.tasks) {
				task := b.tasks[b.cursor]
				eng := b.engine
				return b, func() tea.Msg {
					if err := eng.DeleteTask(task.ID, false); err != nil {
						return statusMsg(errorStyle.Render(err.Error()))
					}
					state, err := eng.State()
					return stateMsg{state: state, err: err}
				}
			}
		}
	}
	return b, nil
}

func nextStatus(s models.TaskStatus) models.TaskStatus {
	switch s {
	case models.TaskTodo:
		return models.TaskInProgress
	case models.TaskInProgress:
		return models.TaskDone
	default:
		return models.TaskTodo
	}
}

func (b boardModel) view() string {
	if b.form != nil {
		return panelStyle.Render(b.form.View())
	}

	if len(b.tasks) == 0 {
		return panelStyle.Render(subtitleStyle.Render("No tasks. Press 'a' to add one."))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Tasks") + "\n\n")
	for i, t := range b.tasks {
		mark := "[ ]"
		switch t.Status {
		case models.TaskInProgress:
			mark = warningStyle.Render("[~]")
		case models.TaskDone:
			mark = successStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s %-40s %s", mark, t.Title, subtitleStyle.Render(string(t.Priority)))
		if i == b.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + subtitleStyle.Render("space: cycle status   a: add   d: delete"))
	return panelStyle.Width(max(40, b.width-4)).Render(sb.String())
}
