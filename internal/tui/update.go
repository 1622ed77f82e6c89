package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daytrack/internal/datekey"
	"daytrack/internal/logger"
	"daytrack/internal/models"
	"daytrack/internal/tui/components/tasklist"
	"daytrack/internal/tui/components/today"
	"daytrack/internal/tui/components/trend"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.taskList.SetSize(msg.Width-4, msg.Height-6)
		m.trendModel.SetSize(msg.Width, msg.Height-4)
		return m, nil
	}

	// Form states swallow everything until completed or aborted
	if m.state == StateAddTask || m.state == StateEditNote {
		return m.updateForm(msg)
	}

	if m.state == StateConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case today.ToggleCategoryMsg:
		keyStr := m.todayModel.DateKey()
		value := !m.store.Day(keyStr).Categories[msg.Category]
		if err := m.store.SetCategory(keyStr, msg.Category, value); err != nil {
			logger.Error("failed to persist category flag", "date", keyStr, "err", err)
			m.statusErr = err.Error()
		}
		m.refreshToday()
		m.refreshTrend(m.trendModel.Window())
		return m, nil

	case today.MoodDeltaMsg:
		keyStr := m.todayModel.DateKey()
		mood := m.store.Day(keyStr).Mood + msg.Delta
		mood = math.Round(mood*10) / 10
		if mood < models.MoodMin {
			mood = models.MoodMin
		}
		if mood > models.MoodMax {
			mood = models.MoodMax
		}
		if err := m.store.SetMood(keyStr, mood); err != nil {
			logger.Error("failed to persist mood", "date", keyStr, "err", err)
			m.statusErr = err.Error()
		}
		m.refreshToday()
		m.refreshTrend(m.trendModel.Window())
		return m, nil

	case today.EditNoteMsg:
		m.noteForm = &NoteFormModel{Text: m.store.Day(m.todayModel.DateKey()).Note}
		m.form = newNoteForm(m.noteForm)
		m.state = StateEditNote
		return m, m.form.Init()

	case today.ChangeDayMsg:
		t, err := datekey.Parse(m.todayModel.DateKey())
		if err != nil {
			return m, nil
		}
		keyStr := datekey.Format(t.AddDate(0, 0, msg.Days))
		m.todayModel.SetDay(keyStr, m.store.Day(keyStr))
		return m, nil

	case trend.SelectWindowMsg:
		m.refreshTrend(msg.Window)
		return m, nil

	case tasklist.AddTaskMsg:
		m.taskForm = &TaskFormModel{}
		m.form = newTaskForm(m.taskForm)
		m.state = StateAddTask
		return m, m.form.Init()

	case tasklist.DeleteTaskMsg:
		m.taskToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case StateTrend:
		m.trendModel, cmd = m.trendModel.Update(msg)
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	back := StateToday
	if m.state == StateAddTask {
		back = StateTasks
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = back
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddTask {
			// Blank text is ignored by the store without an error
			if _, err := m.store.AddTask(m.taskForm.Text); err != nil {
				logger.Error("failed to persist task", "err", err)
				m.statusErr = err.Error()
			}
			m.taskList.SetTasks(m.store.Tasks())
		} else {
			keyStr := m.todayModel.DateKey()
			if err := m.store.SetNote(keyStr, m.noteForm.Text); err != nil {
				logger.Error("failed to persist note", "date", keyStr, "err", err)
				m.statusErr = err.Error()
			}
			m.refreshToday()
		}
		m.state = back
	case huh.StateAborted:
		m.state = back
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteTask(m.taskToDeleteID); err != nil {
				logger.Error("failed to delete task", "id", m.taskToDeleteID, "err", err)
				m.statusErr = err.Error()
			}
			m.taskList.SetTasks(m.store.Tasks())
			m.state = StateTasks
		case "n", "N", "esc":
			m.state = StateTasks
		}
	}
	return m, nil
}
