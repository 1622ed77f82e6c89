package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"daytrack/internal/datekey"
	"daytrack/internal/stats"
	"daytrack/internal/storage"
	"daytrack/internal/tui/components/tasklist"
	"daytrack/internal/tui/components/today"
	"daytrack/internal/tui/components/trend"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateTrend
	StateTasks
	StateAddTask
	StateEditNote
	StateConfirmDelete
)

// tabCount is the number of cycle-able tabs.
const tabCount = 3

type TaskFormModel struct {
	Text string
}

type NoteFormModel struct {
	Text string
}

type Model struct {
	store          storage.Provider
	state          SessionState
	keys           KeyMap
	help           help.Model
	todayModel     today.Model
	trendModel     trend.Model
	taskList       tasklist.Model
	form           *huh.Form
	taskForm       *TaskFormModel
	noteForm       *NoteFormModel
	taskToDeleteID int64
	statusErr      string
	quitting       bool
	width          int
	height         int
}

func NewModel(store storage.Provider) Model {
	key := datekey.Today()

	m := Model{
		store:      store,
		state:      StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		todayModel: today.New(key, store.Day(key)),
		trendModel: trend.New(0, 0),
		taskList:   tasklist.New(store.Tasks(), 0, 0),
	}
	m.refreshTrend(stats.Week)

	return m
}

// refreshTrend rebuilds the series for a window from current store contents.
func (m *Model) refreshTrend(w stats.Window) {
	m.trendModel.SetSeries(w, stats.Build(time.Now(), m.store.AllDays(), w))
}

// refreshToday re-reads the displayed day after a mutation.
func (m *Model) refreshToday() {
	key := m.todayModel.DateKey()
	m.todayModel.SetDay(key, m.store.Day(key))
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New task").
				Placeholder("What needs doing?").
				Value(&fm.Text),
		),
	)
}

func newNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				Placeholder("Your thoughts today...").
				Value(&fm.Text),
		),
	)
}
