package today

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daytrack/internal/models"
)

// Messages emitted toward the main model, which owns the store.

type ToggleCategoryMsg struct {
	Category models.Category
}

type MoodDeltaMsg struct {
	Delta float64
}

type EditNoteMsg struct{}

type ChangeDayMsg struct {
	Days int
}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	MoodUp  key.Binding
	MoodDn  key.Binding
	Note    key.Binding
	PrevDay key.Binding
	NextDay key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		MoodUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "mood up"),
		),
		MoodDn: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "mood down"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "edit note"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
	}
}

var (
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	goodMood     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badMood      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Model struct {
	key    string
	record models.DayRecord
	cursor int
	keys   KeyMap
}

func New(dateKey string, record models.DayRecord) Model {
	return Model{
		key:    dateKey,
		record: record,
		keys:   DefaultKeyMap(),
	}
}

// SetDay replaces the displayed day.
func (m *Model) SetDay(dateKey string, record models.DayRecord) {
	m.key = dateKey
	m.record = record
}

func (m Model) DateKey() string {
	return m.key
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(models.Categories)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			cat := models.Categories[m.cursor]
			return m, func() tea.Msg { return ToggleCategoryMsg{Category: cat} }
		case key.Matches(msg, m.keys.MoodUp):
			return m, func() tea.Msg { return MoodDeltaMsg{Delta: 0.1} }
		case key.Matches(msg, m.keys.MoodDn):
			return m, func() tea.Msg { return MoodDeltaMsg{Delta: -0.1} }
		case key.Matches(msg, m.keys.Note):
			return m, func() tea.Msg { return EditNoteMsg{} }
		case key.Matches(msg, m.keys.PrevDay):
			return m, func() tea.Msg { return ChangeDayMsg{Days: -1} }
		case key.Matches(msg, m.keys.NextDay):
			return m, func() tea.Msg { return ChangeDayMsg{Days: 1} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s\n\n", m.key)

	for i, cat := range models.Categories {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := dimStyle.Render("[ ]")
		label := dimStyle.Render(models.Labels[cat])
		if m.record.Categories[cat] {
			mark = checkedStyle.Render("[✓]")
			label = checkedStyle.Render(models.Labels[cat])
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, label)
	}

	mood := fmt.Sprintf("%.1f", m.record.Mood)
	switch {
	case m.record.Mood >= 4:
		mood = goodMood.Render(mood)
	case m.record.Mood <= 2:
		mood = badMood.Render(mood)
	}
	fmt.Fprintf(&b, "\n  Mood %s  %s\n", mood, moodBar(m.record.Mood))

	if m.record.Note != "" {
		fmt.Fprintf(&b, "\n  %s\n", m.record.Note)
	} else {
		fmt.Fprintf(&b, "\n  %s\n", dimStyle.Render("no note, press 'n' to add one"))
	}

	return b.String()
}

// moodBar draws the 1..5 slider track.
func moodBar(mood float64) string {
	const width = 20
	filled := int((mood - models.MoodMin) / (models.MoodMax - models.MoodMin) * width)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return checkedStyle.Render(strings.Repeat("━", filled)) + dimStyle.Render(strings.Repeat("━", width-filled))
}
