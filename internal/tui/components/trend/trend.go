package trend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daytrack/internal/chart"
	"daytrack/internal/models"
	"daytrack/internal/stats"
)

// SelectWindowMsg asks the main model to rebuild the series for a window.
type SelectWindowMsg struct {
	Window stats.Window
}

type KeyMap struct {
	Week  key.Binding
	Month key.Binding
	Year  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
	}
}

var (
	activeWindowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	moodLegendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type Model struct {
	window stats.Window
	series stats.Series
	keys   KeyMap
	width  int
	height int
}

func New(width, height int) Model {
	return Model{
		window: stats.Week,
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
}

// SetSeries installs a freshly built series for the given window.
func (m *Model) SetSeries(window stats.Window, series stats.Series) {
	m.window = window
	m.series = series
}

func (m Model) Window() stats.Window {
	return m.window
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Week):
			return m, selectWindow(stats.Week)
		case key.Matches(msg, m.keys.Month):
			return m, selectWindow(stats.Month)
		case key.Matches(msg, m.keys.Year):
			return m, selectWindow(stats.Year)
		}
	}
	return m, nil
}

func selectWindow(w stats.Window) tea.Cmd {
	return func() tea.Msg { return SelectWindowMsg{Window: w} }
}

func (m Model) View() string {
	var b strings.Builder

	var tabs []string
	for _, w := range []stats.Window{stats.Week, stats.Month, stats.Year} {
		label := strings.ToUpper(string(w))
		if w == m.window {
			tabs = append(tabs, activeWindowStyle.Render(label))
		} else {
			tabs = append(tabs, dimStyle.Render(label))
		}
	}
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(tabs, "  "))

	cols := m.width - 4
	rows := m.height - 6
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}

	plot := chart.TermChart(m.series.Activity, m.series.Moods, m.series.Labels,
		models.MoodMax, cols, rows)
	if plot == "" {
		b.WriteString(dimStyle.Render("  No data to chart."))
		return b.String()
	}
	b.WriteString(plot)

	fmt.Fprintf(&b, "\n\n  %s   %s\n",
		moodLegendStyle.Render("• mood"),
		"█ activity")
	return b.String()
}
