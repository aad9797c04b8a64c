// Package tui provides an interactive viewer for categorized reviews.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/review"
	"github.com/online-go/movereview/internal/tui/themes"
)

// Model holds the viewer state. Every option change rebuilds the table
// from the stored input.
type Model struct {
	theme     themes.Theme
	lastError error
	input     review.Input
	help      help.Model
	keymap    KeyMap
	title     string
	color     model.Color
	table     review.Table
	rows      table.Model
	width     int
	height    int
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(in review.Input, cfg Config) Model {
	columns := []table.Column{
		{Title: "Category", Width: 12},
		{Title: "Black", Width: 6},
		{Title: "%", Width: 6},
		{Title: "White", Width: 6},
		{Title: "%", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(model.NumCategories+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cfg.Theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	m := Model{
		theme:  cfg.Theme,
		input:  in,
		help:   help.New(),
		keymap: DefaultKeyMap(),
		title:  cfg.Title,
		color:  model.Black,
		rows:   t,
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.refresh()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.ToggleMethod):
			if m.input.Method == model.MethodNew {
				m.input.Method = model.MethodOld
			} else {
				m.input.Method = model.MethodNew
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleNegative):
			m.input.IncludeNegativeScores = !m.input.IncludeNegativeScores
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.SwitchColor):
			m.color = m.color.Opponent()
			return m, nil
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ReviewLoadedMsg:
		if msg.Err != nil {
			// Keep showing the last good review.
			m.lastError = msg.Err
			return m, nil
		}
		m.lastError = nil
		m.input.Record = msg.File.Review
		m.input.Game = msg.File.Game
		m.input.IsLoading = false
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.rows, cmd = m.rows.Update(msg)
	return m, cmd
}

// refresh re-runs categorization with the current options.
func (m *Model) refresh() {
	m.table = review.BuildTable(m.input)

	rows := make([]table.Row, 0, len(m.table.Rows))
	for _, r := range m.table.Rows {
		rows = append(rows, table.Row{r.Label, r.BlackCount, r.BlackPercent, r.WhiteCount, r.WhitePercent})
	}
	m.rows.SetRows(rows)

	if len(rows) > 0 && (m.rows.Cursor() < 0 || m.rows.Cursor() >= len(rows)) {
		m.rows.SetCursor(0)
	}
}

// Table returns the table currently displayed.
func (m Model) Table() review.Table {
	return m.table
}

// Method returns the active full-review method.
func (m Model) Method() model.Method {
	if m.input.Method == "" {
		return model.MethodOld
	}
	return m.input.Method
}

// IncludeNegativeScores reports whether negative losses count as samples.
func (m Model) IncludeNegativeScores() bool {
	return m.input.IncludeNegativeScores
}

// Color returns the player whose moves the footer lists.
func (m Model) Color() model.Color {
	return m.color
}

// SelectedCategory returns the category under the cursor.
func (m Model) SelectedCategory() (model.Category, bool) {
	cursor := m.rows.Cursor()
	if cursor < 0 || cursor >= len(m.table.Rows) {
		return 0, false
	}
	return m.table.Rows[cursor].Category, true
}

// SelectedMoves returns the move numbers of the selected category for the
// selected player.
func (m Model) SelectedMoves() []int {
	cat, ok := m.SelectedCategory()
	if !ok {
		return nil
	}
	byCategory := *m.table.CategorizedMoves.Get(m.color)
	return byCategory[cat]
}
