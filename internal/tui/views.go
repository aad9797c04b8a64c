package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/model"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), m.renderBody()}
	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}
	if m.lastError != nil {
		sections = append(sections, m.theme.StatusError.Render("Reload failed: "+m.lastError.Error()))
	}
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.title
	if title == "" {
		title = "Move review"
	}

	negative := "negative losses excluded"
	if m.input.IncludeNegativeScores {
		negative = "negative losses included"
	}

	parts := []string{string(m.Method()) + " method", negative}
	if kind := m.input.Record.Kind; kind != "" {
		parts = append([]string{string(kind) + " review"}, parts...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(title),
		m.theme.Subtitle.Render(strings.Join(parts, " · ")),
	)
}

func (m Model) renderBody() string {
	switch {
	case m.input.IsLoading:
		return m.theme.StatusPending.Render("Waiting for review data...")
	case !m.table.ShouldShowTable:
		return m.theme.StatusPending.Render("No move categories for this review.")
	case len(m.table.Rows) == 0:
		return m.theme.StatusPending.Render("Review could not be categorized yet.")
	default:
		return m.theme.BorderedBox.Render(m.rows.View())
	}
}

func (m Model) renderFooter() string {
	cat, ok := m.SelectedCategory()
	if !ok {
		return ""
	}

	drill := fmt.Sprintf("%s %s moves: %s",
		m.theme.Bold.Render(capitalize(m.color)),
		m.theme.Category(cat).Render(cat.String()),
		cli.FormatMoveNumbers(m.SelectedMoves()))

	return lipgloss.JoinVertical(lipgloss.Left, drill, "", cli.SummaryText(m.table))
}

func capitalize(c model.Color) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
