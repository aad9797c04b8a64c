package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/review"
)

// Format selects how tables are written.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a --format value. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// RenderOptions controls text rendering.
type RenderOptions struct {
	Title     string
	Format    Format
	ShowMoves bool
}

const (
	labelWidth = 12
	countWidth = 7
)

// RenderTable writes a category table to w.
func RenderTable(w io.Writer, t review.Table, opts RenderOptions) error {
	if opts.Format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode table: %w", err)
		}
		return nil
	}

	_, err := io.WriteString(w, TableText(t, opts)+"\n")
	return err
}

// TableText renders a category table for the terminal.
func TableText(t review.Table, opts RenderOptions) string {
	var b strings.Builder

	if opts.Title != "" {
		b.WriteString(FormatTitle(opts.Title) + "\n")
	}

	if !t.ShouldShowTable {
		b.WriteString(SubtleStyle.Render("No move categories for this review."))
		return b.String()
	}
	if len(t.Rows) == 0 {
		b.WriteString(FormatWarning("Review could not be categorized."))
		return b.String()
	}

	b.WriteString(TableHeaderStyle.Render(
		cell("", labelWidth) +
			cell("Black", countWidth) + cell("%", countWidth) +
			cell("White", countWidth) + cell("%", countWidth)))
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString(CategoryStyle(row.Category).Render(cell(row.Label, labelWidth)))
		b.WriteString(cell(row.BlackCount, countWidth))
		b.WriteString(cell(row.BlackPercent, countWidth))
		b.WriteString(cell(row.WhiteCount, countWidth))
		b.WriteString(cell(row.WhitePercent, countWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SummaryText(t))

	if opts.ShowMoves {
		b.WriteString("\n\n")
		b.WriteString(MovesText(t))
	}

	return strings.TrimRight(b.String(), "\n")
}

// SummaryText renders the per-player averages below a table.
func SummaryText(t review.Table) string {
	lines := []string{
		summaryLine("Avg loss", t.AverageScoreLoss),
		summaryLine("Median loss", t.MedianScoreLoss),
	}
	if hasStrongRate(t) {
		lines = append(lines, summaryLine("Strong moves %", t.StrongMoveRate))
	}
	return strings.Join(lines, "\n")
}

// MovesText lists move numbers by category for each player.
func MovesText(t review.Table) string {
	var lines []string
	for _, color := range []model.Color{model.Black, model.White} {
		lines = append(lines, BoldStyle.Render(string(color)))
		byCategory := *t.CategorizedMoves.Get(color)
		for _, row := range t.Rows {
			lines = append(lines, "  "+CategoryStyle(row.Category).Render(cell(row.Label, labelWidth))+
				FormatMoveNumbers(byCategory[row.Category]))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatMoveNumbers joins move numbers with commas, or "-" when empty.
func FormatMoveNumbers(moves []int) string {
	if len(moves) == 0 {
		return SubtleStyle.Render("-")
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ", ")
}

// hasStrongRate reports whether the table came from a full review.
func hasStrongRate(t review.Table) bool {
	for _, row := range t.Rows {
		if row.Category == model.CategoryExcellent {
			return true
		}
	}
	return false
}

func summaryLine(label string, values model.ByColor[float64]) string {
	return cell(label, labelWidth+4) +
		SubtleStyle.Render("B ") + cell(fmt.Sprintf("%.1f", values.Black), countWidth) +
		SubtleStyle.Render("W ") + fmt.Sprintf("%.1f", values.White)
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
