// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/online-go/movereview/internal/model"
)

// Palette. PrimaryColor is the board wood.
var (
	PrimaryColor = lipgloss.Color("#E0B36A")
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#FFE66D")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")
)

var (
	// TitleStyle is used for review titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// TableHeaderStyle underlines the category table header.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))
)

// categoryColors runs from green (best) to red (worst).
var categoryColors = [model.NumCategories]lipgloss.Color{
	model.CategoryExcellent:  "#2ECC71",
	model.CategoryGreat:      "#7BD389",
	model.CategoryGood:       "#4ECDC4",
	model.CategoryInaccuracy: "#FFE66D",
	model.CategoryMistake:    "#FFA94D",
	model.CategoryBlunder:    "#FF6B6B",
}

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	StoneIcon   = "⚫"
)

// CategoryStyle returns the foreground style for a move category.
func CategoryStyle(c model.Category) lipgloss.Style {
	if c < 0 || int(c) >= model.NumCategories {
		return SubtleStyle
	}
	return lipgloss.NewStyle().Foreground(categoryColors[c])
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a review title with the stone icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(StoneIcon + " " + title)
}
