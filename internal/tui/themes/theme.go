// Package themes holds the color schemes for the review viewer.
package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/online-go/movereview/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Categories    [model.NumCategories]lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
}

// Category returns the style for a move category.
func (t Theme) Category(c model.Category) lipgloss.Style {
	if c < 0 || int(c) >= model.NumCategories {
		return t.Normal
	}
	return lipgloss.NewStyle().Foreground(t.Categories[c])
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#e0b36a"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),
	Categories: [model.NumCategories]lipgloss.Color{
		model.CategoryExcellent:  "#10b981",
		model.CategoryGreat:      "#6ee7b7",
		model.CategoryGood:       "#3b82f6",
		model.CategoryInaccuracy: "#f59e0b",
		model.CategoryMistake:    "#f97316",
		model.CategoryBlunder:    "#ef4444",
	},

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e0b36a")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c5a2a")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	Primary: lipgloss.Color("#cba6f7"),
	Muted:   lipgloss.Color("#6c7086"),
	Border:  lipgloss.Color("#45475a"),
	Categories: [model.NumCategories]lipgloss.Color{
		model.CategoryExcellent:  "#a6e3a1",
		model.CategoryGreat:      "#94e2d5",
		model.CategoryGood:       "#89b4fa",
		model.CategoryInaccuracy: "#f9e2af",
		model.CategoryMistake:    "#fab387",
		model.CategoryBlunder:    "#f38ba8",
	},

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cba6f7")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#45475a")).
		Foreground(lipgloss.Color("#cdd6f4")).
		Bold(true),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
