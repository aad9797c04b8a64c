package tui

import (
	"time"

	"github.com/online-go/movereview/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Title     string
	WatchPath string
	Debounce  time.Duration
	Width     int
	Height    int
	AltScreen bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTitle sets the header shown above the table.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithWatch reloads the review from path whenever it changes.
func WithWatch(path string, debounce time.Duration) Option {
	return func(c *Config) {
		c.WatchPath = path
		c.Debounce = debounce
	}
}

// WithAltScreen controls whether the viewer takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
