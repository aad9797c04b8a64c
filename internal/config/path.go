// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDatabasePath is where imported reviews are cached when no path is configured.
const DefaultDatabasePath = "$HOME/.local/share/movereview/reviews.db"

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "movereview"), nil
}

// DatabasePath returns the expanded review cache location. The database.path
// key wins over MOVEREVIEW_DB.
func DatabasePath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = os.Getenv("MOVEREVIEW_DB")
	}
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + strings.TrimPrefix(path, "~")
		}
	}
	return os.ExpandEnv(path)
}
