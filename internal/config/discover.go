// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the XDG-compliant directory holding tidy's settings
// file and the persisted working-directory value.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tidy")
}

// DefaultPath returns the XDG-compliant default settings path.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Discover finds the settings file using the standard search order.
// Search order:
//  1. TIDY_CONFIG environment variable
//  2. ./tidy.toml (current directory)
//  3. $XDG_CONFIG_HOME/tidy/config.toml
//  4. /etc/tidy/config.toml
func Discover() (string, error) {
	// 1. Check TIDY_CONFIG env var
	if envPath := os.Getenv("TIDY_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("TIDY_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	// Build search paths
	paths := []string{
		"./tidy.toml",
		DefaultPath(),
		"/etc/tidy/config.toml",
	}

	// 2-4. Check each path
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
