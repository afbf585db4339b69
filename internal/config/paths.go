// Package config provides configuration management for the Scribe shell.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDirectory returns the per-user configuration directory.
//
// Locations:
//   - Windows: %APPDATA%\Scribe
//   - macOS: ~/Library/Application Support/Scribe
//   - Linux: $XDG_CONFIG_HOME/scribe (or ~/.config/scribe)
func ConfigDirectory() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "scribe")
		}
		return filepath.Join(homeDir, ".config", "scribe")
	}
	if runtime.GOOS == "linux" {
		return filepath.Join(configDir, "scribe")
	}
	return filepath.Join(configDir, "Scribe")
}

// LogDirectory returns the directory the rotating log file lives in.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\Scribe\logs
//   - Unix: <ConfigDirectory>/logs
func LogDirectory() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "scribe-logs")
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "Scribe", "logs")
	}
	return filepath.Join(ConfigDirectory(), "logs")
}

// DefaultConfigPath returns the path Load reads when no explicit path is given.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDirectory(), "shell.toml")
}
