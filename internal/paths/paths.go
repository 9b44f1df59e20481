// Package paths provides sudo-aware path resolution for Shelfmark.
//
// When running with sudo, these functions correctly resolve paths to the
// original user's directories (via SUDO_USER) instead of root's directories.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
)

// UserHomeDir returns the home directory of the actual user.
// If running with sudo, returns the SUDO_USER's home directory, not root's.
func UserHomeDir() (string, error) {
	// Check SUDO_USER first (running with sudo)
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil {
			return u.HomeDir, nil
		}
		// Fall through if lookup fails
	}

	// Fallback to current user
	return os.UserHomeDir()
}

// UserConfigDir returns the config directory of the actual user.
// On Linux this is typically ~/.config
func UserConfigDir() (string, error) {
	homeDir, err := UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// ShelfmarkDir returns the Shelfmark config directory.
// This is ~/.config/shelfmark for the actual user.
func ShelfmarkDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "shelfmark"), nil
}

// ConfigPath returns the path to the Shelfmark config file.
// This is ~/.config/shelfmark/config.toml for the actual user.
func ConfigPath() (string, error) {
	dir, err := ShelfmarkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// JournalPath returns the path to the operations journal database.
// This is ~/.config/shelfmark/journal.db for the actual user.
func JournalPath() (string, error) {
	dir, err := ShelfmarkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "journal.db"), nil
}

// LogDir returns the directory for session log files.
// This is ~/.config/shelfmark/logs for the actual user.
func LogDir() (string, error) {
	dir, err := ShelfmarkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// ActualUser returns the actual username (not root when using sudo).
func ActualUser() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		return sudoUser
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}
