package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"
)

func TestUserHomeDir_NoSudo(t *testing.T) {
	// Clear SUDO_USER to simulate normal execution
	os.Unsetenv("SUDO_USER")

	got, err := UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	// Should return current user's home
	expected, _ := os.UserHomeDir()
	if got != expected {
		t.Errorf("UserHomeDir() = %q, want %q", got, expected)
	}
}

func TestUserHomeDir_WithSudoUser(t *testing.T) {
	// Get current user to use as test subject
	currentUser, err := user.Current()
	if err != nil {
		t.Skip("Cannot get current user")
	}

	// Set SUDO_USER to current user (simulates sudo from this user)
	os.Setenv("SUDO_USER", currentUser.Username)
	defer os.Unsetenv("SUDO_USER")

	got, err := UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	if got != currentUser.HomeDir {
		t.Errorf("UserHomeDir() = %q, want %q", got, currentUser.HomeDir)
	}
}

func TestUserHomeDir_SudoUserRoot(t *testing.T) {
	// SUDO_USER=root should be ignored
	os.Setenv("SUDO_USER", "root")
	defer os.Unsetenv("SUDO_USER")

	got, err := UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	// Should fall back to current user's home (not /root)
	expected, _ := os.UserHomeDir()
	if got != expected {
		t.Errorf("UserHomeDir() = %q, want %q", got, expected)
	}
}

func TestActualUser_WithSudoUser(t *testing.T) {
	os.Setenv("SUDO_USER", "libraryowner")
	defer os.Unsetenv("SUDO_USER")

	if got := ActualUser(); got != "libraryowner" {
		t.Errorf("ActualUser() = %q, want %q", got, "libraryowner")
	}
}

func TestActualUser_SudoUserRoot(t *testing.T) {
	// SUDO_USER=root should be ignored
	os.Setenv("SUDO_USER", "root")
	defer os.Unsetenv("SUDO_USER")

	current, err := user.Current()
	if err != nil {
		t.Skip("Cannot get current user")
	}
	if got := ActualUser(); got != current.Username {
		t.Errorf("ActualUser() = %q, want %q", got, current.Username)
	}
}

func TestConfigPath(t *testing.T) {
	os.Unsetenv("SUDO_USER")

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}

	if filepath.Base(got) != "config.toml" {
		t.Errorf("ConfigPath() = %q, want config.toml basename", got)
	}
	if !strings.Contains(got, filepath.Join(".config", "shelfmark")) {
		t.Errorf("ConfigPath() = %q, want path under .config/shelfmark", got)
	}
}

func TestJournalPath(t *testing.T) {
	os.Unsetenv("SUDO_USER")

	got, err := JournalPath()
	if err != nil {
		t.Fatalf("JournalPath() error = %v", err)
	}

	if filepath.Base(got) != "journal.db" {
		t.Errorf("JournalPath() = %q, want journal.db basename", got)
	}
}
