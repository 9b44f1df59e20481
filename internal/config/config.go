// Package config loads and persists Shelfmark configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/leoventa/shelfmark/internal/logging"
	"github.com/leoventa/shelfmark/internal/naming"
	"github.com/leoventa/shelfmark/internal/paths"
)

// LookupConfig configures the metadata lookup service client.
type LookupConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// RenameConfig holds defaults for the rename pass.
type RenameConfig struct {
	// BatchSize chunks the run into groups of this many items, with a
	// continue prompt between groups. 0 processes everything in one go.
	BatchSize int `mapstructure:"batch_size"`
	// RenameFiles enables the file-level pass after a folder rename.
	RenameFiles bool `mapstructure:"rename_files"`
}

// SanitizeConfig overrides the replacement strings for reserved
// characters. The application order is fixed; only the substitutes are
// configurable.
type SanitizeConfig struct {
	Colon     string `mapstructure:"colon"`
	Slash     string `mapstructure:"slash"`
	Backslash string `mapstructure:"backslash"`
	Asterisk  string `mapstructure:"asterisk"`
	Question  string `mapstructure:"question"`
	Quote     string `mapstructure:"quote"`
	Less      string `mapstructure:"less"`
	Greater   string `mapstructure:"greater"`
	Pipe      string `mapstructure:"pipe"`
}

// JournalConfig configures the persistent operations journal.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // empty = default location
}

type Config struct {
	Lookup   LookupConfig   `mapstructure:"lookup"`
	Rename   RenameConfig   `mapstructure:"rename"`
	Sanitize SanitizeConfig `mapstructure:"sanitize"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Logging  logging.Config `mapstructure:"logging"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Lookup: LookupConfig{
			BaseURL:        "", // client default
			TimeoutSeconds: 30,
		},
		Rename: RenameConfig{
			BatchSize:   0,
			RenameFiles: false,
		},
		Sanitize: SanitizeConfig{
			Colon:     " -",
			Slash:     "-",
			Backslash: "-",
			Asterisk:  "",
			Question:  "",
			Quote:     "'",
			Less:      "",
			Greater:   "",
			Pipe:      "-",
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "",
		},
		Logging: logging.DefaultConfig(),
	}
}

// SanitizeRules converts the configured substitutes into the ordered
// rule list the sanitizer applies.
func (c *Config) SanitizeRules() []naming.Rule {
	s := c.Sanitize
	return []naming.Rule{
		{Old: ":", New: s.Colon},
		{Old: "/", New: s.Slash},
		{Old: "\\", New: s.Backslash},
		{Old: "*", New: s.Asterisk},
		{Old: "?", New: s.Question},
		{Old: `"`, New: s.Quote},
		{Old: "<", New: s.Less},
		{Old: ">", New: s.Greater},
		{Old: "|", New: s.Pipe},
	}
}

// Load loads configuration from the default location, falling back to
// defaults when no config file exists.
func Load() (*Config, error) {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	return LoadPath(configPath)
}

// LoadPath loads configuration from a specific file.
func LoadPath(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the default location.
func (c *Config) Save() error {
	configFile, err := paths.ConfigPath()
	if err != nil {
		return err
	}
	return c.SavePath(configFile)
}

// SavePath writes the configuration to a specific file.
func (c *Config) SavePath(configFile string) error {
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

// Exists reports whether a config file is present at the default
// location.
func Exists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ToTOML renders the configuration as a commented TOML document.
func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# Shelfmark configuration
# Generated by: shelfmark config init

# ============================================================================
# METADATA LOOKUP SERVICE
# ============================================================================
[lookup]
# Base URL of the lookup service. Empty selects the built-in default.
base_url = %q

# Request timeout in seconds.
timeout_seconds = %d

# ============================================================================
# RENAME PASS DEFAULTS
# ============================================================================
[rename]
# Items per batch before asking to continue. 0 = process everything.
batch_size = %d

# Rename media and subtitle files inside tagged folders.
rename_files = %t

# ============================================================================
# RESERVED CHARACTER REPLACEMENTS
# Replacements are applied in a fixed order; only the substitutes are
# configurable here.
# ============================================================================
[sanitize]
colon = %q
slash = %q
backslash = %q
asterisk = %q
question = %q
quote = %q
less = %q
greater = %q
pipe = %q

# ============================================================================
# OPERATIONS JOURNAL
# ============================================================================
[journal]
# Record every rename, skip and deletion in a local database.
enabled = %t

# Journal database path. Empty selects ~/.config/shelfmark/journal.db
path = %q

# ============================================================================
# LOGGING
# ============================================================================
[logging]
# Log level: debug, info, warn, error
level = %q

# Log file path. Empty selects a timestamped per-session file under
# ~/.config/shelfmark/logs
file = %q

# Rotate the log file when it exceeds this size.
max_size_mb = %d

# Number of rotated backups to keep.
max_backups = %d
`,
		c.Lookup.BaseURL,
		c.Lookup.TimeoutSeconds,
		c.Rename.BatchSize,
		c.Rename.RenameFiles,
		c.Sanitize.Colon,
		c.Sanitize.Slash,
		c.Sanitize.Backslash,
		c.Sanitize.Asterisk,
		c.Sanitize.Question,
		c.Sanitize.Quote,
		c.Sanitize.Less,
		c.Sanitize.Greater,
		c.Sanitize.Pipe,
		c.Journal.Enabled,
		c.Journal.Path,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}
