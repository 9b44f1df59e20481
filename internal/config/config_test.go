package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPath_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Lookup.TimeoutSeconds, cfg.Lookup.TimeoutSeconds)
	assert.Equal(t, def.Rename.BatchSize, cfg.Rename.BatchSize)
	assert.True(t, cfg.Journal.Enabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Lookup.BaseURL = "http://localhost:9090"
	cfg.Rename.BatchSize = 25
	cfg.Rename.RenameFiles = true
	cfg.Sanitize.Colon = ""
	cfg.Logging.Level = "debug"

	require.NoError(t, cfg.SavePath(path))

	loaded, err := LoadPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", loaded.Lookup.BaseURL)
	assert.Equal(t, 25, loaded.Rename.BatchSize)
	assert.True(t, loaded.Rename.RenameFiles)
	assert.Equal(t, "", loaded.Sanitize.Colon)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rename]\nbatch_size = 10\n"), 0644))

	cfg, err := LoadPath(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Rename.BatchSize)
	// untouched sections keep their defaults
	assert.Equal(t, 30, cfg.Lookup.TimeoutSeconds)
	assert.Equal(t, " -", cfg.Sanitize.Colon)
}

func TestSanitizeRulesOrder(t *testing.T) {
	rules := DefaultConfig().SanitizeRules()

	require.Len(t, rules, 9)
	// colon first, pipe last: the declared application order
	assert.Equal(t, ":", rules[0].Old)
	assert.Equal(t, "|", rules[8].Old)
}

func TestToTOMLMentionsEverySection(t *testing.T) {
	doc := DefaultConfig().ToTOML()

	for _, section := range []string{"[lookup]", "[rename]", "[sanitize]", "[journal]", "[logging]"} {
		assert.Contains(t, doc, section)
	}
}
