package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.EmailConfigured())
}

func TestLoadParsesFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "title_filters:\n  - \"Parked Domain\"\nhtml_filters:\n  - \"This domain is for sale\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.MatchesTitleFilter("Parked Domain For Sale"))
	assert.True(t, cfg.MatchesHTMLFilter("body text: This domain is for sale, cheap"))
	assert.False(t, cfg.MatchesHTMLFilter("unrelated body"))
}
