package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"page_count": 2,
		"summary_tier": "long",
		"max_bullets": 5,
		"skip_certifications": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.PageCount)
	assert.Equal(t, "long", cfg.SummaryTier)
	assert.Equal(t, 5, cfg.MaxBullets)
	assert.True(t, cfg.SkipCerts)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultPageCount, cfg.PageCount)
	assert.Equal(t, DefaultSummaryTier, cfg.SummaryTier)
	assert.Equal(t, DefaultMaxBullets, cfg.MaxBullets)
	assert.Equal(t, DefaultMaxProjects, cfg.MaxProjects)

	// Explicit values survive.
	cfg = &Config{PageCount: 2, SummaryTier: "short"}
	cfg.ApplyDefaults()
	assert.Equal(t, 2, cfg.PageCount)
	assert.Equal(t, "short", cfg.SummaryTier)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	assert.NoError(t, cfg.Validate())

	cfg.PageCount = 3
	assert.Error(t, cfg.Validate())

	cfg.PageCount = 1
	cfg.SummaryTier = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.SummaryTier = "medium"
	cfg.MaxBullets = 99
	assert.Error(t, cfg.Validate())
}
