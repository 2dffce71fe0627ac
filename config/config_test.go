package config_test

import (
	"os"
	"testing"

	"github.com/avlowe/lineup/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent, not empty
	for _, key := range []string{"GENIUS_ACCESS_TOKEN", "LINEUP_WORKERS", "LINEUP_DB"} {
		t.Setenv(key, "x")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "lineup.db", cfg.DBFile)
	assert.Error(t, cfg.RequireToken())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GENIUS_ACCESS_TOKEN", "tok")
	t.Setenv("LINEUP_WORKERS", "12")
	t.Setenv("LINEUP_DB", "other.db")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "tok", cfg.AccessToken)
	assert.Equal(t, 12, cfg.Workers)
	assert.Equal(t, "other.db", cfg.DBFile)
	assert.NoError(t, cfg.RequireToken())
}
