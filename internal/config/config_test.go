package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; empty counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "DB_PATH", "JWT_SECRET", "DAILY_SALT", "DAILY_LIST",
		"CLIENT_ORIGIN", "WORDS_FILE", "GRID_SIZE", "MAX_ATTEMPTS",
		"TICKET_TTL_HOURS", "MATCH_BOTH_DIRECTIONS",
		"CACHE_TTL_MINUTES", "CACHE_MAX_GAMES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordsearch.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9000"
grid_size = 12
match_both_directions = true
daily_list = "animals"
`), 0o644))

	clearEnv(t)
	t.Setenv("PORT", "9100")
	t.Setenv("MAX_ATTEMPTS", "77")
	t.Setenv("CACHE_TTL_MINUTES", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9100", cfg.Port)
	require.Equal(t, 12, cfg.GridSize)
	require.Equal(t, 77, cfg.MaxAttempts)
	require.True(t, cfg.MatchBothDirections)
	require.Equal(t, "animals", cfg.DailyList)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL())
	require.Equal(t, 10000, cfg.CacheMaxGames)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	t.Setenv("GRID_SIZE", "big")
	_, err = Load("")
	require.ErrorContains(t, err, "GRID_SIZE")

	for _, size := range []string{"0", "65", "3000"} {
		t.Setenv("GRID_SIZE", size)
		_, err = Load("")
		require.ErrorContains(t, err, "grid_size", "GRID_SIZE=%s", size)
	}
}
