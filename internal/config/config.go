// internal/config/config.go
//
// Server configuration.
// Precedence (lowest to highest):
//   1. Built-in defaults.
//   2. Optional TOML file (path from CONFIG_FILE).
//   3. Environment variables (a .env file is loaded by main beforehand).
//
// Environment variables:
//   PORT, LOG_LEVEL, DB_PATH, JWT_SECRET, DAILY_SALT, DAILY_LIST,
//   CLIENT_ORIGIN, GRID_SIZE, MAX_ATTEMPTS, MATCH_BOTH_DIRECTIONS,
//   WORDS_FILE, TICKET_TTL_HOURS, CACHE_TTL_MINUTES, CACHE_MAX_GAMES

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// Config holds every tunable of the server.
type Config struct {
	Port         string `toml:"port"`
	LogLevel     string `toml:"log_level"`
	DBPath       string `toml:"db_path"`
	JWTSecret    string `toml:"jwt_secret"`
	DailySalt    string `toml:"daily_salt"`
	DailyList    string `toml:"daily_list"`
	ClientOrigin string `toml:"client_origin"`
	WordsFile    string `toml:"words_file"`

	GridSize            int  `toml:"grid_size"`
	MaxAttempts         int  `toml:"max_attempts"`
	MatchBothDirections bool `toml:"match_both_directions"`
	TicketTTLHours      int  `toml:"ticket_ttl_hours"`

	// Game cache: idle lifetime and capacity (0 disables either).
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
	CacheMaxGames   int `toml:"cache_max_games"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           "5175",
		LogLevel:       "info",
		DBPath:         "./data/wordsearch.db",
		JWTSecret:      "dev_secret_change_me",
		DailySalt:      "local_dev_salt",
		DailyList:      "default",
		ClientOrigin:   "http://localhost:5173",
		GridSize:       10,
		MaxAttempts:    50000,
		TicketTTLHours: 24 * 7,

		CacheTTLMinutes: 60,
		CacheMaxGames:   10000,
	}
}

// TicketTTL is TicketTTLHours as a duration; 0 disables expiry.
func (c Config) TicketTTL() time.Duration {
	return time.Duration(c.TicketTTLHours) * time.Hour
}

// CacheTTL is CacheTTLMinutes as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.GridSize < 1 || cfg.GridSize > puzzle.MaxSize {
		return Config{}, fmt.Errorf("config: grid_size must be in [1, %d], got %d", puzzle.MaxSize, cfg.GridSize)
	}
	return cfg, nil
}

func applyEnv(c *Config) error {
	str := map[string]*string{
		"PORT":          &c.Port,
		"LOG_LEVEL":     &c.LogLevel,
		"DB_PATH":       &c.DBPath,
		"JWT_SECRET":    &c.JWTSecret,
		"DAILY_SALT":    &c.DailySalt,
		"DAILY_LIST":    &c.DailyList,
		"CLIENT_ORIGIN": &c.ClientOrigin,
		"WORDS_FILE":    &c.WordsFile,
	}
	for k, dst := range str {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GRID_SIZE":         &c.GridSize,
		"MAX_ATTEMPTS":      &c.MaxAttempts,
		"TICKET_TTL_HOURS":  &c.TicketTTLHours,
		"CACHE_TTL_MINUTES": &c.CacheTTLMinutes,
		"CACHE_MAX_GAMES":   &c.CacheMaxGames,
	}
	for k, dst := range ints {
		if v := os.Getenv(k); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", k, err)
			}
			*dst = n
		}
	}

	if v := os.Getenv("MATCH_BOTH_DIRECTIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: MATCH_BOTH_DIRECTIONS: %w", err)
		}
		c.MatchBothDirections = b
	}
	return nil
}
