package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/config"
	"github.com/robalobadob/wordsearch/internal/httpserver"
	"github.com/robalobadob/wordsearch/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.JWTSecret == config.Default().JWTSecret {
		log.Warn().Msg("JWT_SECRET not set, using development secret")
	}

	ctx := context.Background()
	db, err := catalog.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()
	if err := catalog.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	cat := catalog.New(db)
	if err := cat.Seed(ctx, cfg.WordsFile); err != nil {
		log.Fatal().Err(err).Msg("failed to seed word lists")
	}

	srv := httpserver.New(cfg, store.NewMemoryStore(cfg.CacheTTL(), cfg.CacheMaxGames), cat)
	log.Info().Str("port", cfg.Port).Int("gridSize", cfg.GridSize).Msg("starting wordsearch server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
