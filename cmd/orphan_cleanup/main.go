package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/domain"
	"starblog/internal/logger"
	"starblog/internal/repository"
)

// Removes favorite rows whose user or catalog entry was deleted before
// deletes started cleaning up after themselves.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	l := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Silent: true})
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}

	removed, err := repository.NewFavoriteRepository(db).PruneOrphans(context.Background())
	if err != nil {
		l.Fatal().Err(err).Msg("orphan cleanup failed")
	}

	l.Info().
		Int64("favorite_people", removed[domain.KindPeople]).
		Int64("favorite_planets", removed[domain.KindPlanet]).
		Int64("favorite_vehicles", removed[domain.KindVehicle]).
		Msg("orphan cleanup completed")
}
