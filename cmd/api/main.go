package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/logger"
	"starblog/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	l := logger.New(cfg.AppEnv, cfg.LogLevel)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Silent: cfg.IsProd()})
	if err != nil {
		l.Fatal().Err(err).Msg("database connect failed")
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			l.Fatal().Err(err).Msg("auto-migrate failed")
		}
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(router.Options{
			DB:          db,
			Logger:      l,
			CORSOrigins: cfg.CORSAllowedOrigins,
		}),
	}

	go func() {
		l.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	l.Info().Msg("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
