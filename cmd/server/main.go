package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brickprod/callsheet-api/internal/config"
	"github.com/brickprod/callsheet-api/internal/database"
	"github.com/brickprod/callsheet-api/internal/handlers"
	"github.com/brickprod/callsheet-api/internal/logger"
	"github.com/brickprod/callsheet-api/internal/middleware"
	"github.com/brickprod/callsheet-api/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	// The database is optional. No DATABASE_URL, a bad handle, or a failed
	// probe all mean the same thing: keep serving, via the in-memory
	// fallback until the store is reachable.
	var db *gorm.DB
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, serving from the in-memory store only")
	} else {
		var err error
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to open database handle, serving from the in-memory store only")
			db = nil
		} else if err := database.Probe(db); err != nil {
			log.Warn().Err(err).Msg("database unreachable, requests will fall back to the in-memory store")
		} else if err := database.Migrate(db); err != nil {
			log.Warn().Err(err).Msg("failed to run migrations")
		} else {
			log.Info().Msg("database connection established")
		}
	}

	store := storage.New(db, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	middleware.SetupPrometheus(r)

	handlers.RegisterRoutes(r, store, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	database.Close(db)
}
