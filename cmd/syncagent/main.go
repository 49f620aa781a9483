// The sync agent keeps a local JSON cache of projects, call sheets and
// templates converged with a call-sheet server. It syncs once at startup,
// then on a fixed interval; SIGHUP forces an immediate cycle.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brickprod/callsheet-api/internal/config"
	"github.com/brickprod/callsheet-api/internal/logger"
	"github.com/brickprod/callsheet-api/internal/models"
	"github.com/brickprod/callsheet-api/internal/syncclient"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	store, err := syncclient.NewLocalStore(cfg.SyncDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.SyncDir).Msg("failed to open local store")
	}

	projects := syncclient.NewSyncer(
		syncclient.NewAPIClient[models.Project](cfg.ServerURL, "/api/projects"),
		store, syncclient.ProjectsKey, log)
	callSheets := syncclient.NewSyncer(
		syncclient.NewAPIClient[models.CallSheet](cfg.ServerURL, "/api/call-sheets"),
		store, syncclient.CallSheetsKey, log)
	templates := syncclient.NewSyncer(
		syncclient.NewAPIClient[models.Template](cfg.ServerURL, "/api/templates"),
		store, syncclient.TemplatesKey, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	syncAll := func() {
		if _, err := projects.Sync(ctx); err != nil {
			log.Warn().Err(err).Msg("project sync failed")
		}
		if _, err := callSheets.Sync(ctx); err != nil {
			log.Warn().Err(err).Msg("call sheet sync failed")
		}
		if _, err := templates.Sync(ctx); err != nil {
			log.Warn().Err(err).Msg("template sync failed")
		}
	}

	log.Info().
		Str("server", cfg.ServerURL).
		Str("dir", cfg.SyncDir).
		Dur("interval", cfg.SyncInterval).
		Msg("sync agent starting")
	syncAll()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	ticker := time.NewTicker(cfg.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("sync agent stopping")
			return
		case <-ticker.C:
			syncAll()
		case <-hup:
			log.Info().Msg("forcing sync")
			syncAll()
		}
	}
}
