package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Gualguanosky/afterwod/internal/config"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/router"
	"github.com/Gualguanosky/afterwod/internal/store"
	"github.com/Gualguanosky/afterwod/internal/store/gormstore"
	"github.com/Gualguanosky/afterwod/internal/store/redisstore"
)

func main() {
	// Structured logger: pretty in dev, JSON in prod
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	st, err := abrirStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open snapshot store")
	}

	led, err := hidratar(st)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger state")
	}

	r := router.New(cfg, led, st)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("afterwod listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// Final snapshot, best-effort like every other save.
	if err := st.Save(shutdownCtx, led.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("final snapshot failed")
	}
	log.Info().Msg("server exited")
}

func abrirStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "redis":
		return redisstore.New(cfg.RedisURL)
	case "sqlite":
		return gormstore.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.StoreDriver)
	}
}

// hidratar loads the last snapshot, seeding the fixed starter dataset on
// first run.
func hidratar(st store.Store) (*ledger.Ledger, error) {
	estado, err := st.Load(context.Background())
	switch {
	case errors.Is(err, store.ErrSinEstado):
		log.Info().Msg("sin estado guardado, usando datos semilla")
		led := ledger.NewFromState(store.Seed())
		if err := st.Save(context.Background(), led.Snapshot()); err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar la semilla")
		}
		return led, nil
	case err != nil:
		return nil, err
	default:
		return ledger.NewFromState(*estado), nil
	}
}
