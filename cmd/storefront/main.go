package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/origintiles/storefront/cmd/storefront/config"
	"github.com/origintiles/storefront/internal/api"
	"github.com/origintiles/storefront/internal/catalogdata"
	"github.com/origintiles/storefront/internal/chat"
	"github.com/origintiles/storefront/internal/compare"
	"github.com/origintiles/storefront/internal/favorites"
	"github.com/origintiles/storefront/internal/platform/keyvalue"
	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/origintiles/storefront/internal/recent"
	"github.com/origintiles/storefront/internal/responder"
	"github.com/origintiles/storefront/internal/securestorage"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	store, err := keyvalue.OpenBolt(cfg.DataPath)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("path", cfg.DataPath).
			Msg("can't open storage file")
	}

	data, err := catalogdata.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load catalog data")
	}

	storage := securestorage.New(store, &logger)

	session := chat.NewSession(
		storage,
		responder.New(),
		&logger,
		chat.WithNotify(func(message models.ChatMessage) {
			logger.Info().
				Str("messageId", message.ID).
				Msg("new chat message while window is hidden")
		}),
	)

	handlers := api.New(
		&logger,
		data,
		compare.NewManager(storage, &logger),
		favorites.NewManager(storage, &logger),
		recent.NewTracker(storage),
		session,
	)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handlers.Router(),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("can't serve HTTP: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		logger.Info().Msg("graceful shutdown start")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("can't shut down HTTP server: %w", err)
		}
		return nil
	})

	logger.Info().
		Str("addr", cfg.Addr).
		Msg("storefront up and running")

	if err := group.Wait(); err != nil {
		logger.Error().
			Err(err).
			Msg("shutdown with error")
	}

	session.Shutdown()

	if err := store.Close(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't close storage file")
	}

	logger.Info().Msg("graceful shutdown successful")
}
