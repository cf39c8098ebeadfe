package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/emelinabraham-cmd/homeease-api/internal/config"
	"github.com/emelinabraham-cmd/homeease-api/internal/database"
	"github.com/emelinabraham-cmd/homeease-api/internal/handler"
	"github.com/emelinabraham-cmd/homeease-api/internal/logger"
	"github.com/emelinabraham-cmd/homeease-api/internal/middleware"
	"github.com/emelinabraham-cmd/homeease-api/internal/repository"
	"github.com/emelinabraham-cmd/homeease-api/internal/router"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.New(cfg, loggerService)

	// The Clerk SDK verifies bearer tokens with a process-wide key.
	clerk.SetKey(cfg.Auth.SecretKey)

	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	middlewares := middleware.NewMiddlewares(srv, repos.Profiles)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.New(srv, middlewares, handlers))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	loggerService.Shutdown(shutdownTimeout)

	log.Info().Msg("server stopped")
}
