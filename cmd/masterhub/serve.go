package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawfully-illegal/masterhub/internal/config"
	"github.com/lawfully-illegal/masterhub/internal/handler"
	"github.com/lawfully-illegal/masterhub/internal/logger"
	"github.com/lawfully-illegal/masterhub/internal/repository"
	"github.com/lawfully-illegal/masterhub/internal/router"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService, nrErr := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLogger(cfg.Observability, loggerService)
	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("New Relic disabled")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return err
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reference data")
		return err
	}

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("failed to create services")
		return err
	}

	handlers, err := handler.NewHandlers(srv, services)
	if err != nil {
		log.Error().Err(err).Msg("failed to create handlers")
		return err
	}

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error().Err(err).Msg("server stopped")
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
