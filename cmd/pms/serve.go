package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/project-manager/internal/database"
	"github.com/deppfellow/project-manager/internal/handler"
	"github.com/deppfellow/project-manager/internal/repository"
	"github.com/deppfellow/project-manager/internal/router"
	"github.com/deppfellow/project-manager/internal/server"
	"github.com/deppfellow/project-manager/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the notification worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending database migrations before serving")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	if migrate {
		if err := database.Migrate(ctx, &a.log, a.cfg); err != nil {
			a.log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(a.cfg, &a.log, a.loggerService)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		a.log.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, services)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serveUntilDone(ctx, srv, &a.log)
}

// httpServer is the part of *server.Server that serveUntilDone drives.
type httpServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// serveUntilDone runs srv until ctx is cancelled or Start fails, then shuts
// it down. A Start failure is returned even when shutdown succeeds.
func serveUntilDone(ctx context.Context, srv httpServer, log *zerolog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-serveErr:
		if startErr != nil {
			log.Error().Err(startErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return errors.Join(startErr, err)
	}

	if startErr != nil {
		return startErr
	}

	log.Info().Msg("server exited properly")
	return nil
}
