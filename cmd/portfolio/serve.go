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
	"go.uber.org/zap"

	"bavatarinee.dev/internal/handlers"
	"bavatarinee.dev/internal/services"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio HTTP server",
	Long: `Starts the particle field, syncs the project grid from GitHub once in
the background and serves the page and its API. A sync can be re-run with
POST /api/projects/sync.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	projectService, err := newProjectService(logger)
	if err != nil {
		return err
	}

	fieldService := services.NewFieldService(fieldOptions(), logger)
	fieldService.Start(ctx)
	defer fieldService.Stop()

	go func() {
		// Failures are already logged and rendered as the degraded grid.
		_, _ = projectService.Sync(ctx)
	}()

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, projectService, fieldService, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", cfg.ServerAddr),
			zap.String("account", cfg.GitHub.Account))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
