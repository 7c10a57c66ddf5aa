package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmehdipour/jobs-api/internal/access"
	"github.com/jmehdipour/jobs-api/internal/config"
	httpSrv "github.com/jmehdipour/jobs-api/internal/http"
	"github.com/jmehdipour/jobs-api/internal/logger"
	"github.com/jmehdipour/jobs-api/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Init(cfg.Log.Level)
		defer func() { _ = logger.Log.Sync() }()

		jobsRepo := repository.NewMemoryJobsRepository()
		if err := repository.SeedJobs(cmd.Context(), jobsRepo, cfg.Seed.Jobs); err != nil {
			return fmt.Errorf("seed jobs: %w", err)
		}

		server := httpSrv.NewServer(jobsRepo, access.NewDefaultGate(), logger.Log)

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("starting http", zap.String("addr", cfg.HTTP.Addr), zap.Int("seed_jobs", len(cfg.Seed.Jobs)))
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Log.Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("http server exited", zap.Error(err))
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), httpSrv.ShutdownTimeout(cfg.HTTP.ShutdownTimeout))
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}
