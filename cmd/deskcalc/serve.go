package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deskcalc/internal/observability"
	"deskcalc/internal/server"
	"deskcalc/internal/session"
)

func newServeCmd(flags *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP session service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			// Logger
			if err := observability.InitLogger(cfg.Log.Level, cfg.Log.Development); err != nil {
				return err
			}
			defer observability.SyncLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Tracing, log export and metrics
			telemetryShutdown, err := initTelemetry(ctx, cfg.OTel)
			if err != nil {
				return fmt.Errorf("init telemetry: %w", err)
			}
			defer telemetryShutdown(context.Background())

			// Router
			store := session.NewStore(session.Options{
				Precision:    cfg.Calculator.Precision,
				DisplayItems: cfg.Display.MaxItems,
				HistorySize:  cfg.Sessions.History,
			}, cfg.Sessions.Max, observability.Logger)

			srv := &http.Server{
				Addr:    cfg.HTTP.Addr,
				Handler: server.NewRouter(store),
			}

			serverErrors := make(chan error, 1)
			go func() {
				observability.Logger.Info("server started",
					zap.String("addr", srv.Addr),
					zap.Int("precision", cfg.Calculator.Precision),
					zap.Bool("otel", cfg.OTel.Enabled),
				)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
			}

			return shutdownServer(srv, cfg.HTTP.ShutdownTimeout)
		},
	}
}

func shutdownServer(srv *http.Server, timeout time.Duration) error {
	observability.Logger.Info("shutting down", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Warn("graceful shutdown did not complete", zap.Error(err))
		return srv.Close()
	}
	return nil
}
