package main

import (
	"context"

	"deskcalc/internal/config"
	"deskcalc/internal/observability"
	"deskcalc/internal/session"
)

// initTelemetry sets up OTLP tracing, log export and metrics when enabled,
// then the application metric instruments. The returned function flushes
// and stops every exporter that was started.
func initTelemetry(ctx context.Context, cfg config.OTelConfig) (func(context.Context), error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) {
		for i := len(shutdowns) - 1; i >= 0; i-- {
			_ = shutdowns[i](ctx)
		}
	}

	if cfg.Enabled {
		serviceName := observability.ServiceName(cfg.ServiceName)

		for _, start := range []func(context.Context, string) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitLogging,
			observability.InitMetrics,
		} {
			stop, err := start(ctx, serviceName)
			if err != nil {
				shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, stop)
		}
	}

	if err := session.InitMetrics(); err != nil {
		shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
