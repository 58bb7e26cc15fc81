// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"weather-relay/internal/common/config"
	"weather-relay/internal/common/logger"
	"weather-relay/internal/common/observability"
	"weather-relay/internal/common/openweather"
	"weather-relay/internal/handlers/health"
	weatherlookup "weather-relay/internal/handlers/weather-lookup"
	"weather-relay/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting weather relay...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	if cfg.Weather.APIKey == "" {
		zapLog.Warn("no provider API key configured; lookups will fail until OPENWEATHER_API_KEY is set")
	}

	obs := observability.New("weather-relay")
	defer obs.Shutdown()

	provider := openweather.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		cfg.Weather.Units,
		cfg.Weather.TimeoutDuration(),
		log,
	)

	lookupCfg := weatherlookup.LoadConfig()
	lookupCfg.APIKey = cfg.Weather.APIKey

	lookup := weatherlookup.NewHandler(lookupCfg, provider, obs, log)
	srv := server.New(cfg.Server, lookup, log)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeoutDuration(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		zapLog.Info("listening",
			zap.String("addr", httpServer.Addr),
			zap.String("lookupRoute", weatherlookup.Route),
			zap.String("healthRoute", health.Route),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	<-stop
	zapLog.Info("shutdown signal received, draining connections...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}

	zapLog.Info("shutdown complete")
}
