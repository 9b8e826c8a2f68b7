package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fxba/config"
	httpLayer "fxba/http"
	"fxba/repository"
	"fxba/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the worksheet HTTP API.

Routes:
  POST /tvm/solve  /tvm/amortization  /cashflow/analyze  /bond/calculate
  POST /depreciation/schedule  /statistics/analyze  /profit/breakeven  /date/days
  GET  /history  /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// newCache uses Redis when REDIS_ADDR is set and reachable, otherwise an
// in-process cache.
func newCache(cfg *config.Config, logger *logrus.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheTTL.Duration)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, using in-memory cache")
		redisCache.Close()
		return repository.NewMemoryCache(cfg.CacheTTL.Duration)
	}
	logger.WithField("addr", cfg.RedisAddr).Info("using redis cache")
	return redisCache
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)

	historyRepo := repository.NewHistoryRepositoryMemory(cfg.HistoryLimit)
	cache := newCache(cfg, logger)

	worksheetService := service.NewWorksheetService(historyRepo, cache, logger)
	worksheetHandler := httpLayer.NewWorksheetHandler(worksheetService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow.Duration)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(worksheetHandler, rateLimiter, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", server.Addr).Info("API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("error starting server")
		return err
	case <-quit:
		logger.Info("shutting down server")
	case <-cmd.Context().Done():
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("error during server shutdown")
		return err
	}

	logger.Info("server exited")
	return nil
}
