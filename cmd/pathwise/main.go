package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/cache"
	"github.com/cloud-ru/pathwise-go/internal/config"
	"github.com/cloud-ru/pathwise-go/internal/logger"
	"github.com/cloud-ru/pathwise-go/internal/tools"
	"github.com/cloud-ru/pathwise-go/internal/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	ctx := context.Background()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		log.Fatalf("failed to init tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Errorf("tracing shutdown: %v", err)
		}
	}()

	c, closeStore := newCache(ctx, cfg)
	defer closeStore()
	if cfg.CacheEnabled {
		c.SetEnabled(ctx, true)
	}

	registry := tools.NewRegistry(cfg, tracer, c)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newHandler(registry),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("pathwise listening on %s (%d tools)", server.Addr, len(registry))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("server error: %v", err)
		return
	case <-quit:
		logger.Infof("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("error during server shutdown: %v", err)
	}

	logger.Infof("server exited")
}

// newCache выбирает хранилище: Redis при заданном REDIS_ADDR и доступном сервере,
// иначе память процесса
func newCache(ctx context.Context, cfg *config.Config) (*cache.Cache, func()) {
	if cfg.RedisAddr == "" {
		return cache.New(cache.NewMemoryStore()), func() {}
	}

	store := cache.NewRedisStore(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		logger.Warnf("redis at %s unavailable, using in-memory cache: %v", cfg.RedisAddr, err)
		_ = store.Close()
		return cache.New(cache.NewMemoryStore()), func() {}
	}

	logger.Infof("cache: redis at %s", cfg.RedisAddr)
	return cache.New(store), func() {
		if err := store.Close(); err != nil {
			logger.Errorf("redis close: %v", err)
		}
	}
}
