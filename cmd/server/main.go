// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"payment-intent-parser/internal/cache"
	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/logger"
	"payment-intent-parser/internal/common/observability"
	"payment-intent-parser/internal/llm"
	"payment-intent-parser/internal/parser"
	"payment-intent-parser/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrapLog := logger.New("info", "console")
		bootstrapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting intent parser server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	var parserOpts []parser.Option
	if cfg.LLM.Enabled {
		enhancer := llm.NewEnhancer(cfg.LLM, log)
		if enhancer.Available() {
			parserOpts = append(parserOpts, parser.WithEnhancer(enhancer))
			zapLog.Info("LLM enhancement enabled", zap.String("provider", cfg.LLM.Provider))
		} else {
			zapLog.Warn("LLM enhancement enabled but no provider is configured")
		}
	}

	svc := parser.NewService(log, parserOpts...)

	var serverOpts []server.Option
	if cfg.Cache.Enabled {
		parseCache := cache.New(cfg.Cache)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := parseCache.Ping(ctx)
		cancel()
		if err != nil {
			zapLog.Warn("redis unreachable, running without parse cache", zap.Error(err))
		} else {
			defer parseCache.Close()
			serverOpts = append(serverOpts, server.WithCache(parseCache))
			zapLog.Info("parse cache enabled", zap.String("address", cfg.Cache.Address))
		}
	}

	srv := server.New(cfg.Server.Addr(), cfg.App.Version, svc, log, serverOpts...)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zapLog.Fatal("http server failed", zap.Error(err))
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
