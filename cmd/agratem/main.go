package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	_ "github.com/lib/pq"

	"agratem/internal/cache"
	"agratem/internal/config"
	"agratem/internal/exchange"
	"agratem/internal/pricing"
	"agratem/internal/server"
	"agratem/internal/storage"
	"agratem/pkg/logger"
	"agratem/pkg/redis"
)

// ENTRY POINT

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	redisClient := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	pgStorage, err := storage.NewPostgresStorage(context.Background(), cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init PostgreSQL storage", zap.Error(err))
	}
	defer pgStorage.Close()

	if err := storage.RunMigrations(context.Background(), pgStorage.DB().DB, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	tableCache := cache.New(redisClient, cfg.PriceCacheTTL, zapLogger)
	pricingSvc := pricing.NewService(pgStorage, tableCache, zapLogger)
	exch := exchange.New(pgStorage, pricingSvc, tableCache, zapLogger)

	srv := server.New(pricingSvc, exch, zapLogger)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
	if err := srv.Listen(cfg.HTTPAddr); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}

	zapLogger.Info("Server shutdown gracefully")
}
