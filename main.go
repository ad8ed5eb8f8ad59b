package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"freightline/backend/internal/api"
	"freightline/backend/internal/cache"
	"freightline/backend/internal/config"
	"freightline/backend/internal/db"
	"freightline/backend/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	mongoClient, mongoDb, err := db.Connect(cfg.MongoURI, cfg.MongoDbName)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Disconnect(mongoClient); err != nil {
			logger.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDbName))

	// Initialize Cache (Redis) if configured. The API runs without it; only
	// the status endpoint reports on the cache connection.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		redisClient = rdb
		defer func() {
			if err := cache.DisconnectRedis(redisClient); err != nil {
				logger.Error("Error disconnecting from Redis", zap.Error(err))
			}
		}()
		logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
	}

	router := api.SetupRouter(cfg, mongoDb, redisClient, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: router,
	}

	go func() {
		logger.Info("API listening", zap.String("port", cfg.ApiPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("API ListenAndServe error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Received signal, shutting down gracefully", zap.String("signal", sig.String()))

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
