package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freightline/backend/internal/api/handlers"
	"freightline/backend/internal/api/middleware"
	"freightline/backend/internal/config"
	"freightline/backend/internal/services"
)

// SetupRouter configures and returns the main Gin engine. rdb may be nil when
// no cache is configured; only the status endpoint uses it.
func SetupRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	quoteService := services.NewQuoteService(db)
	shipmentService := services.NewShipmentService(db)

	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middleware.NewRateLimiterMiddleware(cfg.RateLimitRefillRate, cfg.RateLimitBucketSize, logger)

	// Apply global middleware first (order matters)
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CorsAllowOrigin))
	r.Use(rateLimiter.Limit())

	quoteHandler := handlers.NewRestQuoteHandler(quoteService)
	shipmentHandler := handlers.NewRestShipmentHandler(shipmentService)
	statusHandler := handlers.NewRestStatusHandler(db, rdb)

	r.GET("/", statusHandler.Root)
	r.GET("/test", statusHandler.Status)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/hello", statusHandler.Hello)
		apiGroup.POST("/quote", quoteHandler.SubmitQuote)
		apiGroup.POST("/shipments", shipmentHandler.CreateShipment)
		apiGroup.GET("/track/:tracking_number", shipmentHandler.TrackShipment)
	}

	return r
}
