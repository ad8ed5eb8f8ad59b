package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RestStatusHandler serves the greeting and service-status endpoints.
type RestStatusHandler struct {
	db  *mongo.Database
	rdb *redis.Client // nil when no cache is configured
}

// NewRestStatusHandler creates a new RestStatusHandler.
func NewRestStatusHandler(db *mongo.Database, rdb *redis.Client) *RestStatusHandler {
	return &RestStatusHandler{db: db, rdb: rdb}
}

// Root handles GET /.
func (h *RestStatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Freightline Backend!"})
}

// Hello handles GET /api/hello.
func (h *RestStatusHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// Status handles GET /test: reports database and cache connectivity plus up
// to ten collection names. Always responds 200 so the report itself stays
// reachable when a collaborator is down.
func (h *RestStatusHandler) Status(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_name":     "",
		"connection_status": "not connected",
		"collections":       []string{},
		"cache":             "not configured",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.db != nil {
		resp["database_name"] = h.db.Name()
		names, err := h.db.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			resp["database"] = "error: " + truncateDetail(err)
		} else {
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
		}
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			resp["cache"] = "error: " + truncateDetail(err)
		} else {
			resp["cache"] = "connected"
		}
	}

	c.JSON(http.StatusOK, resp)
}
