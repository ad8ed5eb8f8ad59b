package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"freightline/backend/internal/models"
	"freightline/backend/internal/schema"
	"freightline/backend/internal/services"
)

// RestShipmentHandler handles REST requests for creating and tracking
// shipments.
type RestShipmentHandler struct {
	shipmentService services.IShipmentService
}

// NewRestShipmentHandler creates a new RestShipmentHandler.
func NewRestShipmentHandler(shipmentService services.IShipmentService) *RestShipmentHandler {
	return &RestShipmentHandler{shipmentService: shipmentService}
}

// CreateShipment handles POST /api/shipments.
func (h *RestShipmentHandler) CreateShipment(c *gin.Context) {
	var payload models.NewShipment
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondUnprocessable(c, err)
		return
	}

	if err := schema.Validate(payload.Rules()); err != nil {
		respondUnprocessable(c, err)
		return
	}

	id, err := h.shipmentService.CreateShipment(c.Request.Context(), &payload)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// TrackShipment handles GET /api/track/:tracking_number. A missing shipment
// is a distinct not-found outcome, never folded into the generic 500 path.
func (h *RestShipmentHandler) TrackShipment(c *gin.Context) {
	trackingNumber := c.Param("tracking_number")

	doc, err := h.shipmentService.TrackShipment(c.Request.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, services.ErrShipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Tracking number not found"})
			return
		}
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "shipment": doc})
}
