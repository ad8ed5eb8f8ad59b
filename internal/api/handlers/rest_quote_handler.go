package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightline/backend/internal/models"
	"freightline/backend/internal/schema"
	"freightline/backend/internal/services"
)

// RestQuoteHandler handles REST requests for freight quote enquiries.
type RestQuoteHandler struct {
	quoteService services.IQuoteService
}

// NewRestQuoteHandler creates a new RestQuoteHandler.
func NewRestQuoteHandler(quoteService services.IQuoteService) *RestQuoteHandler {
	return &RestQuoteHandler{quoteService: quoteService}
}

// SubmitQuote handles POST /api/quote. The body is validated before any
// persistence call; validation failures carry per-field detail.
func (h *RestQuoteHandler) SubmitQuote(c *gin.Context) {
	var quote models.QuoteRequest
	if err := c.ShouldBindJSON(&quote); err != nil {
		respondUnprocessable(c, err)
		return
	}

	if err := schema.Validate(quote.Rules()); err != nil {
		respondUnprocessable(c, err)
		return
	}

	id, err := h.quoteService.SubmitQuote(c.Request.Context(), &quote)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}
