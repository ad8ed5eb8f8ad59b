package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"freightline/backend/internal/schema"
)

// maxErrorDetailLen caps the error text exposed to callers so persistence
// internals never leak beyond a short string.
const maxErrorDetailLen = 120

func truncateDetail(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorDetailLen {
		return msg[:maxErrorDetailLen]
	}
	return msg
}

// respondUnprocessable writes the 422 response for invalid input: a list of
// field violations for validation failures, a plain string otherwise.
func respondUnprocessable(c *gin.Context, err error) {
	var verr *schema.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verr.Violations})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid JSON body"})
}

// respondServerError writes the generic 500 response and records the cause
// for the request logger.
func respondServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": truncateDetail(err)})
}
