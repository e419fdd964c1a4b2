package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
)

// respondError converts a domain error to the API envelope. Validation maps
// to 400, not-found to 404, conflict to 409; anything else is logged and
// returned as a generic 500 so internals never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		log.Printf("api: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}
