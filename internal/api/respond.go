package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithUnexpected handles errors no handler maps explicitly.
func abortWithUnexpected(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is reading the response.
		c.Abort()
	case errors.Is(err, context.DeadlineExceeded):
		abortWithError(c, http.StatusGatewayTimeout, "Request timed out while trying to "+action)
	default:
		log.Printf("ERROR: failed to %s: %v", action, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to "+action)
	}
}
