package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const clientIDKey = "clientID"

// Auth checks the Bearer token and stores the authenticated client id in the
// request context for the handlers downstream.
func (h *Handler) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		clientID, err := h.clients.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(clientIDKey, clientID)
		c.Next()
	}
}

// currentClientID returns the client id stored by Auth.
func currentClientID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet(clientIDKey).(uuid.UUID)
	return id
}
