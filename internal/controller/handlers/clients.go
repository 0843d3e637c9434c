package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register creates a client account and returns it with a fresh token.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, token, err := h.clients.Register(
		c.Request.Context(),
		req.FirstName, req.LastName, req.BirthDate, req.Experience, req.Password,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "client": client})
}

// Login authenticates with "first.last" plus password.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.clients.Authenticate(c.Request.Context(), req.FullName, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated client's own profile.
func (h *Handler) Me(c *gin.Context) {
	client, err := h.clients.GetClientByID(c.Request.Context(), currentClientID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client, "age": client.Age()})
}
