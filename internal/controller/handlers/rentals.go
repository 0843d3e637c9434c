package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddEquipment adds an item to the rental catalog.
func (h *Handler) AddEquipment(c *gin.Context) {
	var req addEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := h.rentals.AddEquipment(c.Request.Context(), req.Name, req.Size, req.Cost)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// ListEquipment returns the full catalog with busy flags.
func (h *Handler) ListEquipment(c *gin.Context) {
	equipment, err := h.rentals.GetAllEquipment(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// Rent checks out an equipment item to the current client.
func (h *Handler) Rent(c *gin.Context) {
	var req rentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rental, err := h.rentals.RentEquipment(
		c.Request.Context(),
		currentClientID(c), req.EquipmentID, req.PlannedReturnAt, req.ClerkID,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rental)
}

// ReturnRental closes an active rental.
func (h *Handler) ReturnRental(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.rentals.ReturnEquipment(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "returned"})
}

// ActiveRentals lists the current client's open rentals.
func (h *Handler) ActiveRentals(c *gin.Context) {
	rentals, err := h.rentals.GetActiveRentalsForClient(c.Request.Context(), currentClientID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rentals)
}
