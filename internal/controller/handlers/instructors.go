package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateInstructor registers a new instructor.
func (h *Handler) CreateInstructor(c *gin.Context) {
	var req createInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instructor, err := h.instructors.CreateInstructor(
		c.Request.Context(),
		req.FirstName, req.LastName, req.BirthDate,
		req.YearsOfExperience, req.QualificationLevel,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInstructorView(instructor))
}

// ListInstructors returns every instructor with their current average rating.
func (h *Handler) ListInstructors(c *gin.Context) {
	instructors, err := h.instructors.GetAllInstructors(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]instructorView, 0, len(instructors))
	for _, instructor := range instructors {
		views = append(views, toInstructorView(instructor))
	}

	c.JSON(http.StatusOK, views)
}

// GetInstructor returns one instructor.
func (h *Handler) GetInstructor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	instructor, err := h.instructors.GetInstructorByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInstructorView(instructor))
}
