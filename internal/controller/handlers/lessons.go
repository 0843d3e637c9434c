package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateLesson schedules a lesson for an instructor.
func (h *Handler) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.lessons.CreateLesson(
		c.Request.Context(),
		req.DateTime,
		time.Duration(req.DurationMinutes)*time.Minute,
		req.InstructorID,
		req.Capacity,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

// GetLesson returns a single lesson with its enrollment list.
func (h *Handler) GetLesson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	lesson, err := h.lessons.GetLessonByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// AvailableLessons lists the planned lessons the current client can join.
func (h *Handler) AvailableLessons(c *gin.Context) {
	ctx := c.Request.Context()

	lessons, err := h.lessons.GetPlannedLessonsWithoutClient(ctx, currentClientID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	tiles, err := h.toLessonTiles(ctx, lessons)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tiles)
}

// EnrolledLessons lists the current client's planned lessons.
func (h *Handler) EnrolledLessons(c *gin.Context) {
	h.lessonsByStatus(c, model.LessonStatusPlanned)
}

// FinishedLessons lists the current client's finished lessons, the ones
// eligible for rating.
func (h *Handler) FinishedLessons(c *gin.Context) {
	h.lessonsByStatus(c, model.LessonStatusFinished)
}

func (h *Handler) lessonsByStatus(c *gin.Context, status model.LessonStatus) {
	ctx := c.Request.Context()

	lessons, err := h.lessons.GetLessonsForClientByStatus(ctx, currentClientID(c), status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tiles, err := h.toLessonTiles(ctx, lessons)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tiles)
}

// Enroll adds the current client to a lesson.
func (h *Handler) Enroll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.lessons.EnrollClient(c.Request.Context(), id, currentClientID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "enrolled"})
}

// Unenroll removes the current client from a lesson.
func (h *Handler) Unenroll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.lessons.UnenrollClient(c.Request.Context(), id, currentClientID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unenrolled"})
}

// StartLesson moves a lesson to in progress.
func (h *Handler) StartLesson(c *gin.Context) {
	h.transition(c, h.lessons.StartLesson)
}

// FinishLesson moves a lesson to finished.
func (h *Handler) FinishLesson(c *gin.Context) {
	h.transition(c, h.lessons.FinishLesson)
}

// CancelLesson cancels a lesson.
func (h *Handler) CancelLesson(c *gin.Context) {
	h.transition(c, h.lessons.CancelLesson)
}

func (h *Handler) transition(c *gin.Context, step func(ctx context.Context, id uuid.UUID) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := step(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	lesson, err := h.lessons.GetLessonByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// SetCapacity changes a lesson's capacity.
func (h *Handler) SetCapacity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req capacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.lessons.SetLessonCapacity(c.Request.Context(), id, req.Capacity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated", "capacity": req.Capacity})
}

// LessonClients lists the clients enrolled in a lesson.
func (h *Handler) LessonClients(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	clients, err := h.lessons.GetLessonClients(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// RateLesson records the current client's rating for a finished lesson.
func (h *Handler) RateLesson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.ratings.RateInstructor(c.Request.Context(), id, currentClientID(c), req.Rating)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
