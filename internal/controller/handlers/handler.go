package handlers

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler carries the services behind the HTTP surface. Each route method
// lives in the file named after its resource.
type Handler struct {
	lessons     *service.LessonService
	ratings     *service.RatingService
	instructors *service.InstructorService
	clients     *service.ClientService
	rentals     *service.RentalService
	employees   *service.EmployeeService
	logger      *zap.Logger
}

func New(
	lessons *service.LessonService,
	ratings *service.RatingService,
	instructors *service.InstructorService,
	clients *service.ClientService,
	rentals *service.RentalService,
	employees *service.EmployeeService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		lessons:     lessons,
		ratings:     ratings,
		instructors: instructors,
		clients:     clients,
		rentals:     rentals,
		employees:   employees,
		logger:      logger,
	}
}

// respondError maps service and domain errors onto HTTP statuses:
// validation failures are 400, missing entities 404, rule violations 409.
// Anything unrecognized is a logged 500 with a generic body.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrInvalidCapacity),
		errors.Is(err, model.ErrInvalidRating):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrInstructorNotFound),
		errors.Is(err, service.ErrEquipmentNotFound),
		errors.Is(err, service.ErrRentalNotFound),
		errors.Is(err, service.ErrClerkNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidStateTransition),
		errors.Is(err, model.ErrLessonNotPlanned),
		errors.Is(err, model.ErrLessonFull),
		errors.Is(err, model.ErrEquipmentInUse),
		errors.Is(err, model.ErrRentalNotActive),
		errors.Is(err, service.ErrLessonNotFinished),
		errors.Is(err, service.ErrNotAParticipant),
		errors.Is(err, service.ErrAlreadyRated):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses the named path parameter as a UUID; on failure it writes
// a 400 and reports ok=false.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
