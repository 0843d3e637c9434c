package handlers

import (
	"net/http"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/gin-gonic/gin"
)

// RegisterEmployee adds a rental clerk or rescue worker to the roster.
func (h *Handler) RegisterEmployee(c *gin.Context) {
	var req registerEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != model.RoleRentalClerk && req.Role != model.RoleRescueWorker {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	employee := &model.Employee{
		Role:              req.Role,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		BirthDate:         req.BirthDate,
		YearsOfExperience: req.YearsOfExperience,
		Qualifications:    req.Qualifications,
	}

	if err := h.employees.RegisterEmployee(c.Request.Context(), employee); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ListStaff returns the whole roster, instructors included, with salaries.
func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.employees.GetAllStaff(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]employeeView, 0, len(staff))
	for _, employee := range staff {
		views = append(views, toEmployeeView(employee))
	}

	c.JSON(http.StatusOK, views)
}

// ListClerks returns the rental clerks able to process checkouts.
func (h *Handler) ListClerks(c *gin.Context) {
	clerks, err := h.employees.GetRentalClerks(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clerks)
}
