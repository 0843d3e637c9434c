package model

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeRole string

const (
	RoleInstructor   EmployeeRole = "instructor"
	RoleRescueWorker EmployeeRole = "rescue_worker"
	RoleRentalClerk  EmployeeRole = "rental_clerk"
)

// Employee is a flat staff record keyed by Role instead of a subtype
// hierarchy. The role-specific fields are meaningful only for the matching
// role and zero-valued otherwise.
type Employee struct {
	ID                uuid.UUID    `json:"id"`
	Role              EmployeeRole `json:"role"`
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	BirthDate         time.Time    `json:"birth_date"`
	YearsOfExperience int          `json:"years_of_experience"`

	AverageRating  float64  `json:"average_rating,omitempty"`  // instructors
	RentalsHandled int      `json:"rentals_handled,omitempty"` // rental clerks
	Qualifications []string `json:"qualifications,omitempty"`  // rescue workers
	CreatedAt      time.Time `json:"created_at"`
}

// Salary computes the monthly salary for the employee's role.
func (e *Employee) Salary() float64 {
	switch e.Role {
	case RoleInstructor:
		return 3000.0 + float64(e.YearsOfExperience)*150.0 + (e.AverageRating-3)*200.0
	case RoleRentalClerk:
		return 2800.0 + float64(e.RentalsHandled)*10.0
	case RoleRescueWorker:
		return 3200.0 + float64(len(e.Qualifications))*250.0
	default:
		return 0
	}
}

// FullName returns "First Last".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
