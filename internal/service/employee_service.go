package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService exposes the staff roster. Instructors live in their own
// registry, so roster reads merge them in as employees with the instructor
// role and their current average rating (their salary depends on it).
type EmployeeService struct {
	employees   EmployeeStore
	instructors InstructorStore
	logger      *zap.Logger
}

func NewEmployeeService(employees EmployeeStore, instructors InstructorStore, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employees:   employees,
		instructors: instructors,
		logger:      logger,
	}
}

// RegisterEmployee adds a rental clerk or rescue worker to the roster.
func (s *EmployeeService) RegisterEmployee(ctx context.Context, employee *model.Employee) error {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	s.logger.Info("Employee registered",
		zap.String("employee_id", employee.ID.String()),
		zap.String("role", string(employee.Role)),
		zap.String("name", employee.FullName()),
	)

	return nil
}

// GetAllStaff returns the full roster, instructors included, sorted by name.
func (s *EmployeeService) GetAllStaff(ctx context.Context) ([]*model.Employee, error) {
	staff, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}

	instructors, err := s.instructors.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get instructors: %w", err)
	}

	for _, instructor := range instructors {
		staff = append(staff, &model.Employee{
			ID:                instructor.ID,
			Role:              model.RoleInstructor,
			FirstName:         instructor.FirstName,
			LastName:          instructor.LastName,
			BirthDate:         instructor.BirthDate,
			YearsOfExperience: instructor.YearsOfExperience,
			AverageRating:     instructor.AverageRating(),
			CreatedAt:         instructor.CreatedAt,
		})
	}

	sort.Slice(staff, func(i, j int) bool {
		if staff[i].LastName != staff[j].LastName {
			return staff[i].LastName < staff[j].LastName
		}
		return staff[i].FirstName < staff[j].FirstName
	})

	return staff, nil
}

// GetRentalClerks returns the clerks able to process rentals.
func (s *EmployeeService) GetRentalClerks(ctx context.Context) ([]*model.Employee, error) {
	return s.employees.GetByRole(ctx, model.RoleRentalClerk)
}
