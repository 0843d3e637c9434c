package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InstructorService manages the instructor registry.
type InstructorService struct {
	instructors InstructorStore
	logger      *zap.Logger
}

func NewInstructorService(instructors InstructorStore, logger *zap.Logger) *InstructorService {
	return &InstructorService{instructors: instructors, logger: logger}
}

// CreateInstructor registers a new instructor with an empty rating list.
func (s *InstructorService) CreateInstructor(ctx context.Context, firstName, lastName string, birthDate time.Time, yearsOfExperience int, qualificationLevel string) (*model.Instructor, error) {
	instructor := &model.Instructor{
		ID:                 uuid.New(),
		FirstName:          firstName,
		LastName:           lastName,
		BirthDate:          birthDate,
		YearsOfExperience:  yearsOfExperience,
		QualificationLevel: qualificationLevel,
	}

	if err := s.instructors.Create(ctx, instructor); err != nil {
		return nil, fmt.Errorf("create instructor: %w", err)
	}

	s.logger.Info("Instructor registered",
		zap.String("instructor_id", instructor.ID.String()),
		zap.String("name", instructor.FullName()),
		zap.String("qualification", qualificationLevel),
	)

	return instructor, nil
}

// GetInstructorByID returns the instructor or ErrInstructorNotFound.
func (s *InstructorService) GetInstructorByID(ctx context.Context, id uuid.UUID) (*model.Instructor, error) {
	instructor, err := s.instructors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	if instructor == nil {
		return nil, ErrInstructorNotFound
	}
	return instructor, nil
}

// GetAllInstructors returns every registered instructor.
func (s *InstructorService) GetAllInstructors(ctx context.Context) ([]*model.Instructor, error) {
	return s.instructors.GetAll(ctx)
}
