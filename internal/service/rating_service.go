package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RatingStore persists lesson ratings. Create must store the rating record
// and append the value to the instructor's ratings atomically.
type RatingStore interface {
	Exists(ctx context.Context, lessonID, clientID uuid.UUID) (bool, error)
	Create(ctx context.Context, rating *model.LessonRating) error
}

// RatingService lets a client rate the instructor of a finished lesson they
// attended, at most once per lesson.
type RatingService struct {
	lessons     LessonStore
	clients     ClientStore
	instructors InstructorStore
	ratings     RatingStore
	locks       *LessonLocks
	logger      *zap.Logger
}

func NewRatingService(
	lessons LessonStore,
	clients ClientStore,
	instructors InstructorStore,
	ratings RatingStore,
	locks *LessonLocks,
	logger *zap.Logger,
) *RatingService {
	return &RatingService{
		lessons:     lessons,
		clients:     clients,
		instructors: instructors,
		ratings:     ratings,
		locks:       locks,
		logger:      logger,
	}
}

// RateInstructor validates and records one client's rating of the lesson's
// instructor. The checks run in a fixed order so the caller always gets the
// same failure for the same situation; the uniqueness check and the insert
// run under the lesson lock to keep duplicate concurrent ratings out.
func (s *RatingService) RateInstructor(ctx context.Context, lessonID, clientID uuid.UUID, rating int) (*model.LessonRating, error) {
	if rating < 1 || rating > 5 {
		return nil, model.ErrInvalidRating
	}

	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if lesson.Status != model.LessonStatusFinished {
		return nil, ErrLessonNotFinished
	}
	if !lesson.IsEnrolled(clientID) {
		return nil, ErrNotAParticipant
	}

	mu := s.locks.Lock(lessonID)
	defer mu.Unlock()

	rated, err := s.ratings.Exists(ctx, lessonID, clientID)
	if err != nil {
		return nil, fmt.Errorf("check existing rating: %w", err)
	}
	if rated {
		return nil, ErrAlreadyRated
	}

	exists, err := s.instructors.Exists(ctx, lesson.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("check instructor: %w", err)
	}
	if !exists {
		return nil, ErrInstructorNotFound
	}

	record, err := model.NewLessonRating(lessonID, clientID, lesson.InstructorID, rating)
	if err != nil {
		return nil, err
	}

	if err := s.ratings.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store rating: %w", err)
	}

	s.logger.Info("Instructor rated",
		zap.String("lesson_id", lessonID.String()),
		zap.String("client_id", clientID.String()),
		zap.String("instructor_id", lesson.InstructorID.String()),
		zap.Int("rating", rating),
	)

	return record, nil
}
