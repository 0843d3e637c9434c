package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LessonStore is the persistence contract for lessons and their enrollment
// set. *repository.LessonRepository implements it; tests use an in-memory
// stub. Single-row reads return (nil, nil) when nothing matches.
type LessonStore interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	GetPlannedWithoutClient(ctx context.Context, clientID uuid.UUID) ([]*model.Lesson, error)
	GetByClientAndStatus(ctx context.Context, clientID uuid.UUID, status model.LessonStatus) ([]*model.Lesson, error)
	CountClients(ctx context.Context, lessonID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.LessonStatus) error
	UpdateCapacity(ctx context.Context, id uuid.UUID, capacity int) error
	AddClient(ctx context.Context, lessonID, clientID uuid.UUID) error
	RemoveClient(ctx context.Context, lessonID, clientID uuid.UUID) (bool, error)
	GetClients(ctx context.Context, lessonID uuid.UUID) ([]*model.Client, error)
}

// ClientStore is the client lookup contract used across services.
type ClientStore interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	GetByName(ctx context.Context, firstName, lastName string) (*model.Client, error)
}

// InstructorStore is the instructor lookup contract used across services.
type InstructorStore interface {
	Create(ctx context.Context, instructor *model.Instructor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Instructor, error)
	GetAll(ctx context.Context) ([]*model.Instructor, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// LessonService is the lesson directory plus the lifecycle and enrollment
// use-cases. Every mutation of a single lesson runs under that lesson's
// lock so the entity-level invariants hold across concurrent requests.
type LessonService struct {
	lessons     LessonStore
	clients     ClientStore
	instructors InstructorStore
	locks       *LessonLocks
	logger      *zap.Logger
}

func NewLessonService(
	lessons LessonStore,
	clients ClientStore,
	instructors InstructorStore,
	locks *LessonLocks,
	logger *zap.Logger,
) *LessonService {
	return &LessonService{
		lessons:     lessons,
		clients:     clients,
		instructors: instructors,
		locks:       locks,
		logger:      logger,
	}
}

// CreateLesson schedules a new planned lesson for an instructor.
// capacity 0 means the default.
func (s *LessonService) CreateLesson(ctx context.Context, dateTime time.Time, duration time.Duration, instructorID uuid.UUID, capacity int) (*model.Lesson, error) {
	exists, err := s.instructors.Exists(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("check instructor: %w", err)
	}
	if !exists {
		return nil, ErrInstructorNotFound
	}

	lesson, err := model.NewLesson(dateTime, duration, instructorID, capacity)
	if err != nil {
		return nil, err
	}

	if err := s.lessons.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}

	s.logger.Info("Lesson created",
		zap.String("lesson_id", lesson.ID.String()),
		zap.String("instructor_id", instructorID.String()),
		zap.Time("date_time", lesson.DateTime),
		zap.Int("capacity", lesson.Capacity),
	)

	return lesson, nil
}

// GetLessonByID returns the lesson or ErrLessonNotFound.
func (s *LessonService) GetLessonByID(ctx context.Context, lessonID uuid.UUID) (*model.Lesson, error) {
	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}

// GetPlannedLessonsWithoutClient lists the planned lessons the client could
// still join ("available lessons").
func (s *LessonService) GetPlannedLessonsWithoutClient(ctx context.Context, clientID uuid.UUID) ([]*model.Lesson, error) {
	return s.lessons.GetPlannedWithoutClient(ctx, clientID)
}

// GetLessonsForClientByStatus lists the client's lessons with the given
// status ("my upcoming", "my finished").
func (s *LessonService) GetLessonsForClientByStatus(ctx context.Context, clientID uuid.UUID, status model.LessonStatus) ([]*model.Lesson, error) {
	return s.lessons.GetByClientAndStatus(ctx, clientID, status)
}

// CountClients returns the enrollment count, 0 for an unknown lesson.
func (s *LessonService) CountClients(ctx context.Context, lessonID uuid.UUID) (int, error) {
	return s.lessons.CountClients(ctx, lessonID)
}

// GetLessonClients returns the clients enrolled in the lesson.
func (s *LessonService) GetLessonClients(ctx context.Context, lessonID uuid.UUID) ([]*model.Client, error) {
	if _, err := s.GetLessonByID(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.lessons.GetClients(ctx, lessonID)
}

// EnrollClient adds a client to a planned lesson. Re-enrolling an already
// enrolled client succeeds without touching anything.
func (s *LessonService) EnrollClient(ctx context.Context, lessonID, clientID uuid.UUID) error {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return ErrClientNotFound
	}

	mu := s.locks.Lock(lessonID)
	defer mu.Unlock()

	lesson, err := s.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}

	added, err := lesson.Enroll(clientID)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	if err := s.lessons.AddClient(ctx, lessonID, clientID); err != nil {
		return fmt.Errorf("add client: %w", err)
	}

	s.logger.Info("Client enrolled",
		zap.String("lesson_id", lessonID.String()),
		zap.String("client_id", clientID.String()),
		zap.Int("enrolled", lesson.ClientCount()),
		zap.Int("capacity", lesson.Capacity),
	)

	return nil
}

// UnenrollClient removes a client from a lesson. Removing a client that was
// never enrolled is a no-op.
func (s *LessonService) UnenrollClient(ctx context.Context, lessonID, clientID uuid.UUID) error {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return ErrClientNotFound
	}

	mu := s.locks.Lock(lessonID)
	defer mu.Unlock()

	lesson, err := s.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}

	if !lesson.Unenroll(clientID) {
		return nil
	}

	if _, err := s.lessons.RemoveClient(ctx, lessonID, clientID); err != nil {
		return fmt.Errorf("remove client: %w", err)
	}

	s.logger.Info("Client unenrolled",
		zap.String("lesson_id", lessonID.String()),
		zap.String("client_id", clientID.String()),
	)

	return nil
}

// StartLesson moves a planned lesson to in progress.
func (s *LessonService) StartLesson(ctx context.Context, lessonID uuid.UUID) error {
	return s.transition(ctx, lessonID, "started", (*model.Lesson).Start)
}

// FinishLesson moves an in-progress lesson to finished.
func (s *LessonService) FinishLesson(ctx context.Context, lessonID uuid.UUID) error {
	return s.transition(ctx, lessonID, "finished", (*model.Lesson).Finish)
}

// CancelLesson cancels a planned or in-progress lesson.
func (s *LessonService) CancelLesson(ctx context.Context, lessonID uuid.UUID) error {
	return s.transition(ctx, lessonID, "cancelled", (*model.Lesson).Cancel)
}

func (s *LessonService) transition(ctx context.Context, lessonID uuid.UUID, verb string, step func(*model.Lesson) error) error {
	mu := s.locks.Lock(lessonID)
	defer mu.Unlock()

	lesson, err := s.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}

	if err := step(lesson); err != nil {
		return err
	}

	if err := s.lessons.UpdateStatus(ctx, lessonID, lesson.Status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("Lesson "+verb,
		zap.String("lesson_id", lessonID.String()),
		zap.String("status", string(lesson.Status)),
	)

	return nil
}

// SetLessonCapacity changes the lesson capacity; the new value must cover
// the current enrollment.
func (s *LessonService) SetLessonCapacity(ctx context.Context, lessonID uuid.UUID, capacity int) error {
	mu := s.locks.Lock(lessonID)
	defer mu.Unlock()

	lesson, err := s.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}

	if err := lesson.SetCapacity(capacity); err != nil {
		return err
	}

	if err := s.lessons.UpdateCapacity(ctx, lessonID, capacity); err != nil {
		return fmt.Errorf("update capacity: %w", err)
	}

	s.logger.Info("Lesson capacity changed",
		zap.String("lesson_id", lessonID.String()),
		zap.Int("capacity", capacity),
	)

	return nil
}
