package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type testEnv struct {
	store       *memStore
	lessons     *LessonService
	ratings     *RatingService
	instructors *InstructorService
	clients     *ClientService
	rentals     *RentalService
	employees   *EmployeeService
}

func newTestEnv() *testEnv {
	store := newMemStore()
	locks := NewLessonLocks()
	logger := zap.NewNop()

	clientStore := memClientStore{store}
	instructorStore := memInstructorStore{store}

	return &testEnv{
		store:       store,
		lessons:     NewLessonService(store, clientStore, instructorStore, locks, logger),
		ratings:     NewRatingService(store, clientStore, instructorStore, memRatingStore{store}, locks, logger),
		instructors: NewInstructorService(instructorStore, logger),
		clients:     NewClientService(clientStore, "test-secret", logger),
		rentals:     NewRentalService(memEquipmentStore{store}, memRentalStore{store}, clientStore, memEmployeeStore{store}, logger),
		employees:   NewEmployeeService(memEmployeeStore{store}, instructorStore, logger),
	}
}

func (e *testEnv) addInstructor(t *testing.T) *model.Instructor {
	t.Helper()
	instructor, err := e.instructors.CreateInstructor(
		context.Background(), "John", "Smith",
		time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC), 5, "Level 2",
	)
	if err != nil {
		t.Fatalf("CreateInstructor: %v", err)
	}
	return instructor
}

func (e *testEnv) addClient(t *testing.T, firstName, lastName string) *model.Client {
	t.Helper()
	client, _, err := e.clients.Register(
		context.Background(), firstName, lastName,
		time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC), model.ExperienceBeginner, "secret",
	)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return client
}

func (e *testEnv) addLesson(t *testing.T, instructorID uuid.UUID, capacity int) *model.Lesson {
	t.Helper()
	lesson, err := e.lessons.CreateLesson(
		context.Background(), time.Now().Add(48*time.Hour), time.Hour, instructorID, capacity,
	)
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	return lesson
}

func TestCreateLessonUnknownInstructor(t *testing.T) {
	env := newTestEnv()
	_, err := env.lessons.CreateLesson(context.Background(), time.Now(), time.Hour, uuid.New(), 0)
	if !errors.Is(err, ErrInstructorNotFound) {
		t.Fatalf("err = %v, want ErrInstructorNotFound", err)
	}
}

func TestEnrollUpToCapacity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 2)
	a := env.addClient(t, "Alice", "Adams")
	b := env.addClient(t, "Bob", "Brown")
	c := env.addClient(t, "Carol", "Clark")

	if err := env.lessons.EnrollClient(ctx, lesson.ID, a.ID); err != nil {
		t.Fatalf("enroll a: %v", err)
	}
	if count, _ := env.lessons.CountClients(ctx, lesson.ID); count != 1 {
		t.Fatalf("count after a = %d, want 1", count)
	}

	if err := env.lessons.EnrollClient(ctx, lesson.ID, b.ID); err != nil {
		t.Fatalf("enroll b: %v", err)
	}
	if count, _ := env.lessons.CountClients(ctx, lesson.ID); count != 2 {
		t.Fatalf("count after b = %d, want 2", count)
	}

	if err := env.lessons.EnrollClient(ctx, lesson.ID, c.ID); !errors.Is(err, model.ErrLessonFull) {
		t.Fatalf("enroll c: err = %v, want ErrLessonFull", err)
	}
	if count, _ := env.lessons.CountClients(ctx, lesson.ID); count != 2 {
		t.Fatalf("count after full lesson = %d, want 2", count)
	}
}

func TestEnrollIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 3)
	a := env.addClient(t, "Alice", "Adams")

	for i := 0; i < 2; i++ {
		if err := env.lessons.EnrollClient(ctx, lesson.ID, a.ID); err != nil {
			t.Fatalf("enroll #%d: %v", i+1, err)
		}
	}
	if count, _ := env.lessons.CountClients(ctx, lesson.ID); count != 1 {
		t.Fatalf("count after duplicate enroll = %d, want 1", count)
	}
}

func TestEnrollValidatesExistence(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 3)
	a := env.addClient(t, "Alice", "Adams")

	if err := env.lessons.EnrollClient(ctx, lesson.ID, uuid.New()); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("unknown client: err = %v, want ErrClientNotFound", err)
	}
	if err := env.lessons.EnrollClient(ctx, uuid.New(), a.ID); !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("unknown lesson: err = %v, want ErrLessonNotFound", err)
	}
}

func TestEnrollAfterCancelFails(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 3)
	a := env.addClient(t, "Alice", "Adams")
	b := env.addClient(t, "Bob", "Brown")

	if err := env.lessons.EnrollClient(ctx, lesson.ID, a.ID); err != nil {
		t.Fatalf("enroll a: %v", err)
	}
	if err := env.lessons.CancelLesson(ctx, lesson.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := env.lessons.EnrollClient(ctx, lesson.ID, b.ID); !errors.Is(err, model.ErrLessonNotPlanned) {
		t.Fatalf("enroll after cancel: err = %v, want ErrLessonNotPlanned", err)
	}
}

func TestFinishRequiresStart(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 3)

	if err := env.lessons.FinishLesson(ctx, lesson.ID); !errors.Is(err, model.ErrInvalidStateTransition) {
		t.Fatalf("finish planned lesson: err = %v, want ErrInvalidStateTransition", err)
	}

	if err := env.lessons.StartLesson(ctx, lesson.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := env.lessons.FinishLesson(ctx, lesson.ID); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got, err := env.lessons.GetLessonByID(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if got.Status != model.LessonStatusFinished {
		t.Fatalf("status = %s, want finished", got.Status)
	}
}

func TestUnenrollIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 3)
	a := env.addClient(t, "Alice", "Adams")

	if err := env.lessons.EnrollClient(ctx, lesson.ID, a.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := env.lessons.UnenrollClient(ctx, lesson.ID, a.ID); err != nil {
			t.Fatalf("unenroll #%d: %v", i+1, err)
		}
	}
	if count, _ := env.lessons.CountClients(ctx, lesson.ID); count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestSetLessonCapacity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	lesson := env.addLesson(t, instructor.ID, 3)
	a := env.addClient(t, "Alice", "Adams")
	b := env.addClient(t, "Bob", "Brown")

	for _, c := range []*model.Client{a, b} {
		if err := env.lessons.EnrollClient(ctx, lesson.ID, c.ID); err != nil {
			t.Fatalf("enroll: %v", err)
		}
	}

	if err := env.lessons.SetLessonCapacity(ctx, lesson.ID, 1); !errors.Is(err, model.ErrInvalidCapacity) {
		t.Fatalf("shrink below enrollment: err = %v, want ErrInvalidCapacity", err)
	}
	if err := env.lessons.SetLessonCapacity(ctx, lesson.ID, 2); err != nil {
		t.Fatalf("shrink to enrollment: %v", err)
	}

	got, err := env.lessons.GetLessonByID(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if got.Capacity != 2 {
		t.Fatalf("capacity = %d, want 2", got.Capacity)
	}
}

func TestLessonDirectoryQueries(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	a := env.addClient(t, "Alice", "Adams")

	joined := env.addLesson(t, instructor.ID, 3)
	open := env.addLesson(t, instructor.ID, 3)
	done := env.addLesson(t, instructor.ID, 3)

	if err := env.lessons.EnrollClient(ctx, joined.ID, a.ID); err != nil {
		t.Fatalf("enroll joined: %v", err)
	}
	if err := env.lessons.EnrollClient(ctx, done.ID, a.ID); err != nil {
		t.Fatalf("enroll done: %v", err)
	}
	if err := env.lessons.StartLesson(ctx, done.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := env.lessons.FinishLesson(ctx, done.ID); err != nil {
		t.Fatalf("finish: %v", err)
	}

	available, err := env.lessons.GetPlannedLessonsWithoutClient(ctx, a.ID)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(available) != 1 || available[0].ID != open.ID {
		t.Fatalf("available = %v, want just the open lesson", available)
	}

	upcoming, err := env.lessons.GetLessonsForClientByStatus(ctx, a.ID, model.LessonStatusPlanned)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != joined.ID {
		t.Fatalf("upcoming = %v, want just the joined lesson", upcoming)
	}

	finished, err := env.lessons.GetLessonsForClientByStatus(ctx, a.ID, model.LessonStatusFinished)
	if err != nil {
		t.Fatalf("finished: %v", err)
	}
	if len(finished) != 1 || finished[0].ID != done.ID {
		t.Fatalf("finished = %v, want just the done lesson", finished)
	}

	if count, _ := env.lessons.CountClients(ctx, uuid.New()); count != 0 {
		t.Fatalf("count for unknown lesson = %d, want 0", count)
	}
}
