package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
)

// finishedLesson builds a finished lesson with the given clients enrolled.
func finishedLesson(t *testing.T, env *testEnv, instructorID uuid.UUID, clients ...*model.Client) *model.Lesson {
	t.Helper()
	ctx := context.Background()

	lesson := env.addLesson(t, instructorID, model.DefaultLessonCapacity)
	for _, c := range clients {
		if err := env.lessons.EnrollClient(ctx, lesson.ID, c.ID); err != nil {
			t.Fatalf("enroll: %v", err)
		}
	}
	if err := env.lessons.StartLesson(ctx, lesson.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := env.lessons.FinishLesson(ctx, lesson.ID); err != nil {
		t.Fatalf("finish: %v", err)
	}
	return lesson
}

func TestRateInstructor(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	a := env.addClient(t, "Alice", "Adams")
	lesson := finishedLesson(t, env, instructor.ID, a)

	record, err := env.ratings.RateInstructor(ctx, lesson.ID, a.ID, 4)
	if err != nil {
		t.Fatalf("RateInstructor: %v", err)
	}
	if record.Rating != 4 || record.InstructorID != instructor.ID {
		t.Fatalf("unexpected record: %+v", record)
	}

	got, err := env.instructors.GetInstructorByID(ctx, instructor.ID)
	if err != nil {
		t.Fatalf("get instructor: %v", err)
	}
	if avg := got.AverageRating(); avg != 4.0 {
		t.Fatalf("average = %v, want 4.0", avg)
	}

	// second rating by the same client is rejected and the average holds
	if _, err := env.ratings.RateInstructor(ctx, lesson.ID, a.ID, 5); !errors.Is(err, ErrAlreadyRated) {
		t.Fatalf("second rating: err = %v, want ErrAlreadyRated", err)
	}
	got, _ = env.instructors.GetInstructorByID(ctx, instructor.ID)
	if avg := got.AverageRating(); avg != 4.0 {
		t.Fatalf("average after rejected rating = %v, want 4.0", avg)
	}
}

func TestRateInstructorAccumulatesAverage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)

	// prior ratings [5, 4] -> average 4.5
	env.store.instructors[instructor.ID].Ratings = []int{5, 4}

	b := env.addClient(t, "Bob", "Brown")
	lesson := finishedLesson(t, env, instructor.ID, b)

	if _, err := env.ratings.RateInstructor(ctx, lesson.ID, b.ID, 4); err != nil {
		t.Fatalf("RateInstructor: %v", err)
	}

	got, err := env.instructors.GetInstructorByID(ctx, instructor.ID)
	if err != nil {
		t.Fatalf("get instructor: %v", err)
	}
	if len(got.Ratings) != 3 {
		t.Fatalf("ratings = %v, want 3 entries", got.Ratings)
	}
	if avg := got.AverageRating(); avg != 4.3 {
		t.Fatalf("average = %v, want 4.3", avg)
	}
}

func TestRateInstructorValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	a := env.addClient(t, "Alice", "Adams")
	b := env.addClient(t, "Bob", "Brown")
	lesson := finishedLesson(t, env, instructor.ID, a)
	planned := env.addLesson(t, instructor.ID, model.DefaultLessonCapacity)

	if err := env.lessons.EnrollClient(ctx, planned.ID, a.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	tests := []struct {
		name     string
		lessonID uuid.UUID
		clientID uuid.UUID
		rating   int
		want     error
	}{
		{"rating too low", lesson.ID, a.ID, 0, model.ErrInvalidRating},
		{"rating too high", lesson.ID, a.ID, 6, model.ErrInvalidRating},
		{"unknown lesson", uuid.New(), a.ID, 3, ErrLessonNotFound},
		{"unknown client", lesson.ID, uuid.New(), 3, ErrClientNotFound},
		{"lesson not finished", planned.ID, a.ID, 3, ErrLessonNotFinished},
		{"not a participant", lesson.ID, b.ID, 3, ErrNotAParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.ratings.RateInstructor(ctx, tt.lessonID, tt.clientID, tt.rating); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	// nothing was recorded by the failed attempts
	if len(env.store.ratings) != 0 {
		t.Fatalf("ratings stored = %d, want 0", len(env.store.ratings))
	}
}

func TestRateInstructorBoundaryValues(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	instructor := env.addInstructor(t)
	a := env.addClient(t, "Alice", "Adams")
	b := env.addClient(t, "Bob", "Brown")
	lesson := finishedLesson(t, env, instructor.ID, a, b)

	if _, err := env.ratings.RateInstructor(ctx, lesson.ID, a.ID, 1); err != nil {
		t.Fatalf("rating 1: %v", err)
	}
	if _, err := env.ratings.RateInstructor(ctx, lesson.ID, b.ID, 5); err != nil {
		t.Fatalf("rating 5: %v", err)
	}

	got, _ := env.instructors.GetInstructorByID(ctx, instructor.ID)
	if avg := got.AverageRating(); avg != 3.0 {
		t.Fatalf("average = %v, want 3.0", avg)
	}
}
