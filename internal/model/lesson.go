package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type LessonStatus string

const (
	LessonStatusPlanned    LessonStatus = "planned"
	LessonStatusInProgress LessonStatus = "in_progress"
	LessonStatusFinished   LessonStatus = "finished"
	LessonStatusCancelled  LessonStatus = "cancelled"
)

// DefaultLessonCapacity is used when a lesson is created without an explicit capacity.
const DefaultLessonCapacity = 5

var (
	ErrInvalidStateTransition = errors.New("invalid lesson state transition")
	ErrLessonNotPlanned       = errors.New("lesson is not planned")
	ErrLessonFull             = errors.New("lesson is full")
	ErrInvalidCapacity        = errors.New("invalid lesson capacity")
)

// Lesson is a single scheduled ski lesson run by one instructor.
// ClientIDs holds the enrolled clients; all invariants (capacity bound,
// status-gated enrollment, legal status transitions) are enforced by the
// methods below, callers never mutate the fields directly.
type Lesson struct {
	ID           uuid.UUID     `json:"id"`
	DateTime     time.Time     `json:"date_time"`
	Duration     time.Duration `json:"duration"`
	Status       LessonStatus  `json:"status"`
	Capacity     int           `json:"capacity"`
	InstructorID uuid.UUID     `json:"instructor_id"`
	ClientIDs    []uuid.UUID   `json:"client_ids,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewLesson creates a planned lesson with an empty client set.
// A capacity of 0 means "use the default".
func NewLesson(dateTime time.Time, duration time.Duration, instructorID uuid.UUID, capacity int) (*Lesson, error) {
	if capacity == 0 {
		capacity = DefaultLessonCapacity
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Lesson{
		ID:           uuid.New(),
		DateTime:     dateTime,
		Duration:     duration,
		Status:       LessonStatusPlanned,
		Capacity:     capacity,
		InstructorID: instructorID,
	}, nil
}

// Start moves the lesson from planned to in progress.
func (l *Lesson) Start() error {
	if l.Status != LessonStatusPlanned {
		return ErrInvalidStateTransition
	}
	l.Status = LessonStatusInProgress
	return nil
}

// Finish moves the lesson from in progress to finished.
func (l *Lesson) Finish() error {
	if l.Status != LessonStatusInProgress {
		return ErrInvalidStateTransition
	}
	l.Status = LessonStatusFinished
	return nil
}

// Cancel cancels the lesson. Finished lessons cannot be cancelled.
func (l *Lesson) Cancel() error {
	if l.Status == LessonStatusFinished {
		return ErrInvalidStateTransition
	}
	l.Status = LessonStatusCancelled
	return nil
}

// Enroll adds a client to the lesson. Enrolling an already enrolled client
// is a no-op and reports added=false with no error, so duplicate client
// retries never fail spuriously.
func (l *Lesson) Enroll(clientID uuid.UUID) (added bool, err error) {
	if l.Status != LessonStatusPlanned {
		return false, ErrLessonNotPlanned
	}
	if l.IsEnrolled(clientID) {
		return false, nil
	}
	if len(l.ClientIDs) >= l.Capacity {
		return false, ErrLessonFull
	}

	l.ClientIDs = append(l.ClientIDs, clientID)
	return true, nil
}

// Unenroll removes a client from the lesson. Removing a client that was
// never enrolled is a no-op, not an error.
func (l *Lesson) Unenroll(clientID uuid.UUID) (removed bool) {
	for i, id := range l.ClientIDs {
		if id == clientID {
			l.ClientIDs = append(l.ClientIDs[:i], l.ClientIDs[i+1:]...)
			return true
		}
	}
	return false
}

// SetCapacity changes the capacity. The new value must be at least 1 and
// must not drop below the current number of enrolled clients.
func (l *Lesson) SetCapacity(capacity int) error {
	if capacity < 1 || capacity < len(l.ClientIDs) {
		return ErrInvalidCapacity
	}
	l.Capacity = capacity
	return nil
}

// IsEnrolled reports whether the client is enrolled in the lesson.
func (l *Lesson) IsEnrolled(clientID uuid.UUID) bool {
	for _, id := range l.ClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}

// ClientCount returns the current number of enrolled clients.
func (l *Lesson) ClientCount() int {
	return len(l.ClientIDs)
}
