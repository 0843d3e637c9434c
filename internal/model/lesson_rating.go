package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonRating is the durable record of one client rating the instructor of
// one finished lesson. At most one rating may exist per (lesson, client)
// pair; the record is write-once.
type LessonRating struct {
	ID           uuid.UUID `json:"id"`
	LessonID     uuid.UUID `json:"lesson_id"`
	ClientID     uuid.UUID `json:"client_id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewLessonRating validates the rating value and builds the record.
func NewLessonRating(lessonID, clientID, instructorID uuid.UUID, rating int) (*LessonRating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &LessonRating{
		ID:           uuid.New(),
		LessonID:     lessonID,
		ClientID:     clientID,
		InstructorID: instructorID,
		Rating:       rating,
		CreatedAt:    time.Now(),
	}, nil
}
