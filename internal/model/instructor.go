package model

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Instructor is a certified ski instructor. Ratings is the append-only list
// of 1-5 marks clients gave after finished lessons; it is only ever grown
// through the rating service.
type Instructor struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	BirthDate          time.Time `json:"birth_date"`
	YearsOfExperience  int       `json:"years_of_experience"`
	QualificationLevel string    `json:"qualification_level"`
	Ratings            []int     `json:"ratings"`
	CreatedAt          time.Time `json:"created_at"`
}

// AddRating appends a rating to the instructor's list.
func (i *Instructor) AddRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	i.Ratings = append(i.Ratings, rating)
	return nil
}

// AverageRating returns the mean of all ratings rounded to one decimal
// place (half away from zero), or 0.0 if the instructor has no ratings yet.
func (i *Instructor) AverageRating() float64 {
	if len(i.Ratings) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range i.Ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(i.Ratings))
	return math.Round(avg*10) / 10
}

// FullName returns "First Last".
func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}
