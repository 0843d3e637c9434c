package model

import (
	"errors"
	"testing"
)

func TestInstructorAddRating(t *testing.T) {
	i := &Instructor{}

	if err := i.AddRating(0); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("AddRating(0): err = %v, want ErrInvalidRating", err)
	}
	if err := i.AddRating(6); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("AddRating(6): err = %v, want ErrInvalidRating", err)
	}
	if err := i.AddRating(1); err != nil {
		t.Fatalf("AddRating(1): %v", err)
	}
	if err := i.AddRating(5); err != nil {
		t.Fatalf("AddRating(5): %v", err)
	}
	if len(i.Ratings) != 2 {
		t.Fatalf("ratings length = %d, want 2", len(i.Ratings))
	}
}

func TestInstructorAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0.0},
		{"single", []int{4}, 4.0},
		{"two", []int{5, 4}, 4.5},
		{"rounded down", []int{5, 4, 4}, 4.3},
		{"rounded half up", []int{4, 5}, 4.5},
		{"all fives", []int{5, 5, 5}, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := &Instructor{Ratings: tt.ratings}
			if got := i.AverageRating(); got != tt.want {
				t.Fatalf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}
