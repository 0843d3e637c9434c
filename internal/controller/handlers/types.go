package handlers

import (
	"context"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
)

type registerRequest struct {
	FirstName  string           `json:"first_name" binding:"required"`
	LastName   string           `json:"last_name" binding:"required"`
	BirthDate  time.Time        `json:"birth_date" binding:"required"`
	Experience model.Experience `json:"experience" binding:"required"`
	Password   string           `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createLessonRequest struct {
	DateTime        time.Time `json:"date_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
	InstructorID    uuid.UUID `json:"instructor_id" binding:"required"`
	Capacity        int       `json:"capacity"`
}

type capacityRequest struct {
	Capacity int `json:"capacity" binding:"required"`
}

type rateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

type createInstructorRequest struct {
	FirstName          string    `json:"first_name" binding:"required"`
	LastName           string    `json:"last_name" binding:"required"`
	BirthDate          time.Time `json:"birth_date" binding:"required"`
	YearsOfExperience  int       `json:"years_of_experience"`
	QualificationLevel string    `json:"qualification_level"`
}

type addEquipmentRequest struct {
	Name string `json:"name" binding:"required"`
	Size string `json:"size" binding:"required"`
	Cost int    `json:"cost" binding:"required,min=0"`
}

type rentRequest struct {
	EquipmentID     uuid.UUID  `json:"equipment_id" binding:"required"`
	PlannedReturnAt time.Time  `json:"planned_return_at" binding:"required"`
	ClerkID         *uuid.UUID `json:"clerk_id"`
}

type registerEmployeeRequest struct {
	Role              model.EmployeeRole `json:"role" binding:"required"`
	FirstName         string             `json:"first_name" binding:"required"`
	LastName          string             `json:"last_name" binding:"required"`
	BirthDate         time.Time          `json:"birth_date" binding:"required"`
	YearsOfExperience int                `json:"years_of_experience"`
	Qualifications    []string           `json:"qualifications"`
}

// lessonTile is the list-view shape of a lesson: the lesson itself plus the
// enrollment count and the instructor's name and current average rating.
type lessonTile struct {
	ID               uuid.UUID          `json:"id"`
	DateTime         time.Time          `json:"date_time"`
	DurationMinutes  int                `json:"duration_minutes"`
	Status           model.LessonStatus `json:"status"`
	Capacity         int                `json:"capacity"`
	Enrolled         int                `json:"enrolled"`
	InstructorID     uuid.UUID          `json:"instructor_id"`
	InstructorName   string             `json:"instructor_name"`
	InstructorRating float64            `json:"instructor_rating"`
}

type instructorView struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	YearsOfExperience  int       `json:"years_of_experience"`
	QualificationLevel string    `json:"qualification_level"`
	AverageRating      float64   `json:"average_rating"`
	RatingCount        int       `json:"rating_count"`
}

type employeeView struct {
	ID                uuid.UUID          `json:"id"`
	Role              model.EmployeeRole `json:"role"`
	FirstName         string             `json:"first_name"`
	LastName          string             `json:"last_name"`
	YearsOfExperience int                `json:"years_of_experience"`
	Salary            float64            `json:"salary"`
}

func toInstructorView(i *model.Instructor) instructorView {
	return instructorView{
		ID:                 i.ID,
		FirstName:          i.FirstName,
		LastName:           i.LastName,
		YearsOfExperience:  i.YearsOfExperience,
		QualificationLevel: i.QualificationLevel,
		AverageRating:      i.AverageRating(),
		RatingCount:        len(i.Ratings),
	}
}

func toEmployeeView(e *model.Employee) employeeView {
	return employeeView{
		ID:                e.ID,
		Role:              e.Role,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		YearsOfExperience: e.YearsOfExperience,
		Salary:            e.Salary(),
	}
}

// toLessonTiles builds tiles for a lesson list, resolving each instructor
// once per request.
func (h *Handler) toLessonTiles(ctx context.Context, lessons []*model.Lesson) ([]lessonTile, error) {
	instructors := make(map[uuid.UUID]*model.Instructor)

	tiles := make([]lessonTile, 0, len(lessons))
	for _, lesson := range lessons {
		instructor, ok := instructors[lesson.InstructorID]
		if !ok {
			var err error
			instructor, err = h.instructors.GetInstructorByID(ctx, lesson.InstructorID)
			if err != nil {
				return nil, err
			}
			instructors[lesson.InstructorID] = instructor
		}

		tiles = append(tiles, lessonTile{
			ID:               lesson.ID,
			DateTime:         lesson.DateTime,
			DurationMinutes:  int(lesson.Duration.Minutes()),
			Status:           lesson.Status,
			Capacity:         lesson.Capacity,
			Enrolled:         lesson.ClientCount(),
			InstructorID:     lesson.InstructorID,
			InstructorName:   instructor.FullName(),
			InstructorRating: instructor.AverageRating(),
		})
	}

	return tiles, nil
}
