package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InstructorRepository struct {
	pool *pgxpool.Pool
}

func NewInstructorRepository(pool *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{pool: pool}
}

// Create inserts a new instructor.
func (r *InstructorRepository) Create(ctx context.Context, instructor *model.Instructor) error {
	query := `
		INSERT INTO instructors (id, first_name, last_name, birth_date, years_of_experience, qualification_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		instructor.ID,
		instructor.FirstName,
		instructor.LastName,
		instructor.BirthDate,
		instructor.YearsOfExperience,
		instructor.QualificationLevel,
	).Scan(&instructor.CreatedAt)

	if err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}

	return nil
}

// GetByID returns an instructor with ratings loaded, or nil if not found.
func (r *InstructorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Instructor, error) {
	query := `
		SELECT id, first_name, last_name, birth_date, years_of_experience, qualification_level, created_at
		FROM instructors
		WHERE id = $1
	`

	var instructor model.Instructor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.FirstName,
		&instructor.LastName,
		&instructor.BirthDate,
		&instructor.YearsOfExperience,
		&instructor.QualificationLevel,
		&instructor.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instructor by id: %w", err)
	}

	if err := r.loadRatings(ctx, &instructor); err != nil {
		return nil, err
	}

	return &instructor, nil
}

// Exists reports whether an instructor with the given id is registered.
func (r *InstructorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM instructors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("instructor exists: %w", err)
	}

	return exists, nil
}

// GetAll returns every instructor with ratings loaded.
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*model.Instructor, error) {
	query := `
		SELECT id, first_name, last_name, birth_date, years_of_experience, qualification_level, created_at
		FROM instructors
		ORDER BY last_name, first_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all instructors: %w", err)
	}
	defer rows.Close()

	var instructors []*model.Instructor
	for rows.Next() {
		var instructor model.Instructor
		err := rows.Scan(
			&instructor.ID,
			&instructor.FirstName,
			&instructor.LastName,
			&instructor.BirthDate,
			&instructor.YearsOfExperience,
			&instructor.QualificationLevel,
			&instructor.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		instructors = append(instructors, &instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instructors: %w", err)
	}

	for _, instructor := range instructors {
		if err := r.loadRatings(ctx, instructor); err != nil {
			return nil, err
		}
	}

	return instructors, nil
}

func (r *InstructorRepository) loadRatings(ctx context.Context, instructor *model.Instructor) error {
	query := `SELECT rating FROM instructor_ratings WHERE instructor_id = $1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, instructor.ID)
	if err != nil {
		return fmt.Errorf("load instructor ratings: %w", err)
	}
	defer rows.Close()

	instructor.Ratings = instructor.Ratings[:0]
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return fmt.Errorf("scan instructor rating: %w", err)
		}
		instructor.Ratings = append(instructor.Ratings, rating)
	}

	return rows.Err()
}
