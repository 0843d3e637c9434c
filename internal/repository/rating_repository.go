package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Exists reports whether the client has already rated this lesson.
func (r *RatingRepository) Exists(ctx context.Context, lessonID, clientID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM lesson_ratings WHERE lesson_id = $1 AND client_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, lessonID, clientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("lesson rating exists: %w", err)
	}

	return exists, nil
}

// Create stores the rating record and appends the value to the instructor's
// aggregated ratings in a single transaction, so a rating is never visible
// without its reputation update (or vice versa).
func (r *RatingRepository) Create(ctx context.Context, rating *model.LessonRating) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertRating := `
		INSERT INTO lesson_ratings (id, lesson_id, client_id, instructor_id, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(
		ctx, insertRating,
		rating.ID,
		rating.LessonID,
		rating.ClientID,
		rating.InstructorID,
		rating.Rating,
		rating.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lesson rating: %w", err)
	}

	appendRating := `INSERT INTO instructor_ratings (instructor_id, rating) VALUES ($1, $2)`
	if _, err = tx.Exec(ctx, appendRating, rating.InstructorID, rating.Rating); err != nil {
		return fmt.Errorf("append instructor rating: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
