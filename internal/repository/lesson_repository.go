package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonColumns = `id, date_time, duration_minutes, status, capacity, instructor_id, created_at`

// Create inserts a new lesson.
func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	query := `
		INSERT INTO lessons (id, date_time, duration_minutes, status, capacity, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		lesson.ID,
		lesson.DateTime,
		int(lesson.Duration.Minutes()),
		lesson.Status,
		lesson.Capacity,
		lesson.InstructorID,
	).Scan(&lesson.CreatedAt)

	if err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}

	return nil
}

// GetByID returns a lesson with its enrolled clients, or nil if not found.
func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	lesson, err := r.scanLesson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson by id: %w", err)
	}

	if err := r.loadClientIDs(ctx, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

// GetPlannedWithoutClient returns planned lessons the client is not enrolled
// in, ordered by start time.
func (r *LessonRepository) GetPlannedWithoutClient(ctx context.Context, clientID uuid.UUID) ([]*model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons l
		WHERE l.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM lesson_clients lc
			WHERE lc.lesson_id = l.id AND lc.client_id = $2
		  )
		ORDER BY l.date_time ASC
	`

	return r.queryLessons(ctx, query, model.LessonStatusPlanned, clientID)
}

// GetByClientAndStatus returns the client's lessons with the given status,
// ordered by start time.
func (r *LessonRepository) GetByClientAndStatus(ctx context.Context, clientID uuid.UUID, status model.LessonStatus) ([]*model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons l
		WHERE l.status = $1
		  AND EXISTS (
			SELECT 1 FROM lesson_clients lc
			WHERE lc.lesson_id = l.id AND lc.client_id = $2
		  )
		ORDER BY l.date_time ASC
	`

	return r.queryLessons(ctx, query, status, clientID)
}

// CountClients returns the enrollment count, 0 for an unknown lesson.
func (r *LessonRepository) CountClients(ctx context.Context, lessonID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM lesson_clients WHERE lesson_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, lessonID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count lesson clients: %w", err)
	}

	return count, nil
}

// UpdateStatus persists a lifecycle transition.
func (r *LessonRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.LessonStatus) error {
	query := `UPDATE lessons SET status = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update lesson status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// UpdateCapacity persists a capacity change.
func (r *LessonRepository) UpdateCapacity(ctx context.Context, id uuid.UUID, capacity int) error {
	query := `UPDATE lessons SET capacity = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, capacity, id)
	if err != nil {
		return fmt.Errorf("update lesson capacity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// AddClient records an enrollment. Re-adding an enrolled client is a no-op.
func (r *LessonRepository) AddClient(ctx context.Context, lessonID, clientID uuid.UUID) error {
	query := `
		INSERT INTO lesson_clients (lesson_id, client_id)
		VALUES ($1, $2)
		ON CONFLICT (lesson_id, client_id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, lessonID, clientID); err != nil {
		return fmt.Errorf("add lesson client: %w", err)
	}

	return nil
}

// RemoveClient deletes an enrollment and reports whether a row was removed.
func (r *LessonRepository) RemoveClient(ctx context.Context, lessonID, clientID uuid.UUID) (bool, error) {
	query := `DELETE FROM lesson_clients WHERE lesson_id = $1 AND client_id = $2`

	result, err := r.pool.Exec(ctx, query, lessonID, clientID)
	if err != nil {
		return false, fmt.Errorf("remove lesson client: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// GetClients returns the clients enrolled in a lesson.
func (r *LessonRepository) GetClients(ctx context.Context, lessonID uuid.UUID) ([]*model.Client, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.birth_date, c.experience, c.created_at
		FROM clients c
		JOIN lesson_clients lc ON lc.client_id = c.id
		WHERE lc.lesson_id = $1
		ORDER BY lc.enrolled_at ASC
	`

	rows, err := r.pool.Query(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("get lesson clients: %w", err)
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		var client model.Client
		err := rows.Scan(
			&client.ID,
			&client.FirstName,
			&client.LastName,
			&client.BirthDate,
			&client.Experience,
			&client.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, &client)
	}

	return clients, nil
}

func (r *LessonRepository) queryLessons(ctx context.Context, query string, args ...interface{}) ([]*model.Lesson, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*model.Lesson
	for rows.Next() {
		lesson, err := r.scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}

	for _, lesson := range lessons {
		if err := r.loadClientIDs(ctx, lesson); err != nil {
			return nil, err
		}
	}

	return lessons, nil
}

func (r *LessonRepository) scanLesson(row pgx.Row) (*model.Lesson, error) {
	var lesson model.Lesson
	var durationMinutes int

	err := row.Scan(
		&lesson.ID,
		&lesson.DateTime,
		&durationMinutes,
		&lesson.Status,
		&lesson.Capacity,
		&lesson.InstructorID,
		&lesson.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lesson.Duration = time.Duration(durationMinutes) * time.Minute
	return &lesson, nil
}

func (r *LessonRepository) loadClientIDs(ctx context.Context, lesson *model.Lesson) error {
	query := `SELECT client_id FROM lesson_clients WHERE lesson_id = $1 ORDER BY enrolled_at ASC`

	rows, err := r.pool.Query(ctx, query, lesson.ID)
	if err != nil {
		return fmt.Errorf("load lesson clients: %w", err)
	}
	defer rows.Close()

	lesson.ClientIDs = lesson.ClientIDs[:0]
	for rows.Next() {
		var clientID uuid.UUID
		if err := rows.Scan(&clientID); err != nil {
			return fmt.Errorf("scan lesson client id: %w", err)
		}
		lesson.ClientIDs = append(lesson.ClientIDs, clientID)
	}

	return rows.Err()
}
