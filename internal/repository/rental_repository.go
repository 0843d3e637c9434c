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

type RentalRepository struct {
	pool *pgxpool.Pool
}

func NewRentalRepository(pool *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

const rentalColumns = `id, equipment_id, client_id, clerk_id, status, cost, rented_at, planned_return_at, returned_at`

// Create inserts a new rental.
func (r *RentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	query := `
		INSERT INTO rentals (id, equipment_id, client_id, clerk_id, status, cost, planned_return_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING rented_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		rental.ID,
		rental.EquipmentID,
		rental.ClientID,
		rental.ClerkID,
		rental.Status,
		rental.Cost,
		rental.PlannedReturnAt,
	).Scan(&rental.RentedAt)

	if err != nil {
		return fmt.Errorf("create rental: %w", err)
	}

	return nil
}

// GetByID returns a rental or nil if not found.
func (r *RentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`

	rental, err := scanRental(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rental by id: %w", err)
	}

	return rental, nil
}

// GetActiveByClient returns the client's active rentals, newest first.
func (r *RentalRepository) GetActiveByClient(ctx context.Context, clientID uuid.UUID) ([]*model.Rental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE client_id = $1 AND status = $2
		ORDER BY rented_at DESC
	`

	rows, err := r.pool.Query(ctx, query, clientID, model.RentalStatusActive)
	if err != nil {
		return nil, fmt.Errorf("get active rentals by client: %w", err)
	}
	defer rows.Close()

	var rentals []*model.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

// GetOverdue returns active rentals whose planned return date is in the past.
func (r *RentalRepository) GetOverdue(ctx context.Context, now time.Time) ([]*model.Rental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE status = $1 AND planned_return_at < $2
		ORDER BY planned_return_at
	`

	rows, err := r.pool.Query(ctx, query, model.RentalStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("get overdue rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*model.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

// MarkReturned closes an active rental and reports whether a row changed.
func (r *RentalRepository) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error) {
	query := `
		UPDATE rentals
		SET status = $1, returned_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.pool.Exec(ctx, query, model.RentalStatusReturned, returnedAt, id, model.RentalStatusActive)
	if err != nil {
		return false, fmt.Errorf("mark rental returned: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanRental(row pgx.Row) (*model.Rental, error) {
	var rental model.Rental
	err := row.Scan(
		&rental.ID,
		&rental.EquipmentID,
		&rental.ClientID,
		&rental.ClerkID,
		&rental.Status,
		&rental.Cost,
		&rental.RentedAt,
		&rental.PlannedReturnAt,
		&rental.ReturnedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rental, nil
}
