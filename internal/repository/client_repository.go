package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// Create inserts a new client.
func (r *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clients (id, first_name, last_name, birth_date, experience, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		client.ID,
		client.FirstName,
		client.LastName,
		client.BirthDate,
		client.Experience,
		client.PasswordHash,
	).Scan(&client.CreatedAt)

	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	return nil
}

// GetByID returns a client or nil if not found.
func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, birth_date, experience, password_hash, created_at
		FROM clients
		WHERE id = $1
	`

	var client model.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.BirthDate,
		&client.Experience,
		&client.PasswordHash,
		&client.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}

	return &client, nil
}

// GetByName returns the first client matching the name case-insensitively,
// or nil if none matches. Login identifies clients by "first.last".
func (r *ClientRepository) GetByName(ctx context.Context, firstName, lastName string) (*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, birth_date, experience, password_hash, created_at
		FROM clients
		WHERE LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2)
		LIMIT 1
	`

	var client model.Client
	err := r.pool.QueryRow(ctx, query, firstName, lastName).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.BirthDate,
		&client.Experience,
		&client.PasswordHash,
		&client.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by name: %w", err)
	}

	return &client, nil
}
