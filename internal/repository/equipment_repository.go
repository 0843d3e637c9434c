package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepository struct {
	pool *pgxpool.Pool
}

func NewEquipmentRepository(pool *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{pool: pool}
}

// Create inserts a new equipment item.
func (r *EquipmentRepository) Create(ctx context.Context, equipment *model.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, size, cost, in_use)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.Size,
		equipment.Cost,
		equipment.InUse,
	).Scan(&equipment.CreatedAt)

	if err != nil {
		return fmt.Errorf("create equipment: %w", err)
	}

	return nil
}

// GetByID returns an equipment item or nil if not found.
func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	query := `SELECT id, name, size, cost, in_use, created_at FROM equipment WHERE id = $1`

	var equipment model.Equipment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&equipment.ID,
		&equipment.Name,
		&equipment.Size,
		&equipment.Cost,
		&equipment.InUse,
		&equipment.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment by id: %w", err)
	}

	return &equipment, nil
}

// GetAll returns the full equipment catalog.
func (r *EquipmentRepository) GetAll(ctx context.Context) ([]*model.Equipment, error) {
	query := `SELECT id, name, size, cost, in_use, created_at FROM equipment ORDER BY name, size`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all equipment: %w", err)
	}
	defer rows.Close()

	var items []*model.Equipment
	for rows.Next() {
		var equipment model.Equipment
		err := rows.Scan(
			&equipment.ID,
			&equipment.Name,
			&equipment.Size,
			&equipment.Cost,
			&equipment.InUse,
			&equipment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, &equipment)
	}

	return items, rows.Err()
}

// SetInUse flips the busy/free flag. Marking an item busy only succeeds if
// it is currently free, which closes the rent/rent race at the database.
func (r *EquipmentRepository) SetInUse(ctx context.Context, id uuid.UUID, inUse bool) (bool, error) {
	query := `UPDATE equipment SET in_use = $1 WHERE id = $2 AND in_use = NOT $1`

	result, err := r.pool.Exec(ctx, query, inUse, id)
	if err != nil {
		return false, fmt.Errorf("set equipment in use: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
