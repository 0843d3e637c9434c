package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/Freeeeeet/skipro_backend/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepository stores the non-instructor staff roster (rental clerks
// and rescue workers). Instructors live in their own table.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id, role, first_name, last_name, birth_date, years_of_experience, rentals_handled, qualifications, created_at`

// Create inserts a new staff member.
func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	query := `
		INSERT INTO employees (id, role, first_name, last_name, birth_date, years_of_experience, rentals_handled, qualifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		employee.ID,
		employee.Role,
		employee.FirstName,
		employee.LastName,
		employee.BirthDate,
		employee.YearsOfExperience,
		employee.RentalsHandled,
		employee.Qualifications,
	).Scan(&employee.CreatedAt)

	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	return nil
}

// GetByID returns a staff member or nil if not found.
func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}

	return employee, nil
}

// GetByRole returns every staff member with the given role.
func (r *EmployeeRepository) GetByRole(ctx context.Context, role model.EmployeeRole) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE role = $1 ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("get employees by role: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

// GetAll returns the whole roster.
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all employees: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

// IncrementRentalsHandled bumps a clerk's handled-rentals counter.
func (r *EmployeeRepository) IncrementRentalsHandled(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE employees SET rentals_handled = rentals_handled + 1 WHERE id = $1 AND role = $2`

	result, err := r.pool.Exec(ctx, query, id, model.RoleRentalClerk)
	if err != nil {
		return fmt.Errorf("increment rentals handled: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("rental clerk not found")
	}

	return nil
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var employee model.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Role,
		&employee.FirstName,
		&employee.LastName,
		&employee.BirthDate,
		&employee.YearsOfExperience,
		&employee.RentalsHandled,
		&employee.Qualifications,
		&employee.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
