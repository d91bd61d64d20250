package repository

import (
	"context"
	"database/sql"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/google/uuid"
)

// EmployeeRepo is the concrete implementation for a PostgreSQL database.
type EmployeeRepo struct {
	DB *sql.DB
}

// NewEmployeeRepo create new instance
func NewEmployeeRepo(db *sql.DB) EmployeeRepository {
	return &EmployeeRepo{DB: db}
}

const employeeColumns = `id, user_id, employee_number, first_name, last_name, is_active, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }, e *model.Employee) error {
	return row.Scan(&e.ID, &e.UserID, &e.EmployeeNumber, &e.FirstName, &e.LastName,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EmployeeRepo) Create(ctx context.Context, e *model.Employee) error {
	query := `INSERT INTO employees (id, user_id, employee_number, first_name, last_name, is_active)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(ctx, query,
		e.ID, e.UserID, e.EmployeeNumber, e.FirstName, e.LastName, e.IsActive,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e := &model.Employee{}
	err := scanEmployee(r.DB.QueryRowContext(ctx, query, id), e)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`

	e := &model.Employee{}
	err := scanEmployee(r.DB.QueryRowContext(ctx, query, userID), e)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepo) Update(ctx context.Context, e *model.Employee) error {
	query := `UPDATE employees
              SET employee_number = $1,
                  first_name = $2,
                  last_name = $3,
                  is_active = $4,
                  updated_at = now()
              WHERE id = $5
              RETURNING updated_at`

	err := r.DB.QueryRowContext(ctx, query,
		e.EmployeeNumber, e.FirstName, e.LastName, e.IsActive, e.ID,
	).Scan(&e.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *EmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
