package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

const employeeColumns = `id, username, email, phone_number, role, status, real_name, password_hash, created_at`

func employeeDst(e *domain.EmployeeAccount) []any {
	return []any{&e.ID, &e.Username, &e.Email, &e.PhoneNumber, &e.Role, &e.Status, &e.RealName, &e.PasswordHash, &e.CreatedAt}
}

func (r *Repository) ListEmployees(ctx context.Context) ([]*domain.EmployeeAccount, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*domain.EmployeeAccount{}
	for rows.Next() {
		e := &domain.EmployeeAccount{}
		if err := rows.Scan(employeeDst(e)...); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, employee *domain.EmployeeAccount) error {
	query := `
		INSERT INTO employees (id, username, email, phone_number, role, status, real_name, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	employee.Role = employee.Role.OrDefault()
	if employee.Status == "" {
		employee.Status = domain.EmployeeStatusActive
	}
	args := []any{employee.ID, employee.Username, employee.Email, employee.PhoneNumber, string(employee.Role), string(employee.Status), employee.RealName, employee.PasswordHash}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) UpdateEmployeeStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error) {
	query := `UPDATE employees SET status = $1 WHERE id = $2 RETURNING ` + employeeColumns

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	e := &domain.EmployeeAccount{}
	if err := r.dbpool.QueryRowContext(ctx, query, string(status), id).Scan(employeeDst(e)...); err != nil {
		return nil, mapError(err)
	}

	return e, nil
}
