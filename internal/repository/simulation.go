package repository

import (
	"context"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

func (r *Repository) ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error) {
	query := `
		SELECT id, employee_number, full_name, created_at
		FROM employee_simulation
		ORDER BY employee_number, id
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*domain.SimulationEmployee{}
	for rows.Next() {
		se := &domain.SimulationEmployee{}
		if err := rows.Scan(&se.ID, &se.EmployeeNumber, &se.FullName, &se.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, se)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CreateSimulationEmployee(ctx context.Context, se *domain.SimulationEmployee) error {
	query := `
		INSERT INTO employee_simulation (employee_number, full_name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, se.EmployeeNumber, se.FullName).Scan(&se.ID, &se.CreatedAt); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) DeleteSimulationEmployee(ctx context.Context, id int64) error {
	query := `DELETE FROM employee_simulation WHERE id = $1`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	return nil
}
