package repository

import (
	"context"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

func (r *Repository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE status = 'active'),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE status = 'active'),
			(SELECT COUNT(*) FROM employee_simulation)
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	s := &domain.DashboardStats{}
	dst := []any{&s.Users, &s.ActiveUsers, &s.Employees, &s.ActiveEmployees, &s.SimulationEmployees}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return s, nil
}
