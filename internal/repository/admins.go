package repository

import (
	"context"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `SELECT id, password_hash, created_at FROM admins WHERE username = $1`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	admin := &domain.Admin{Username: username}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(&admin.ID, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		return nil, mapError(err)
	}

	return admin, nil
}

func (r *Repository) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, admin.Username, admin.PasswordHash).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		return mapError(err)
	}

	return nil
}
