package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

const userColumns = `id, username, email, phone_number, full_name, gender, password_hash, created_by_admin, status, created_at`

func userDst(u *domain.UserAccount) []any {
	return []any{&u.ID, &u.Username, &u.Email, &u.PhoneNumber, &u.FullName, &u.Gender, &u.PasswordHash, &u.CreatedByAdmin, &u.Status, &u.CreatedAt}
}

func (r *Repository) ListUsers(ctx context.Context) ([]*domain.UserAccount, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*domain.UserAccount{}
	for rows.Next() {
		u := &domain.UserAccount{}
		if err := rows.Scan(userDst(u)...); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.UserAccount) error {
	query := `
		INSERT INTO users (id, username, email, phone_number, full_name, gender, password_hash, created_by_admin, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	args := []any{user.ID, user.Username, user.Email, user.PhoneNumber, user.FullName, user.Gender, user.PasswordHash, user.CreatedByAdmin, string(user.Status)}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) UpdateUserStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error) {
	query := `UPDATE users SET status = $1 WHERE id = $2 RETURNING ` + userColumns

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	u := &domain.UserAccount{}
	if err := r.dbpool.QueryRowContext(ctx, query, string(status), id).Scan(userDst(u)...); err != nil {
		return nil, mapError(err)
	}

	return u, nil
}
