package view

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.UserAccount, error)
	CreateUser(ctx context.Context, form domain.NewUser) (*domain.UserAccount, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error)
}

type UserStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	AdminCreated int `json:"adminCreated"`
	Banned       int `json:"banned"`
}

type Users struct {
	*List[*domain.UserAccount]
	Create CreateDialog[domain.NewUser]

	svc      UserService
	notifier notify.Notifier
}

func NewUsers(svc UserService, n notify.Notifier) *Users {
	return &Users{
		List:     NewList[*domain.UserAccount]("users", svc.ListUsers, n, "users.load_failed"),
		svc:      svc,
		notifier: n,
	}
}

func (v *Users) Stats() UserStats {
	var s UserStats
	for _, u := range v.Items() {
		s.Total++
		if u.Status == domain.UserStatusBanned {
			s.Banned++
		} else {
			s.Active++
		}
		if u.CreatedByAdmin {
			s.AdminCreated++
		}
	}
	return s
}

func (v *Users) OpenCreate() {
	v.Create = CreateDialog[domain.NewUser]{Open: true}
}

func (v *Users) CloseCreate() {
	v.Create.Open = false
}

// CreateUser submits the form. A failed submission keeps the dialog open with
// the typed values.
func (v *Users) CreateUser(ctx context.Context, form domain.NewUser) error {
	v.Create.Open = true
	v.Create.Draft = form
	if !form.Complete() {
		return ErrIncomplete
	}

	user, err := v.svc.CreateUser(ctx, form)
	if err != nil {
		slog.Error("failed to create user", "username", form.Username, "error", err)
		v.notifier.Notify(notify.Failure(createFailureID(err, "users.create_failed"), nil))
		return err
	}

	v.Create = CreateDialog[domain.NewUser]{}
	v.notifier.Notify(notify.Success("users.created", map[string]any{"Username": user.Username}))
	_ = v.Load(ctx)
	return nil
}

// SetStatus bans or unbans a user.
func (v *Users) SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	okID, failID := "users.unbanned", "users.unban_failed"
	if status == domain.UserStatusBanned {
		okID, failID = "users.banned", "users.ban_failed"
	}

	user, err := v.svc.UpdateUserStatus(ctx, id, status)
	if err != nil {
		slog.Error("failed to update user status", "id", id, "status", status, "error", err)
		v.notifier.Notify(notify.Failure(failID, nil))
		return err
	}

	v.notifier.Notify(notify.Success(okID, map[string]any{"Username": user.Username}))
	_ = v.Load(ctx)
	return nil
}

func createFailureID(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return "accounts.username_taken"
	case errors.Is(err, domain.ErrEmailTaken):
		return "accounts.email_taken"
	default:
		return fallback
	}
}
