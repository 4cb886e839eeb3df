// Package accounts implements the account operations behind the management
// views: new accounts get a generated password that is mailed to the owner,
// and status changes are mailed as well.
package accounts

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/mailqueue"
	"github.com/roadsaver-dev/account-manager/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	ListUsers(ctx context.Context) ([]*domain.UserAccount, error)
	CreateUser(ctx context.Context, user *domain.UserAccount) error
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error)

	ListEmployees(ctx context.Context) ([]*domain.EmployeeAccount, error)
	CreateEmployee(ctx context.Context, employee *domain.EmployeeAccount) error
	UpdateEmployeeStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error)

	ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error)
	CreateSimulationEmployee(ctx context.Context, se *domain.SimulationEmployee) error
	DeleteSimulationEmployee(ctx context.Context, id int64) error
}

type Service struct {
	store          Store
	mail           mailqueue.Publisher
	passwordLength int
}

func NewService(store Store, mail mailqueue.Publisher, passwordLength int) *Service {
	return &Service{store: store, mail: mail, passwordLength: passwordLength}
}

func (s *Service) newPassword() (string, string, error) {
	password := utils.GenerateRandomPassword(s.passwordLength)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return password, string(hash), nil
}

// publish only logs a failure; the account change is already committed.
func (s *Service) publish(ctx context.Context, msg domain.MailMessage) {
	if err := s.mail.Publish(ctx, msg); err != nil {
		slog.Error("failed to queue mail", "type", msg.Type, "to", msg.To, "error", err)
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.UserAccount, error) {
	return s.store.ListUsers(ctx)
}

func (s *Service) CreateUser(ctx context.Context, form domain.NewUser) (*domain.UserAccount, error) {
	password, hash, err := s.newPassword()
	if err != nil {
		return nil, err
	}

	user := &domain.UserAccount{
		ID:             uuid.New(),
		Username:       form.Username,
		Email:          form.Email,
		PhoneNumber:    form.PhoneNumber,
		FullName:       form.FullName,
		Gender:         form.Gender,
		PasswordHash:   hash,
		CreatedByAdmin: true,
		Status:         domain.UserStatusActive,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.MailMessage{
		Type: domain.MailCreateUser,
		To:   user.Email,
		Data: domain.CreateAccountMailData{
			FullName: user.DisplayName(),
			Username: user.Username,
			Password: password,
		},
	})
	return user, nil
}

func (s *Service) UpdateUserStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	user, err := s.store.UpdateUserStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.MailMessage{
		Type: domain.MailAccountStatus,
		To:   user.Email,
		Data: domain.AccountStatusMailData{
			FullName: user.DisplayName(),
			Username: user.Username,
			Status:   user.Status.Label(),
		},
	})
	return user, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]*domain.EmployeeAccount, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, form domain.NewEmployee) (*domain.EmployeeAccount, error) {
	password, hash, err := s.newPassword()
	if err != nil {
		return nil, err
	}

	employee := &domain.EmployeeAccount{
		ID:           uuid.New(),
		Username:     form.Username,
		Email:        form.Email,
		PhoneNumber:  form.PhoneNumber,
		Role:         form.Role.OrDefault(),
		Status:       domain.EmployeeStatusActive,
		RealName:     form.RealName,
		PasswordHash: hash,
	}
	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.MailMessage{
		Type: domain.MailCreateEmployee,
		To:   employee.Email,
		Data: domain.CreateAccountMailData{
			FullName: employee.DisplayName(),
			Username: employee.Username,
			Password: password,
		},
	})
	return employee, nil
}

func (s *Service) UpdateEmployeeStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	employee, err := s.store.UpdateEmployeeStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.MailMessage{
		Type: domain.MailAccountStatus,
		To:   employee.Email,
		Data: domain.AccountStatusMailData{
			FullName: employee.DisplayName(),
			Username: employee.Username,
			Status:   employee.Status.Label(),
		},
	})
	return employee, nil
}

func (s *Service) ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error) {
	return s.store.ListSimulationEmployees(ctx)
}

func (s *Service) CreateSimulationEmployee(ctx context.Context, number int, fullName string) (*domain.SimulationEmployee, error) {
	se := &domain.SimulationEmployee{EmployeeNumber: number, FullName: fullName}
	if err := s.store.CreateSimulationEmployee(ctx, se); err != nil {
		return nil, err
	}
	return se, nil
}

func (s *Service) DeleteSimulationEmployee(ctx context.Context, id int64) error {
	return s.store.DeleteSimulationEmployee(ctx, id)
}
