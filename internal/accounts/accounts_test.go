package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var _ session.Services = (*Service)(nil)

type storeMock struct{ mock.Mock }

func (m *storeMock) ListUsers(ctx context.Context) ([]*domain.UserAccount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.UserAccount), args.Error(1)
}

func (m *storeMock) CreateUser(ctx context.Context, user *domain.UserAccount) error {
	return m.Called(ctx, user).Error(0)
}

func (m *storeMock) UpdateUserStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *storeMock) ListEmployees(ctx context.Context) ([]*domain.EmployeeAccount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.EmployeeAccount), args.Error(1)
}

func (m *storeMock) CreateEmployee(ctx context.Context, employee *domain.EmployeeAccount) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *storeMock) UpdateEmployeeStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeAccount), args.Error(1)
}

func (m *storeMock) ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.SimulationEmployee), args.Error(1)
}

func (m *storeMock) CreateSimulationEmployee(ctx context.Context, se *domain.SimulationEmployee) error {
	return m.Called(ctx, se).Error(0)
}

func (m *storeMock) DeleteSimulationEmployee(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mailMock struct{ mock.Mock }

func (m *mailMock) Publish(ctx context.Context, msg domain.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func TestCreateUserMailsGeneratedPassword(t *testing.T) {
	store, mail := &storeMock{}, &mailMock{}
	svc := NewService(store, mail, 12)

	var stored *domain.UserAccount
	store.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.UserAccount")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.UserAccount) }).
		Return(nil).Once()

	var sent domain.MailMessage
	mail.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(domain.MailMessage) }).
		Return(nil).Once()

	user, err := svc.CreateUser(context.Background(), domain.NewUser{Username: "ivan", Email: "ivan@abv.bg"})
	require.NoError(t, err)
	require.Same(t, stored, user)
	require.True(t, user.CreatedByAdmin)
	require.Equal(t, domain.UserStatusActive, user.Status)
	require.NotEqual(t, uuid.Nil, user.ID)

	require.Equal(t, domain.MailCreateUser, sent.Type)
	require.Equal(t, "ivan@abv.bg", sent.To)
	data := sent.Data.(domain.CreateAccountMailData)
	require.Len(t, data.Password, 12)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password)))

	store.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestCreateUserConflictSendsNoMail(t *testing.T) {
	store, mail := &storeMock{}, &mailMock{}
	svc := NewService(store, mail, 12)
	store.On("CreateUser", mock.Anything, mock.Anything).Return(domain.ErrEmailTaken).Once()

	_, err := svc.CreateUser(context.Background(), domain.NewUser{Username: "ivan", Email: "ivan@abv.bg"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	mail.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMailFailureDoesNotFailCreate(t *testing.T) {
	store, mail := &storeMock{}, &mailMock{}
	svc := NewService(store, mail, 8)
	store.On("CreateEmployee", mock.Anything, mock.Anything).Return(nil).Once()
	mail.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()

	e, err := svc.CreateEmployee(context.Background(), domain.NewEmployee{RealName: "Petar Dimitrov", Username: "petar", Email: "petar@roadsaver.bg"})
	require.NoError(t, err)
	require.Equal(t, domain.EmployeeRoleTechnician, e.Role)
	require.Equal(t, domain.EmployeeStatusActive, e.Status)
}

func TestUpdateEmployeeStatusMailsLabel(t *testing.T) {
	store, mail := &storeMock{}, &mailMock{}
	svc := NewService(store, mail, 12)

	id := uuid.New()
	updated := &domain.EmployeeAccount{ID: id, Username: "petar", Email: "petar@roadsaver.bg", Status: domain.EmployeeStatusSuspended}
	store.On("UpdateEmployeeStatus", mock.Anything, id, domain.EmployeeStatusSuspended).Return(updated, nil).Once()
	mail.On("Publish", mock.Anything, domain.MailMessage{
		Type: domain.MailAccountStatus,
		To:   "petar@roadsaver.bg",
		Data: domain.AccountStatusMailData{FullName: "petar", Username: "petar", Status: "Suspended"},
	}).Return(nil).Once()

	got, err := svc.UpdateEmployeeStatus(context.Background(), id, domain.EmployeeStatusSuspended)
	require.NoError(t, err)
	require.Same(t, updated, got)
	mail.AssertExpectations(t)
}

func TestUpdateStatusNotFound(t *testing.T) {
	store, mail := &storeMock{}, &mailMock{}
	svc := NewService(store, mail, 12)
	id := uuid.New()
	store.On("UpdateUserStatus", mock.Anything, id, domain.UserStatusBanned).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.UpdateUserStatus(context.Background(), id, domain.UserStatusBanned)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateUserStatus(context.Background(), id, domain.UserStatus("gone"))
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	mail.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateSimulationEmployee(t *testing.T) {
	store := &storeMock{}
	svc := NewService(store, &mailMock{}, 12)
	store.On("CreateSimulationEmployee", mock.Anything, &domain.SimulationEmployee{EmployeeNumber: 4, FullName: "Demo"}).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.SimulationEmployee).ID = 9 }).
		Return(nil).Once()

	se, err := svc.CreateSimulationEmployee(context.Background(), 4, "Demo")
	require.NoError(t, err)
	require.Equal(t, int64(9), se.ID)
}
