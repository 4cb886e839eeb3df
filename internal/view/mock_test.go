package view

import (
	"context"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type remoteMock struct{ mock.Mock }

var (
	_ UserService       = (*remoteMock)(nil)
	_ EmployeeService   = (*remoteMock)(nil)
	_ SimulationService = (*remoteMock)(nil)
)

func (m *remoteMock) ListUsers(ctx context.Context) ([]*domain.UserAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserAccount), args.Error(1)
}

func (m *remoteMock) CreateUser(ctx context.Context, form domain.NewUser) (*domain.UserAccount, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *remoteMock) UpdateUserStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *remoteMock) ListEmployees(ctx context.Context) ([]*domain.EmployeeAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context) []*domain.EmployeeAccount); ok {
		return fn(ctx), args.Error(1)
	}
	return args.Get(0).([]*domain.EmployeeAccount), args.Error(1)
}

func (m *remoteMock) CreateEmployee(ctx context.Context, form domain.NewEmployee) (*domain.EmployeeAccount, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeAccount), args.Error(1)
}

func (m *remoteMock) UpdateEmployeeStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeAccount), args.Error(1)
}

func (m *remoteMock) ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SimulationEmployee), args.Error(1)
}

func (m *remoteMock) CreateSimulationEmployee(ctx context.Context, number int, fullName string) (*domain.SimulationEmployee, error) {
	args := m.Called(ctx, number, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationEmployee), args.Error(1)
}

func (m *remoteMock) DeleteSimulationEmployee(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
