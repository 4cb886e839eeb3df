package view

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// statusRemote keeps a single employee whose status follows every update.
func statusRemote(e *domain.EmployeeAccount) *remoteMock {
	remote := &remoteMock{}
	remote.On("ListEmployees", mock.Anything).Return(func(context.Context) []*domain.EmployeeAccount {
		cp := *e
		return []*domain.EmployeeAccount{&cp}
	}, nil)
	remote.On("UpdateEmployeeStatus", mock.Anything, e.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			e.Status = args.Get(2).(domain.EmployeeStatus)
		}).
		Return(e, nil)
	return remote
}

func TestEmployeesToggleRoundTrip(t *testing.T) {
	e := &domain.EmployeeAccount{ID: uuid.New(), Username: "tech1", Status: domain.EmployeeStatusActive}
	q := &notify.Queue{}
	v := NewEmployees(statusRemote(e), q)
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	require.Equal(t, "Active", v.Items()[0].Status.Label())

	require.NoError(t, v.ToggleStatus(ctx, e.ID))
	require.Equal(t, "Suspended", v.Items()[0].Status.Label())

	require.NoError(t, v.ToggleStatus(ctx, e.ID))
	require.Equal(t, "Active", v.Items()[0].Status.Label())

	items := q.Drain()
	require.Len(t, items, 2)
	require.Equal(t, "employees.suspended", items[0].MessageID)
	require.Equal(t, "employees.activated", items[1].MessageID)
	require.Equal(t, "tech1", items[1].Data["Username"])
}

func TestEmployeesToggleUnknownID(t *testing.T) {
	v := NewEmployees(&remoteMock{}, &notify.Queue{})
	require.ErrorIs(t, v.ToggleStatus(context.Background(), uuid.New()), domain.ErrNotFound)
}

func TestEmployeesLoadFailureRaisesOneNotification(t *testing.T) {
	remote := &remoteMock{}
	q := &notify.Queue{}
	v := NewEmployees(remote, q)
	remote.On("ListEmployees", mock.Anything).Return(nil, errors.New("simulated service exception"))

	require.Error(t, v.Load(context.Background()))
	require.Empty(t, v.Page().Items)

	items := q.Drain()
	require.Len(t, items, 1)
	require.Equal(t, "employees.load_failed", items[0].MessageID)
}

func TestEmployeesCreateDefaults(t *testing.T) {
	remote := &remoteMock{}
	q := &notify.Queue{}
	v := NewEmployees(remote, q)

	v.OpenCreate()
	require.Equal(t, "+359", v.Create.Draft.PhoneNumber)
	require.Equal(t, domain.EmployeeRoleTechnician, v.Create.Draft.Role)

	form := domain.NewEmployee{RealName: "Petar Dimitrov", Username: "petar", Email: "petar@roadsaver.bg", PhoneNumber: "+359"}
	expected := form
	expected.Role = domain.EmployeeRoleTechnician
	remote.On("CreateEmployee", mock.Anything, expected).Return(&domain.EmployeeAccount{Username: "petar"}, nil).Once()
	remote.On("ListEmployees", mock.Anything).Return([]*domain.EmployeeAccount{}, nil).Once()

	require.NoError(t, v.CreateEmployee(context.Background(), form))
	require.False(t, v.Create.Open)
	require.Equal(t, domain.DefaultNewEmployee(), v.Create.Draft)
	remote.AssertExpectations(t)
}

func TestEmployeesCreateRequiresRealName(t *testing.T) {
	remote := &remoteMock{}
	v := NewEmployees(remote, &notify.Queue{})

	err := v.CreateEmployee(context.Background(), domain.NewEmployee{Username: "petar", Email: "petar@roadsaver.bg"})
	require.ErrorIs(t, err, ErrIncomplete)
	remote.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestEmployeesStats(t *testing.T) {
	remote := &remoteMock{}
	v := NewEmployees(remote, &notify.Queue{})
	remote.On("ListEmployees", mock.Anything).Return([]*domain.EmployeeAccount{
		{Username: "a", Role: domain.EmployeeRoleTechnician, Status: domain.EmployeeStatusActive},
		{Username: "b", Role: domain.EmployeeRoleTechnician},
		{Username: "c", Role: domain.EmployeeRoleManager, Status: domain.EmployeeStatusSuspended},
		{Username: "d", Status: domain.EmployeeStatusInactive},
	}, nil)
	require.NoError(t, v.Load(context.Background()))

	require.Equal(t, EmployeeStats{Total: 4, Active: 2, Technicians: 2, Suspended: 1}, v.Stats())
}
