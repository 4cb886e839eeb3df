package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSimulationNextEmployeeNumber(t *testing.T) {
	remote := &remoteMock{}
	v := NewSimulation(remote, &notify.Queue{})
	require.Equal(t, 1, v.NextEmployeeNumber())

	remote.On("ListSimulationEmployees", mock.Anything).Return([]*domain.SimulationEmployee{
		{ID: 1, EmployeeNumber: 3, FullName: "Demo A"},
		{ID: 2, EmployeeNumber: 7, FullName: "Demo B"},
	}, nil)
	require.NoError(t, v.Load(context.Background()))
	require.Equal(t, 8, v.NextEmployeeNumber())

	v.OpenCreate()
	require.True(t, v.Create.Open)
	require.Equal(t, 8, v.Create.Draft.EmployeeNumber)
}

func TestSimulationDuplicateNumberIsSubmitted(t *testing.T) {
	remote := &remoteMock{}
	q := &notify.Queue{}
	v := NewSimulation(remote, q)

	existing := &domain.SimulationEmployee{ID: 1, EmployeeNumber: 5, FullName: "Demo A"}
	duplicate := &domain.SimulationEmployee{ID: 2, EmployeeNumber: 5, FullName: "Demo B"}
	remote.On("ListSimulationEmployees", mock.Anything).Return([]*domain.SimulationEmployee{existing}, nil).Once()
	require.NoError(t, v.Load(context.Background()))

	remote.On("CreateSimulationEmployee", mock.Anything, 5, "Demo B").Return(duplicate, nil).Once()
	remote.On("ListSimulationEmployees", mock.Anything).Return([]*domain.SimulationEmployee{existing, duplicate}, nil).Once()

	err := v.CreateSimulationEmployee(context.Background(), domain.NewSimulationEmployee{EmployeeNumber: 5, FullName: "Demo B"})
	require.NoError(t, err)
	require.Len(t, v.Items(), 2)
	remote.AssertExpectations(t)
}

func TestSimulationSearchByNumber(t *testing.T) {
	remote := &remoteMock{}
	v := NewSimulation(remote, &notify.Queue{})
	remote.On("ListSimulationEmployees", mock.Anything).Return([]*domain.SimulationEmployee{
		{ID: 1, EmployeeNumber: 12, FullName: "Demo A"},
		{ID: 2, EmployeeNumber: 30, FullName: "Demo B"},
	}, nil)
	require.NoError(t, v.Load(context.Background()))

	v.SetSearch("12")
	require.Len(t, v.Filtered(), 1)
	v.SetSearch("demo b")
	require.Equal(t, int64(2), v.Filtered()[0].ID)
}

func TestSimulationDelete(t *testing.T) {
	remote := &remoteMock{}
	q := &notify.Queue{}
	v := NewSimulation(remote, q)

	remote.On("DeleteSimulationEmployee", mock.Anything, int64(4)).Return(nil).Once()
	remote.On("ListSimulationEmployees", mock.Anything).Return([]*domain.SimulationEmployee{}, nil).Once()
	require.NoError(t, v.Delete(context.Background(), 4))

	remote.On("DeleteSimulationEmployee", mock.Anything, int64(5)).Return(errors.New("gone")).Once()
	require.Error(t, v.Delete(context.Background(), 5))

	items := q.Drain()
	require.Len(t, items, 2)
	require.Equal(t, "simulation.deleted", items[0].MessageID)
	require.Equal(t, "simulation.delete_failed", items[1].MessageID)
	remote.AssertExpectations(t)
}

func TestSimulationStats(t *testing.T) {
	remote := &remoteMock{}
	v := NewSimulation(remote, &notify.Queue{})
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	require.Equal(t, SimulationStats{}, v.Stats(now))

	remote.On("ListSimulationEmployees", mock.Anything).Return([]*domain.SimulationEmployee{
		{ID: 1, EmployeeNumber: 3, FullName: "Demo A", CreatedAt: now.Add(-time.Hour)},
		{ID: 2, EmployeeNumber: 9, FullName: "Demo B", CreatedAt: now.Add(-6 * 24 * time.Hour)},
		{ID: 3, EmployeeNumber: 4, FullName: "Demo C", CreatedAt: now.Add(-8 * 24 * time.Hour)},
	}, nil)
	require.NoError(t, v.Load(context.Background()))

	require.Equal(t, SimulationStats{Total: 3, HighestNumber: 9, AddedThisWeek: 2}, v.Stats(now))
}
