package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
)

type SimulationService interface {
	ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error)
	CreateSimulationEmployee(ctx context.Context, number int, fullName string) (*domain.SimulationEmployee, error)
	DeleteSimulationEmployee(ctx context.Context, id int64) error
}

const recentWindow = 7 * 24 * time.Hour

type SimulationStats struct {
	Total         int `json:"total"`
	HighestNumber int `json:"highestNumber"`
	AddedThisWeek int `json:"addedThisWeek"`
}

type Simulation struct {
	*List[*domain.SimulationEmployee]
	Create CreateDialog[domain.NewSimulationEmployee]

	svc      SimulationService
	notifier notify.Notifier
}

func NewSimulation(svc SimulationService, n notify.Notifier) *Simulation {
	return &Simulation{
		List:     NewList[*domain.SimulationEmployee]("simulation", svc.ListSimulationEmployees, n, "simulation.load_failed"),
		svc:      svc,
		notifier: n,
	}
}

// Stats counts as added this week whatever was created in the seven days
// before now.
func (v *Simulation) Stats(now time.Time) SimulationStats {
	var s SimulationStats
	for _, e := range v.Items() {
		s.Total++
		if e.EmployeeNumber > s.HighestNumber {
			s.HighestNumber = e.EmployeeNumber
		}
		if e.CreatedAt.After(now.Add(-recentWindow)) {
			s.AddedThisWeek++
		}
	}
	return s
}

// NextEmployeeNumber suggests one past the highest loaded number.
func (v *Simulation) NextEmployeeNumber() int {
	next := 1
	for _, e := range v.Items() {
		if e.EmployeeNumber >= next {
			next = e.EmployeeNumber + 1
		}
	}
	return next
}

func (v *Simulation) OpenCreate() {
	v.Create = CreateDialog[domain.NewSimulationEmployee]{
		Open:  true,
		Draft: domain.NewSimulationEmployee{EmployeeNumber: v.NextEmployeeNumber()},
	}
}

func (v *Simulation) CloseCreate() {
	v.Create.Open = false
}

// CreateSimulationEmployee sends the number as typed. Duplicates are left to
// the database.
func (v *Simulation) CreateSimulationEmployee(ctx context.Context, form domain.NewSimulationEmployee) error {
	v.Create.Open = true
	v.Create.Draft = form
	if !form.Complete() {
		return ErrIncomplete
	}

	if _, err := v.svc.CreateSimulationEmployee(ctx, form.EmployeeNumber, form.FullName); err != nil {
		slog.Error("failed to create simulation employee", "employee_number", form.EmployeeNumber, "error", err)
		v.notifier.Notify(notify.Failure("simulation.create_failed", nil))
		return err
	}

	v.Create = CreateDialog[domain.NewSimulationEmployee]{}
	v.notifier.Notify(notify.Success("simulation.created", nil))
	_ = v.Load(ctx)
	return nil
}

func (v *Simulation) Delete(ctx context.Context, id int64) error {
	if err := v.svc.DeleteSimulationEmployee(ctx, id); err != nil {
		slog.Error("failed to delete simulation employee", "id", id, "error", err)
		v.notifier.Notify(notify.Failure("simulation.delete_failed", nil))
		return err
	}

	v.notifier.Notify(notify.Success("simulation.deleted", nil))
	_ = v.Load(ctx)
	return nil
}
