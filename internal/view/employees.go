package view

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*domain.EmployeeAccount, error)
	CreateEmployee(ctx context.Context, form domain.NewEmployee) (*domain.EmployeeAccount, error)
	UpdateEmployeeStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error)
}

type EmployeeStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Technicians int `json:"technicians"`
	Suspended   int `json:"suspended"`
}

type Employees struct {
	*List[*domain.EmployeeAccount]
	Create CreateDialog[domain.NewEmployee]

	svc      EmployeeService
	notifier notify.Notifier
}

func NewEmployees(svc EmployeeService, n notify.Notifier) *Employees {
	return &Employees{
		List:     NewList[*domain.EmployeeAccount]("employees", svc.ListEmployees, n, "employees.load_failed"),
		Create:   CreateDialog[domain.NewEmployee]{Draft: domain.DefaultNewEmployee()},
		svc:      svc,
		notifier: n,
	}
}

// Stats counts a missing status as active. Only an explicit technician role
// counts as a technician.
func (v *Employees) Stats() EmployeeStats {
	var s EmployeeStats
	for _, e := range v.Items() {
		s.Total++
		switch e.Status {
		case domain.EmployeeStatusActive, "":
			s.Active++
		case domain.EmployeeStatusSuspended:
			s.Suspended++
		case domain.EmployeeStatusInactive:
		}
		if e.Role == domain.EmployeeRoleTechnician {
			s.Technicians++
		}
	}
	return s
}

func (v *Employees) OpenCreate() {
	v.Create = CreateDialog[domain.NewEmployee]{Open: true, Draft: domain.DefaultNewEmployee()}
}

func (v *Employees) CloseCreate() {
	v.Create.Open = false
}

func (v *Employees) CreateEmployee(ctx context.Context, form domain.NewEmployee) error {
	v.Create.Open = true
	v.Create.Draft = form
	if !form.Complete() {
		return ErrIncomplete
	}
	form.Role = form.Role.OrDefault()

	if _, err := v.svc.CreateEmployee(ctx, form); err != nil {
		slog.Error("failed to create employee", "username", form.Username, "error", err)
		v.notifier.Notify(notify.Failure(createFailureID(err, "employees.create_failed"), nil))
		return err
	}

	v.Create = CreateDialog[domain.NewEmployee]{Draft: domain.DefaultNewEmployee()}
	v.notifier.Notify(notify.Success("employees.created", nil))
	_ = v.Load(ctx)
	return nil
}

func (v *Employees) SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	employee, err := v.svc.UpdateEmployeeStatus(ctx, id, status)
	if err != nil {
		slog.Error("failed to update employee status", "id", id, "status", status, "error", err)
		v.notifier.Notify(notify.Failure("employees.status_failed", nil))
		return err
	}

	var msgID string
	switch status {
	case domain.EmployeeStatusSuspended:
		msgID = "employees.suspended"
	case domain.EmployeeStatusInactive:
		msgID = "employees.deactivated"
	case domain.EmployeeStatusActive:
		msgID = "employees.activated"
	}
	v.notifier.Notify(notify.Success(msgID, map[string]any{"Username": employee.Username}))
	_ = v.Load(ctx)
	return nil
}

// ToggleStatus suspends an employee, or reactivates a suspended one.
func (v *Employees) ToggleStatus(ctx context.Context, id uuid.UUID) error {
	for _, e := range v.Items() {
		if e.ID == id {
			return v.SetStatus(ctx, id, e.Status.Toggled())
		}
	}
	return domain.ErrNotFound
}
