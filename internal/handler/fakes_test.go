package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/negotiation"
)

var errUnavailable = errors.New("service unavailable")

// memAccounts is an in-memory stand-in for the account service and the
// repository.
type memAccounts struct {
	mu        sync.Mutex
	failLoads bool
	users     []*domain.UserAccount
	employees []*domain.EmployeeAccount
	sims      []*domain.SimulationEmployee
	nextSimID int64
}

func (m *memAccounts) ListUsers(context.Context) ([]*domain.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return nil, errUnavailable
	}
	return append([]*domain.UserAccount{}, m.users...), nil
}

func (m *memAccounts) CreateUser(_ context.Context, form domain.NewUser) (*domain.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == form.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	u := &domain.UserAccount{ID: uuid.New(), Username: form.Username, Email: form.Email, FullName: form.FullName, CreatedByAdmin: true, Status: domain.UserStatusActive}
	m.users = append(m.users, u)
	return u, nil
}

func (m *memAccounts) UpdateUserStatus(_ context.Context, id uuid.UUID, status domain.UserStatus) (*domain.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			u.Status = status
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memAccounts) ListEmployees(context.Context) ([]*domain.EmployeeAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return nil, errUnavailable
	}
	out := make([]*domain.EmployeeAccount, 0, len(m.employees))
	for _, e := range m.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memAccounts) CreateEmployee(_ context.Context, form domain.NewEmployee) (*domain.EmployeeAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &domain.EmployeeAccount{ID: uuid.New(), Username: form.Username, Email: form.Email, RealName: form.RealName, Role: form.Role, Status: domain.EmployeeStatusActive}
	m.employees = append(m.employees, e)
	return e, nil
}

func (m *memAccounts) UpdateEmployeeStatus(_ context.Context, id uuid.UUID, status domain.EmployeeStatus) (*domain.EmployeeAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.employees {
		if e.ID == id {
			e.Status = status
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memAccounts) ListSimulationEmployees(context.Context) ([]*domain.SimulationEmployee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return nil, errUnavailable
	}
	return append([]*domain.SimulationEmployee{}, m.sims...), nil
}

func (m *memAccounts) CreateSimulationEmployee(_ context.Context, number int, fullName string) (*domain.SimulationEmployee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSimID++
	se := &domain.SimulationEmployee{ID: m.nextSimID, EmployeeNumber: number, FullName: fullName}
	m.sims = append(m.sims, se)
	return se, nil
}

func (m *memAccounts) DeleteSimulationEmployee(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, se := range m.sims {
		if se.ID == id {
			m.sims = append(m.sims[:i], m.sims[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memAccounts) Stats(context.Context) (*domain.DashboardStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoads {
		return nil, errUnavailable
	}
	return &domain.DashboardStats{Users: len(m.users), Employees: len(m.employees), SimulationEmployees: len(m.sims)}, nil
}

type memAdmins map[string]*domain.Admin

func (m memAdmins) GetAdminByUsername(_ context.Context, username string) (*domain.Admin, error) {
	a, ok := m[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// memRequests keeps records as JSON like the redis store does.
type memRequests struct {
	mu      sync.Mutex
	records map[uuid.UUID][]byte
}

func newMemRequests() *memRequests {
	return &memRequests{records: make(map[uuid.UUID][]byte)}
}

func (m *memRequests) Get(_ context.Context, id uuid.UUID) (*negotiation.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec := &negotiation.Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (m *memRequests) Save(_ context.Context, rec *negotiation.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Request.ID] = data
	return nil
}

func (m *memRequests) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *memRequests) Subscribe(context.Context, uuid.UUID) (<-chan []byte, func() error) {
	ch := make(chan []byte)
	close(ch)
	return ch, func() error { return nil }
}

func (m *memRequests) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
