// Package session keeps the per-admin dashboard state between requests: the
// management views, the chosen language, pending notifications and the
// in-flight service request.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/locale"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
	"github.com/roadsaver-dev/account-manager/backend/internal/view"
)

const MaxHistory = 20

type ViewName string

const (
	ViewDashboard  ViewName = "dashboard"
	ViewUsers      ViewName = "users"
	ViewEmployees  ViewName = "employees"
	ViewSimulation ViewName = "simulation"
)

func (v ViewName) Valid() bool {
	switch v {
	case ViewDashboard, ViewUsers, ViewEmployees, ViewSimulation:
		return true
	}
	return false
}

// Services is everything the management views read from and write to.
type Services interface {
	view.UserService
	view.EmployeeService
	view.SimulationService
}

// Message is a notification rendered in the session language.
type Message struct {
	Variant notify.Variant `json:"variant"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
}

type State struct {
	mu sync.Mutex

	ID        uuid.UUID
	Admin     *domain.Admin
	Language  locale.Language
	View      ViewName
	CreatedAt time.Time

	Users      *view.Users
	Employees  *view.Employees
	Simulation *view.Simulation

	// Dashboard holds the last counts that loaded.
	Dashboard domain.DashboardStats

	// OngoingRequestID is nil while no service request is in flight.
	OngoingRequestID *uuid.UUID

	notifications *notify.Queue
	history       []domain.CompletedRequest
}

func newState(admin *domain.Admin, svc Services) *State {
	q := &notify.Queue{}
	return &State{
		ID:            uuid.New(),
		Admin:         admin,
		Language:      locale.English,
		View:          ViewDashboard,
		CreatedAt:     time.Now(),
		Users:         view.NewUsers(svc, q),
		Employees:     view.NewEmployees(svc, q),
		Simulation:    view.NewSimulation(svc, q),
		notifications: q,
	}
}

// Lock serialises the operations of one admin.
func (s *State) Lock() {
	s.mu.Lock()
}

func (s *State) Unlock() {
	s.mu.Unlock()
}

func (s *State) Notifier() notify.Notifier {
	return s.notifications
}

// DrainNotifications returns the pending notifications in the session
// language and clears them.
func (s *State) DrainNotifications(tr *locale.Translator) []Message {
	items := s.notifications.Drain()
	msgs := make([]Message, 0, len(items))
	for _, n := range items {
		msgs = append(msgs, Message{
			Variant: n.Variant,
			Title:   tr.Translate(s.Language, n.TitleID, nil),
			Message: tr.Translate(s.Language, n.MessageID, n.Data),
		})
	}
	return msgs
}

// AddCompleted records a finished request, newest first.
func (s *State) AddCompleted(r domain.CompletedRequest) {
	s.history = append([]domain.CompletedRequest{r}, s.history...)
	if len(s.history) > MaxHistory {
		s.history = s.history[:MaxHistory]
	}
}

func (s *State) History() []domain.CompletedRequest {
	out := make([]domain.CompletedRequest, len(s.history))
	copy(out, s.history)
	return out
}
