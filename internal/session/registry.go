package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

// Registry holds the live sessions, keyed by the ID carried in the admin's
// token. A session lives as long as the token that names it; a zero ttl keeps
// sessions until they are deleted.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*State
	svc      Services
	ttl      time.Duration
	now      func() time.Time
}

func NewRegistry(svc Services, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*State),
		svc:      svc,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *Registry) expired(s *State) bool {
	return r.ttl > 0 && r.now().Sub(s.CreatedAt) >= r.ttl
}

// sweep drops expired sessions. r.mu must be held.
func (r *Registry) sweep() int {
	n := 0
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Create also drops every session that has expired in the meantime.
func (r *Registry) Create(admin *domain.Admin) *State {
	s := newState(admin, r.svc)

	r.mu.Lock()
	defer r.mu.Unlock()
	s.CreatedAt = r.now()
	r.sweep()
	r.sessions[s.ID] = s
	return s
}

// Get does not return an expired session and removes it.
func (r *Registry) Get(id uuid.UUID) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.expired(s) {
		delete(r.sessions, id)
		return nil, false
	}
	return s, true
}

func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep removes expired sessions and reports how many went.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweep()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
