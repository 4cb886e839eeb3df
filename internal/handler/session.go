package handler

import (
	"log/slog"
	"net/http"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/locale"
	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

type SessionInfo struct {
	Admin            *domain.Admin             `json:"admin"`
	Language         locale.Language           `json:"language"`
	View             session.ViewName          `json:"view"`
	OngoingRequestID any                       `json:"ongoingRequestId"`
	History          []domain.CompletedRequest `json:"history"`
}

func sessionInfo(s *session.State) SessionInfo {
	info := SessionInfo{
		Admin:    s.Admin,
		Language: s.Language,
		View:     s.View,
		History:  s.History(),
	}
	if s.OngoingRequestID != nil {
		info.OngoingRequestID = s.OngoingRequestID.String()
	}
	return info
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	h.sessionResponse(w, r, s, nil, sessionInfo(s))
}

func (h *Handler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language" validate:"required,oneof=en bg"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := sessionFrom(r)
	s.Language = locale.Language(req.Language)
	h.sessionResponse(w, r, s, nil, sessionInfo(s))
}

// UpdateView switches the shown view. Management views load their collection
// when they are entered.
func (h *Handler) UpdateView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		View string `json:"view" validate:"required,oneof=dashboard users employees simulation"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := sessionFrom(r)
	s.View = session.ViewName(req.View)

	switch s.View {
	case session.ViewUsers:
		_ = s.Users.Load(r.Context())
	case session.ViewEmployees:
		_ = s.Employees.Load(r.Context())
	case session.ViewSimulation:
		_ = s.Simulation.Load(r.Context())
	case session.ViewDashboard:
	}

	h.sessionResponse(w, r, s, nil, sessionInfo(s))
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	h.sessionResponse(w, r, s, nil, nil)
}

// GetDashboard answers with the previous counts when the query fails.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		slog.Error("failed to load dashboard statistics", "error", err)
		s.Notifier().Notify(notify.Failure("dashboard.load_failed", nil))
		h.sessionResponse(w, r, s, err, s.Dashboard)
		return
	}

	s.Dashboard = *stats
	h.sessionResponse(w, r, s, nil, s.Dashboard)
}
