package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

func employeesResult(s *session.State) ListResult[*domain.EmployeeAccount, domain.NewEmployee] {
	return ListResult[*domain.EmployeeAccount, domain.NewEmployee]{
		Page:         s.Employees.Page(),
		CreateDialog: s.Employees.Create,
		Stats:        s.Employees.Stats(),
	}
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := applyListQuery(s.Employees.List, r); err != nil {
		h.badRequest(w, r, err)
		return
	}

	err := fetchList(s.Employees.List, r)
	h.sessionResponse(w, r, s, err, employeesResult(s))
}

func (h *Handler) OpenCreateEmployee(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Employees.OpenCreate()
	h.sessionResponse(w, r, s, nil, s.Employees.Create)
}

func (h *Handler) CloseCreateEmployee(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Employees.CloseCreate()
	h.sessionResponse(w, r, s, nil, s.Employees.Create)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RealName    string `json:"realName"`
		Username    string `json:"username"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		Role        string `json:"role" validate:"omitempty,oneof=technician supervisor manager admin"`
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
	err := s.Employees.CreateEmployee(r.Context(), domain.NewEmployee{
		RealName:    req.RealName,
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.EmployeeRole(req.Role),
	})
	h.sessionResponse(w, r, s, err, employeesResult(s))
}

func (h *Handler) UpdateEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, "invalid employee id")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=active inactive suspended"`
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
	err = s.Employees.SetStatus(r.Context(), id, domain.EmployeeStatus(req.Status))
	h.sessionResponse(w, r, s, err, employeesResult(s))
}

func (h *Handler) ToggleEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, "invalid employee id")
		return
	}

	s := sessionFrom(r)
	err = s.Employees.ToggleStatus(r.Context(), id)
	h.sessionResponse(w, r, s, err, employeesResult(s))
}
