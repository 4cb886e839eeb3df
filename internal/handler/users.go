package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

func usersResult(s *session.State) ListResult[*domain.UserAccount, domain.NewUser] {
	return ListResult[*domain.UserAccount, domain.NewUser]{
		Page:         s.Users.Page(),
		CreateDialog: s.Users.Create,
		Stats:        s.Users.Stats(),
	}
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := applyListQuery(s.Users.List, r); err != nil {
		h.badRequest(w, r, err)
		return
	}

	err := fetchList(s.Users.List, r)
	h.sessionResponse(w, r, s, err, usersResult(s))
}

func (h *Handler) OpenCreateUser(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Users.OpenCreate()
	h.sessionResponse(w, r, s, nil, s.Users.Create)
}

func (h *Handler) CloseCreateUser(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Users.CloseCreate()
	h.sessionResponse(w, r, s, nil, s.Users.Create)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		FullName    string `json:"fullName"`
		Gender      string `json:"gender"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := sessionFrom(r)
	err := s.Users.CreateUser(r.Context(), domain.NewUser{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		FullName:    req.FullName,
		Gender:      req.Gender,
	})
	h.sessionResponse(w, r, s, err, usersResult(s))
}

func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, "invalid user id")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=active banned"`
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
	err = s.Users.SetStatus(r.Context(), id, domain.UserStatus(req.Status))
	h.sessionResponse(w, r, s, err, usersResult(s))
}
