package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

func simulationResult(s *session.State) ListResult[*domain.SimulationEmployee, domain.NewSimulationEmployee] {
	return ListResult[*domain.SimulationEmployee, domain.NewSimulationEmployee]{
		Page:         s.Simulation.Page(),
		CreateDialog: s.Simulation.Create,
		Stats:        s.Simulation.Stats(time.Now()),
	}
}

func (h *Handler) GetSimulationEmployees(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := applyListQuery(s.Simulation.List, r); err != nil {
		h.badRequest(w, r, err)
		return
	}

	err := fetchList(s.Simulation.List, r)
	h.sessionResponse(w, r, s, err, simulationResult(s))
}

func (h *Handler) GetNextEmployeeNumber(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	h.sessionResponse(w, r, s, nil, map[string]int{"employeeNumber": s.Simulation.NextEmployeeNumber()})
}

func (h *Handler) OpenCreateSimulationEmployee(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Simulation.OpenCreate()
	h.sessionResponse(w, r, s, nil, s.Simulation.Create)
}

func (h *Handler) CloseCreateSimulationEmployee(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Simulation.CloseCreate()
	h.sessionResponse(w, r, s, nil, s.Simulation.Create)
}

func (h *Handler) CreateSimulationEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeNumber int    `json:"employeeNumber"`
		FullName       string `json:"fullName"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s := sessionFrom(r)
	err := s.Simulation.CreateSimulationEmployee(r.Context(), domain.NewSimulationEmployee{
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
	})
	h.sessionResponse(w, r, s, err, simulationResult(s))
}

func (h *Handler) DeleteSimulationEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid simulation employee id")
		return
	}

	s := sessionFrom(r)
	err = s.Simulation.Delete(r.Context(), id)
	h.sessionResponse(w, r, s, err, simulationResult(s))
}
