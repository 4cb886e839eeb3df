package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/dispatch"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/negotiation"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

// CreateRequest opens a service request and assigns it to a simulation
// employee, who answers straight away with a quote.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type     string `json:"type" validate:"required,oneof=flat-tyre out-of-fuel other-car-problems tow-truck emergency support car-battery"`
		Location string `json:"location" validate:"required"`
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
	if s.OngoingRequestID != nil {
		h.errorResponse(w, r, "a service request is already in progress")
		return
	}

	roster, err := h.roster.ListSimulationEmployees(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	employee, err := h.dispatcher.Pick(roster, nil)
	if err != nil {
		h.errorResponse(w, r, "no employee is available right now")
		return
	}

	serviceType := domain.ServiceType(req.Type)
	rec := &negotiation.Record{
		Request: domain.OngoingRequest{
			ID:                uuid.New(),
			Type:              serviceType,
			Status:            domain.RequestPending,
			Timestamp:         time.Now(),
			Location:          req.Location,
			EmployeeName:      employee.FullName,
			EmployeePhone:     dispatch.Phone(employee),
			DeclinedEmployees: []string{},
		},
	}
	if err := negotiation.SubmitQuote(rec, h.dispatcher.Quote(serviceType)); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := h.requests.Save(r.Context(), rec); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	id := rec.Request.ID
	s.OngoingRequestID = &id
	h.sessionResponse(w, r, s, nil, rec)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	h.sessionResponse(w, r, sessionFrom(r), nil, recordFrom(r))
}

func (h *Handler) GetRequestHistory(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	h.sessionResponse(w, r, s, nil, s.History())
}

// SubmitQuote is the assigned employee sending a price. Without an amount the
// simulation makes one up: a fresh quote, or a cheaper revision after a
// decline.
func (h *Handler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rec := recordFrom(r)
	var amount float64
	switch {
	case req.Amount != nil:
		amount = *req.Amount
	case rec.Dialog == nil:
		amount = h.dispatcher.Quote(rec.Request.Type)
	default:
		amount = h.dispatcher.Revise(rec.Dialog.Quote.Amount)
	}

	if err := negotiation.SubmitQuote(rec, amount); err != nil {
		switch {
		case errors.Is(err, negotiation.ErrInvalidTransition):
			h.errorResponse(w, r, "the requester is not waiting for a new quote")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if err := h.requests.Save(r.Context(), rec); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.sessionResponse(w, r, sessionFrom(r), nil, rec)
}

// QuoteAction applies a requester decision to the quote dialog.
func (h *Handler) QuoteAction(w http.ResponseWriter, r *http.Request) {
	action := negotiation.Action(chi.URLParam(r, "action"))
	if !action.Valid() {
		h.errorResponse(w, r, "unknown quote action")
		return
	}

	s := sessionFrom(r)
	rec := recordFrom(r)

	host, err := negotiation.Apply(rec, action)
	if err != nil {
		switch {
		case errors.Is(err, negotiation.ErrInvalidTransition):
			h.errorResponse(w, r, "this action is not available right now")
		case errors.Is(err, negotiation.ErrNoQuote):
			h.errorResponse(w, r, "no price quote has been received yet")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if host.Cancelled {
		if err := h.finishRequest(r.Context(), s, rec, "cancelled"); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.sessionResponse(w, r, s, nil, rec)
		return
	}

	if rec.Request.Status == domain.RequestDeclined {
		h.reassign(r.Context(), rec)
	}

	if err := h.requests.Save(r.Context(), rec); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.sessionResponse(w, r, s, nil, rec)
}

// reassign hands a finally declined request to someone not yet turned down.
// When nobody is left the request stays declined.
func (h *Handler) reassign(ctx context.Context, rec *negotiation.Record) {
	roster, err := h.roster.ListSimulationEmployees(ctx)
	if err != nil {
		slog.Error("failed to load simulation roster", "request", rec.Request.ID, "error", err)
		return
	}
	employee, err := h.dispatcher.Pick(roster, rec.Request.DeclinedEmployees)
	if err != nil {
		slog.Info("no employee left for request", "request", rec.Request.ID)
		return
	}

	negotiation.Reassign(rec, employee.FullName, dispatch.Phone(employee))
	if err := negotiation.SubmitQuote(rec, h.dispatcher.Quote(rec.Request.Type)); err != nil {
		slog.Error("failed to quote reassigned request", "request", rec.Request.ID, "error", err)
	}
}

func (h *Handler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	rec := recordFrom(r)

	if rec.Request.Status != domain.RequestAccepted {
		h.errorResponse(w, r, "only an accepted request can be completed")
		return
	}
	if err := h.finishRequest(r.Context(), s, rec, "completed"); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	h.sessionResponse(w, r, s, nil, s.History())
}

func (h *Handler) finishRequest(ctx context.Context, s *session.State, rec *negotiation.Record, status string) error {
	if err := h.requests.Delete(ctx, rec.Request.ID); err != nil {
		return err
	}

	now := time.Now()
	s.AddCompleted(domain.CompletedRequest{
		ID:            rec.Request.ID,
		Type:          rec.Request.Type,
		Date:          rec.Request.Timestamp.Format("2006-01-02"),
		Time:          rec.Request.Timestamp.Format("15:04"),
		CompletedTime: now.Format("15:04"),
		Status:        status,
		User:          s.Admin.Username,
		Employee:      rec.Request.EmployeeName,
	})
	s.OngoingRequestID = nil
	return nil
}
