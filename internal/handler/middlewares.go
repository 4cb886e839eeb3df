package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/negotiation"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Hijack lets the websocket upgrade through the logger.
func (rw *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.StatusCode = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // unreadable through slog
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sessionFromRequest(r)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "not logged in")
			case errors.Is(err, errSessionExpired):
				h.errorResponse(w, r, "session expired, please log in again")
			default:
				h.errorResponse(w, r, "invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), SessionCtx, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// lockSession serialises the requests of one admin.
func (h *Handler) lockSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		s.Lock()
		defer s.Unlock()
		next.ServeHTTP(w, r)
	})
}

// ongoingRequest loads the session's in-flight request named in the path.
// The session lock must be held.
func (h *Handler) ongoingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.errorResponse(w, r, "invalid request id")
			return
		}
		if s.OngoingRequestID == nil || *s.OngoingRequestID != id {
			h.errorResponse(w, r, "request not found")
			return
		}

		rec, err := h.requests.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				// expired in redis
				s.OngoingRequestID = nil
				h.errorResponse(w, r, "request not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), RequestCtx, rec)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *session.State {
	return r.Context().Value(SessionCtx).(*session.State)
}

func recordFrom(r *http.Request) *negotiation.Record {
	return r.Context().Value(RequestCtx).(*negotiation.Record)
}
