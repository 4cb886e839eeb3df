package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

const wsWriteTimeout = 10 * time.Second

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || origin == h.config.Server.AllowedOrigin
}

// QuoteUpdates streams every saved version of the session's in-flight request.
// A "null" frame means the request is gone and closes the stream.
func (h *Handler) QuoteUpdates(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, "invalid request id")
		return
	}

	s.Lock()
	owned := s.OngoingRequestID != nil && *s.OngoingRequestID == id
	s.Unlock()
	if !owned {
		h.errorResponse(w, r, "request not found")
		return
	}

	rec, err := h.requests.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "request not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates, unsubscribe := h.requests.Subscribe(ctx, id)
	defer func() { _ = unsubscribe() }()

	// the client sends nothing, reading only notices it going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(rec); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			if string(data) == "null" {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "request finished"))
				return
			}
		}
	}
}
