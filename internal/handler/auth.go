package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
	"golang.org/x/crypto/bcrypt"
)

const tokenCookie = "__roadsaver_admin_token"

var errSessionExpired = errors.New("session expired")

type AuthClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	admin, err := h.admins.GetAdminByUsername(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, "invalid username or password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.errorResponse(w, r, "invalid username or password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// a cookie from an earlier login on this client is replaced below
	if old, err := h.sessionFromRequest(r); err == nil {
		h.sessions.Delete(old.ID)
	}

	s := h.sessions.Create(admin)

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		SessionID: s.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(admin.ID, 10),
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.sessions.Delete(s.ID)
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     tokenCookie,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "logged in", admin)
}

// Logout tears down the session of a valid token and always clears the
// cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if s, err := h.sessionFromRequest(r); err == nil {
		h.sessions.Delete(s.ID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:    tokenCookie,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "logged out", nil)
}

func (h *Handler) sessionFromRequest(r *http.Request) (*session.State, error) {
	cookie, err := r.Cookie(tokenCookie)
	if err != nil {
		return nil, err
	}

	claims := &AuthClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, err
	}
	s, ok := h.sessions.Get(id)
	if !ok {
		return nil, errSessionExpired
	}
	return s, nil
}
