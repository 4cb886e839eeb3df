package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/roadsaver-dev/account-manager/backend/internal/config"
	"github.com/roadsaver-dev/account-manager/backend/internal/dispatch"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/locale"
	"github.com/roadsaver-dev/account-manager/backend/internal/negotiation"
	"github.com/roadsaver-dev/account-manager/backend/internal/session"
)

type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

type StatsSource interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type Roster interface {
	ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error)
}

// RequestStore keeps the in-flight service requests. *negotiation.RedisStore
// is the production implementation.
type RequestStore interface {
	Get(ctx context.Context, id uuid.UUID) (*negotiation.Record, error)
	Save(ctx context.Context, rec *negotiation.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	Subscribe(ctx context.Context, id uuid.UUID) (<-chan []byte, func() error)
}

type Deps struct {
	Admins     AdminStore
	Stats      StatsSource
	Roster     Roster
	Requests   RequestStore
	Sessions   *session.Registry
	Messages   *locale.Translator
	Dispatcher *dispatch.Dispatcher
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	upgrader   websocket.Upgrader

	admins     AdminStore
	stats      StatsSource
	roster     Roster
	requests   RequestStore
	sessions   *session.Registry
	messages   *locale.Translator
	dispatcher *dispatch.Dispatcher

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, deps Deps) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	h := &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,

		admins:     deps.Admins,
		stats:      deps.Stats,
		roster:     deps.Roster,
		requests:   deps.Requests,
		sessions:   deps.Sessions,
		messages:   deps.Messages,
		dispatcher: deps.Dispatcher,

		Mux: chi.NewRouter(),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.config.Server.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	h.Mux.Use(httprate.LimitByIP(h.config.Server.RateLimit, time.Minute))

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below needs a logged in admin
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(h.lockSession)

			r.Route("/session", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Patch("/language", h.UpdateLanguage)
				r.Patch("/view", h.UpdateView)
				r.Get("/notifications", h.GetNotifications)
			})

			r.Get("/dashboard", h.GetDashboard)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.GetUsers)
				r.Post("/", h.CreateUser)
				r.Post("/create-dialog", h.OpenCreateUser)
				r.Delete("/create-dialog", h.CloseCreateUser)
				r.Patch("/{id}/status", h.UpdateUserStatus)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.GetEmployees)
				r.Post("/", h.CreateEmployee)
				r.Post("/create-dialog", h.OpenCreateEmployee)
				r.Delete("/create-dialog", h.CloseCreateEmployee)
				r.Patch("/{id}/status", h.UpdateEmployeeStatus)
				r.Post("/{id}/toggle-status", h.ToggleEmployeeStatus)
			})

			r.Route("/simulation-employees", func(r chi.Router) {
				r.Get("/", h.GetSimulationEmployees)
				r.Post("/", h.CreateSimulationEmployee)
				r.Get("/next-number", h.GetNextEmployeeNumber)
				r.Post("/create-dialog", h.OpenCreateSimulationEmployee)
				r.Delete("/create-dialog", h.CloseCreateSimulationEmployee)
				r.Delete("/{id}", h.DeleteSimulationEmployee)
			})
		})

		r.Route("/requests", func(r chi.Router) {
			r.With(h.lockSession).Post("/", h.CreateRequest)
			r.With(h.lockSession).Get("/history", h.GetRequestHistory)
			r.Route("/{id}", func(r chi.Router) {
				// the websocket outlives the request, it must not hold the session lock
				r.Get("/ws", h.QuoteUpdates)

				r.Group(func(r chi.Router) {
					r.Use(h.lockSession)
					r.Use(h.ongoingRequest)
					r.Get("/", h.GetRequest)
					r.Post("/quote", h.SubmitQuote)
					r.Post("/quote/{action}", h.QuoteAction)
					r.Post("/complete", h.CompleteRequest)
				})
			})
		})
	})
}
