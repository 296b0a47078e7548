package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/civicdesk-backend/internal/config"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
}

type metricsExporter interface {
	Handler() http.Handler
	Middleware(next http.Handler) http.Handler
}

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger   *slog.Logger
	Health   *HealthHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Dispatch *DispatchHandler
	Sync     *SyncHandler
	Tokens   tokenValidator
	Limiter  *middleware.RateLimiter

	// Metrics is optional; nil disables the exposition route and HTTP histograms.
	Metrics     metricsExporter
	MetricsPath string

	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// NewRouter builds the HTTP handler tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Method(http.MethodGet, d.MetricsPath, d.Metrics.Handler())
	}

	requestLog := middleware.Logger(d.Logger)

	r.Group(func(r chi.Router) {
		r.Use(requestLog)
		r.Get("/live", d.Health.Live)
		r.Get("/ready", d.Health.Ready)
		r.Get("/health", d.Health.Health)
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(d.Limiter.Limit("auth", d.RateLimit.AuthPerMinute), requestLog)
			r.Post("/auth/register", d.Auth.Register)
			r.Post("/auth/login", d.Auth.Login)
		})

		// Logger sits inside Auth so request logs carry the actor.
		r.Group(func(r chi.Router) {
			r.Use(
				d.Limiter.Limit("api", d.RateLimit.APIPerMinute),
				middleware.Auth(d.Tokens),
				requestLog,
				middleware.RequireActor,
			)

			r.Get("/me", d.Auth.Me)

			r.Post("/mutate", d.Dispatch.Mutate)
			r.Post("/query", d.Dispatch.Query)

			r.Route("/sync", func(r chi.Router) {
				r.Post("/push", d.Sync.Push)
				r.Post("/query", d.Sync.Query)
				r.Get("/schema", d.Sync.Schema)
			})

			r.With(middleware.RequireAdmin).Post("/admin/staff", d.Admin.ProvisionStaff)
		})
	})

	return r
}
