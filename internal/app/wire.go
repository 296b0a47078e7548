package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/attachment"
	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/staffprofile"
	ticketrepo "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/ticket"
	"github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/ticketevent"
	userrepo "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/civicdesk-backend/internal/auth"
	"github.com/heartmarshall/civicdesk-backend/internal/config"
	"github.com/heartmarshall/civicdesk-backend/internal/metrics"
	authsvc "github.com/heartmarshall/civicdesk-backend/internal/service/auth"
	ticketsvc "github.com/heartmarshall/civicdesk-backend/internal/service/ticket"
	usersvc "github.com/heartmarshall/civicdesk-backend/internal/service/user"
	"github.com/heartmarshall/civicdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/civicdesk-backend/internal/transport/operation"
	"github.com/heartmarshall/civicdesk-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and transport on top of pool and
// returns the HTTP handler. stop releases background resources owned by the
// handler; the pool stays with the caller.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, reg *prometheus.Registry) (_ http.Handler, stop func(), _ error) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	profiles := staffprofile.New(pool)
	tickets := ticketrepo.New(pool)
	events := ticketevent.New(pool)
	attachments := attachment.New(pool)

	m := metrics.New(reg)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, profiles, txm, cfg.Auth.PasswordHashCost)
	ticketService := ticketsvc.NewService(logger, tickets, events, attachments, users, profiles, txm, m, cfg.Ticket)

	catalog, err := operation.NewCatalog(ticketService)
	if err != nil {
		return nil, nil, fmt.Errorf("build operation catalog: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	deps := rest.RouterDeps{
		Logger:    logger,
		Health:    rest.NewHealthHandler(pool, Version),
		Auth:      rest.NewAuthHandler(authService, userService, logger),
		Admin:     rest.NewAdminHandler(userService, logger),
		Dispatch:  rest.NewDispatchHandler(catalog, logger),
		Sync:      rest.NewSyncHandler(catalog, txm, logger),
		Tokens:    authService,
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = m
		deps.MetricsPath = cfg.Metrics.Path
	}

	return rest.NewRouter(deps), limiter.Stop, nil
}
