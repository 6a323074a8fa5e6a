// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fintrack-api/internal/api/handler"
	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/metrics"
)

// Handlers bundles the resource handlers the router wires up.
type Handlers struct {
	Auth        *handler.AuthHandler
	Platform    *handler.PlatformHandler
	Account     *handler.AccountHandler
	Transaction *handler.TransactionHandler
	Goal        *handler.GoalHandler
	Analytics   *handler.AnalyticsHandler
	Advice      *handler.AdviceHandler
	Report      *handler.ReportHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, authenticator *apimw.Authenticator, collector *metrics.Collector, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(collector.Middleware)

	// Unauthenticated endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Handle("/metrics", collector.Handler())
	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Get("/platforms", h.Platform.List)

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(authenticator.RequireUser)

		r.Get("/me", h.Auth.Me)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.Account.Create)
			r.Get("/", h.Account.List)
			r.Put("/{accountID}/balance", h.Account.UpdateBalance)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.Transaction.Create)
			r.Get("/", h.Transaction.List)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", h.Goal.Create)
			r.Get("/", h.Goal.List)
			r.Put("/{goalID}/progress", h.Goal.UpdateProgress)
			r.Put("/{goalID}", h.Goal.Update)
			r.Delete("/{goalID}", h.Goal.Delete)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", h.Analytics.Overview)
			r.Get("/monthly/{year}/{month}", h.Analytics.Monthly)
		})

		r.Post("/ai/advice", h.Advice.Advise)
		r.Get("/reports/statement/{year}/{month}", h.Report.MonthlyStatement)
	})

	return r
}
