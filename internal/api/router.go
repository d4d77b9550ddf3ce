// Package api exposes the front-desk facade over HTTP. The route groups
// mirror the facade's namespaces: auth, appointments, staff and admin.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medcore/front-desk-backend/internal/clinic"
	"github.com/medcore/front-desk-backend/internal/store"
)

type RouterConfig struct {
	Service *clinic.Service
	DB      *store.DB
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	health := NewHealthHandler(cfg.DB, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", loginHandler(cfg.Service))
		r.Post("/signup", signupHandler(cfg.Service))
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", listAppointmentsHandler(cfg.Service))
		r.Post("/", createAppointmentHandler(cfg.Service))
		r.Delete("/{id}", cancelAppointmentHandler(cfg.Service))
	})

	r.Get("/staff/doctors", listDoctorsHandler(cfg.Service))
	r.Get("/admin/logs", listLogsHandler(cfg.Service))

	return r
}
