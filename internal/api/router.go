// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danakim/aegisboard/internal/config"
	"github.com/danakim/aegisboard/internal/middleware"
)

// NewRouter wires all routes and the global middleware stack.
func NewRouter(h *Handler, sec config.SecurityConfig) http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// CORS must be global to handle OPTIONS preflight
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   sec.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		if !sec.RateLimitDisabled {
			r.Use(httprate.LimitByIP(sec.RateLimitReqs, sec.RateLimitWindow))
		}

		r.Get("/", h.Root)
		r.Get("/health", h.Health)
		r.Post("/generate-sample-data", h.GenerateSampleData)
		r.Get("/dashboard/stats", h.DashboardStats)
		r.Get("/access-logs", h.AccessLogs)
		r.Get("/violations", h.Violations)
		r.Post("/violations/{id}/resolve", h.ResolveViolation)
		r.Get("/users/{id}/risk-assessment", h.UserRiskAssessment)
		r.Get("/analytics/trends", h.AnalyticsTrends)
		r.Post("/sql-query", h.AuditQuery)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
