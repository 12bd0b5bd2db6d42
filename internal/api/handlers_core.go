// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danakim/aegisboard/internal/assessment"
	"github.com/danakim/aegisboard/internal/logging"
	"github.com/danakim/aegisboard/internal/metrics"
	"github.com/danakim/aegisboard/internal/models"
	"github.com/danakim/aegisboard/internal/store"
	"github.com/danakim/aegisboard/internal/validation"
)

// Root serves the API identity banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, r, rootMessage)
}

// Health reports service and database health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r, 2*time.Second)
	defer cancel()

	dbOK := h.store.Ping(ctx) == nil
	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, r, code, models.HealthStatus{
		Status:            status,
		Version:           h.version,
		DatabaseConnected: dbOK,
		Uptime:            time.Since(h.started).Seconds(),
	})
}

// GenerateSampleData replaces the dataset with freshly generated
// sample documents.
func (h *Handler) GenerateSampleData(w http.ResponseWriter, r *http.Request) {
	logs, violations := h.generate(h.sampleCount)

	if err := h.store.ReplaceSampleData(r.Context(), logs, violations); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("sample data generation failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	h.aggregates.Clear()
	metrics.RecordSampleGeneration(len(logs))
	logging.Ctx(r.Context()).Info().
		Int("logs", len(logs)).
		Int("violations", len(violations)).
		Msg("sample data generated")

	respondJSON(w, r, http.StatusOK, models.GenerateResult{
		Message:             "Sample data generated successfully",
		LogsGenerated:       len(logs),
		ViolationsGenerated: len(violations),
	})
}

const statsCacheKey = "dashboard:stats"

// DashboardStats serves the aggregate dashboard counters.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.aggregates.Get(statsCacheKey); ok {
		respondJSON(w, r, http.StatusOK, cached.(models.DashboardStats))
		return
	}

	stats, err := h.store.DashboardStats(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("dashboard stats failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	h.aggregates.Set(statsCacheKey, stats)
	respondJSON(w, r, http.StatusOK, stats)
}

// accessLogsParams are the validated query parameters of the access
// log listing.
type accessLogsParams struct {
	Limit     int    `validate:"min=1,max=1000"`
	Skip      int    `validate:"min=0"`
	RiskLevel string `validate:"omitempty,oneof=low medium high critical"`
}

// AccessLogs lists access logs with optional filtering.
func (h *Handler) AccessLogs(w http.ResponseWriter, r *http.Request) {
	params := accessLogsParams{
		Limit:     queryInt(r, "limit", store.DefaultLogLimit),
		Skip:      queryInt(r, "skip", 0),
		RiskLevel: r.URL.Query().Get("risk_level"),
	}
	if err := validation.ValidateStruct(&params); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	filter := store.LogFilter{
		Limit:          int64(params.Limit),
		Skip:           int64(params.Skip),
		ViolationsOnly: queryBool(r, "violations_only", false),
		RiskLevel:      models.RiskLevel(params.RiskLevel),
	}

	logs, err := h.store.ListLogs(r.Context(), filter)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("list access logs failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, r, http.StatusOK, logs)
}

// violationsParams are the validated query parameters of the violation
// listing.
type violationsParams struct {
	Limit int `validate:"min=1,max=1000"`
}

// Violations lists violations, active ones by default.
func (h *Handler) Violations(w http.ResponseWriter, r *http.Request) {
	params := violationsParams{
		Limit: queryInt(r, "limit", store.DefaultViolationLimit),
	}
	if err := validation.ValidateStruct(&params); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	violations, err := h.store.ListViolations(r.Context(), int64(params.Limit), queryBool(r, "active_only", true))
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("list violations failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, r, http.StatusOK, violations)
}

// ResolveViolation marks one violation as resolved.
func (h *Handler) ResolveViolation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.ResolveViolation(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, r, http.StatusNotFound, "Violation not found")
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Str("violation_id", id).Msg("resolve violation failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
	default:
		h.aggregates.Delete(statsCacheKey)
		respondMessage(w, r, "Violation resolved successfully")
	}
}

// UserRiskAssessment evaluates and persists a risk assessment for one
// user.
func (h *Handler) UserRiskAssessment(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	a, err := h.assessor.Assess(r.Context(), userID)
	switch {
	case errors.Is(err, assessment.ErrNoRecentActivity):
		respondError(w, r, http.StatusNotFound, "No recent activity found for user")
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Str("user_id", userID).Msg("risk assessment failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
	default:
		respondJSON(w, r, http.StatusOK, a)
	}
}

// queryInt parses an integer query parameter, falling back on the
// default when absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryBool parses a boolean query parameter, falling back on the
// default when absent or malformed.
func queryBool(r *http.Request, name string, def bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

// contextWithTimeout derives a bounded context from the request.
func contextWithTimeout(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), d)
}
