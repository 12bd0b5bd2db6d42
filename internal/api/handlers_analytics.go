// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/danakim/aegisboard/internal/logging"
	"github.com/danakim/aegisboard/internal/models"
	"github.com/danakim/aegisboard/internal/store"
)

const (
	trendDays         = 7
	topViolationTypes = 5

	trendsCacheKey = "analytics:trends"
)

// AnalyticsTrends serves the seven day access trend, the most frequent
// violation types and the risk score distribution in one payload.
func (h *Handler) AnalyticsTrends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.aggregates.Get(trendsCacheKey); ok {
		respondJSON(w, r, http.StatusOK, cached.(models.AnalyticsTrends))
		return
	}

	trends, err := h.store.Trends(ctx, trendDays)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("access trends failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	types, err := h.store.TopViolationTypes(ctx, topViolationTypes)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("top violation types failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	distribution, err := h.store.RiskDistribution(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("risk distribution failed")
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	payload := models.AnalyticsTrends{
		AccessTrends:      trends,
		TopViolationTypes: types,
		RiskDistribution:  distribution,
	}
	h.aggregates.Set(trendsCacheKey, payload)
	respondJSON(w, r, http.StatusOK, payload)
}

// auditQueryRequest is the body of a predefined audit query request.
type auditQueryRequest struct {
	QueryType string `json:"query_type"`
}

// AuditQuery executes one of the predefined audit queries.
func (h *Handler) AuditQuery(w http.ResponseWriter, r *http.Request) {
	var req auditQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.store.RunAuditQuery(r.Context(), req.QueryType)
	switch {
	case errors.Is(err, store.ErrUnknownQueryType):
		respondError(w, r, http.StatusBadRequest, "Invalid query type")
		return
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Str("query_type", req.QueryType).Msg("audit query failed")
		respondError(w, r, http.StatusInternalServerError, "Query execution failed: "+err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.AuditQueryResult{
		QueryType:    req.QueryType,
		ResultsCount: len(results),
		Results:      results,
	})
}
