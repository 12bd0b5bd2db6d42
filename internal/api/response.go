// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package api provides the HTTP handlers and Chi routing for the audit
// dashboard. Errors are returned as {"detail": "..."} bodies so
// existing dashboard clients keep working unchanged.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/danakim/aegisboard/internal/logging"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

// messageBody is the wire shape of plain acknowledgement responses.
type messageBody struct {
	Message string `json:"message"`
}

// respondJSON writes payload as a JSON response.
func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("encode response")
	}
}

// respondError writes an error response with a detail message.
func respondError(w http.ResponseWriter, r *http.Request, statusCode int, detail string) {
	respondJSON(w, r, statusCode, errorBody{Detail: detail})
}

// respondMessage writes a plain acknowledgement response.
func respondMessage(w http.ResponseWriter, r *http.Request, message string) {
	respondJSON(w, r, http.StatusOK, messageBody{Message: message})
}
