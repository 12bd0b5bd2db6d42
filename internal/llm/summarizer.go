// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package llm generates narrative security analysis from aggregate
// access metrics. The OpenAI-backed implementation sits behind the
// Summarizer interface so callers can run without an API key and tests
// can substitute fakes.
package llm

import (
	"context"
	"errors"
)

// Fallback is returned to callers when no summarizer is configured or
// the upstream model cannot be reached.
const Fallback = "AI analysis temporarily unavailable. Manual review recommended for comprehensive risk assessment."

// ErrDisabled indicates no summarizer backend is configured.
var ErrDisabled = errors.New("llm: summarizer disabled")

// Metrics is the aggregate access data handed to the summarizer.
type Metrics struct {
	TotalLogs            int
	Violations           int
	FailedAttempts       int
	PrivilegeEscalations int
	OffHoursAccess       int
	HighRiskUsers        int
}

// Summarizer produces a short narrative analysis of access metrics.
type Summarizer interface {
	Summarize(ctx context.Context, m Metrics) (string, error)
}

// Disabled is a Summarizer that always fails with ErrDisabled. Used
// when no API key is configured so callers fall through to Fallback.
type Disabled struct{}

// Summarize implements Summarizer.
func (Disabled) Summarize(context.Context, Metrics) (string, error) {
	return "", ErrDisabled
}
