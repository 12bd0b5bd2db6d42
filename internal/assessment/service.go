// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package assessment evaluates a user's recent access activity into a
// persisted risk assessment: averaged score, risk factors, advisory
// recommendations and a narrative analysis.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danakim/aegisboard/internal/llm"
	"github.com/danakim/aegisboard/internal/logging"
	"github.com/danakim/aegisboard/internal/metrics"
	"github.com/danakim/aegisboard/internal/models"
	"github.com/danakim/aegisboard/internal/risk"
)

// ErrNoRecentActivity indicates the user has no access logs inside the
// assessment window.
var ErrNoRecentActivity = errors.New("assessment: no recent activity")

const (
	// window is how far back the assessment looks.
	window = 7 * 24 * time.Hour

	// maxLogs caps how many logs one assessment considers.
	maxLogs = 100
)

// Store is the persistence surface the service needs.
type Store interface {
	UserLogsSince(ctx context.Context, userID string, since time.Time, limit int64) ([]models.AccessLog, error)
	InsertAssessment(ctx context.Context, a models.RiskAssessment) error
}

// Service produces risk assessments for individual users.
type Service struct {
	store      Store
	summarizer llm.Summarizer
	now        func() time.Time
}

// New creates an assessment service. Pass llm.Disabled{} as the
// summarizer when no model backend is configured.
func New(store Store, summarizer llm.Summarizer) *Service {
	return &Service{
		store:      store,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// Assess evaluates one user's trailing week of activity and persists
// the resulting snapshot. Summarizer failures degrade to a canned
// notice rather than failing the assessment.
func (s *Service) Assess(ctx context.Context, userID string) (models.RiskAssessment, error) {
	now := s.now().UTC()
	since := now.Add(-window)

	logs, err := s.store.UserLogsSince(ctx, userID, since, maxLogs)
	if err != nil {
		return models.RiskAssessment{}, fmt.Errorf("load user logs: %w", err)
	}
	if len(logs) == 0 {
		return models.RiskAssessment{}, ErrNoRecentActivity
	}

	avg := risk.MeanScore(logs)
	level := risk.LevelFor(avg)
	factors := risk.Factors(logs)

	analysis, err := s.summarizer.Summarize(ctx, summaryMetrics(logs))
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("summarizer unavailable, using fallback")
		analysis = llm.Fallback
	}

	a := models.RiskAssessment{
		ID:              uuid.NewString(),
		UserID:          userID,
		AssessedAt:      now,
		OverallScore:    avg,
		RiskLevel:       level,
		RiskFactors:     factors,
		Recommendations: risk.Recommendations(avg, logs, len(factors)),
		AIAnalysis:      analysis,
	}

	if err := s.store.InsertAssessment(ctx, a); err != nil {
		return models.RiskAssessment{}, fmt.Errorf("persist assessment: %w", err)
	}

	metrics.RecordAssessment(string(level))
	return a, nil
}

// summaryMetrics aggregates the user's logs into the shape the
// summarizer expects.
func summaryMetrics(logs []models.AccessLog) llm.Metrics {
	m := llm.Metrics{TotalLogs: len(logs)}
	highRisk := map[string]struct{}{}

	for _, log := range logs {
		if log.IsViolation {
			m.Violations++
		}
		m.FailedAttempts += log.FailedAttempts
		if len(log.PrivilegeChanges) > 0 {
			m.PrivilegeEscalations++
		}
		if h := log.AccessTime.UTC().Hour(); h < 7 || h > 19 {
			m.OffHoursAccess++
		}
		if log.RiskScore > 0.6 {
			highRisk[log.UserID] = struct{}{}
		}
	}

	m.HighRiskUsers = len(highRisk)
	return m
}
