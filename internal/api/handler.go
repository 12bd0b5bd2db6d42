// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package api

import (
	"context"
	"math/rand"
	"time"

	"github.com/danakim/aegisboard/internal/cache"
	"github.com/danakim/aegisboard/internal/models"
	"github.com/danakim/aegisboard/internal/sample"
	"github.com/danakim/aegisboard/internal/store"
)

// aggregateTTL bounds how stale the cached dashboard aggregates can be.
const aggregateTTL = 30 * time.Second

// rootMessage is the identity banner served at the API root.
const rootMessage = "IT Systems Audit & Risk Assessment Dashboard API"

// Store is the persistence surface the handlers need.
type Store interface {
	Ping(ctx context.Context) error
	ReplaceSampleData(ctx context.Context, logs []models.AccessLog, violations []models.Violation) error
	ListLogs(ctx context.Context, f store.LogFilter) ([]models.AccessLog, error)
	ListViolations(ctx context.Context, limit int64, activeOnly bool) ([]models.Violation, error)
	ResolveViolation(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Trends(ctx context.Context, days int) ([]models.TrendPoint, error)
	TopViolationTypes(ctx context.Context, limit int) ([]models.ViolationTypeCount, error)
	RiskDistribution(ctx context.Context) ([]models.RiskBucket, error)
	RunAuditQuery(ctx context.Context, queryType string) ([]models.AccessLog, error)
}

// Assessor evaluates per-user risk.
type Assessor interface {
	Assess(ctx context.Context, userID string) (models.RiskAssessment, error)
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	store       Store
	assessor    Assessor
	sampleCount int
	version     string
	started     time.Time

	// aggregates caches the dashboard stats and analytics payloads,
	// cleared whenever the dataset changes.
	aggregates *cache.Cache

	// generate is swappable in tests.
	generate func(count int) ([]models.AccessLog, []models.Violation)
}

// NewHandler creates a Handler. sampleCount controls how many access
// logs a sample data run produces.
func NewHandler(s Store, a Assessor, sampleCount int, version string) *Handler {
	return &Handler{
		store:       s,
		assessor:    a,
		sampleCount: sampleCount,
		version:     version,
		started:     time.Now(),
		aggregates:  cache.New(aggregateTTL),
		generate: func(count int) ([]models.AccessLog, []models.Violation) {
			gen := sample.New(rand.New(rand.NewSource(time.Now().UnixNano())))
			return gen.Generate(count)
		},
	}
}
