// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/danakim/aegisboard/internal/models"
)

// DashboardStats computes the aggregate counters for the dashboard
// header. An empty system reports a compliance score of 100.0.
func (s *Store) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	start := time.Now()
	stats, err := s.dashboardStats(ctx)
	observe("dashboard_stats", collAccessLogs, time.Since(start), err)
	return stats, err
}

func (s *Store) dashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	total, err := s.logs.CountDocuments(ctx, bson.M{})
	if err != nil {
		return stats, fmt.Errorf("count access logs: %w", err)
	}

	active, err := s.violations.CountDocuments(ctx, bson.M{"resolved": false})
	if err != nil {
		return stats, fmt.Errorf("count active violations: %w", err)
	}

	highRisk, err := s.highRiskUserCount(ctx)
	if err != nil {
		return stats, err
	}

	now := s.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	failedToday, err := s.logs.CountDocuments(ctx, bson.M{
		"access_result": "failed",
		"access_time":   bson.M{"$gte": todayStart},
	})
	if err != nil {
		return stats, fmt.Errorf("count failed logins: %w", err)
	}

	weekStart := now.AddDate(0, 0, -7)
	escalations, err := s.logs.CountDocuments(ctx, bson.M{
		"privilege_changes": bson.M{"$ne": bson.A{}},
		"access_time":       bson.M{"$gte": weekStart},
	})
	if err != nil {
		return stats, fmt.Errorf("count escalations: %w", err)
	}

	stats = models.DashboardStats{
		TotalAccessLogs:      total,
		ActiveViolations:     active,
		HighRiskUsers:        highRisk,
		FailedLoginsToday:    failedToday,
		PrivilegeEscalations: escalations,
		ComplianceScore:      complianceScore(total, active),
	}
	return stats, nil
}

func (s *Store) highRiskUserCount(ctx context.Context) (int64, error) {
	cur, err := s.logs.Aggregate(ctx, highRiskUsersPipeline())
	if err != nil {
		return 0, fmt.Errorf("aggregate high risk users: %w", err)
	}

	var out []struct {
		UniqueUsers int64 `bson:"unique_users"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("decode high risk users: %w", err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].UniqueUsers, nil
}

// complianceScore is the share of logs not tied to an active violation,
// as a percentage rounded to one decimal place.
func complianceScore(totalLogs, activeViolations int64) float64 {
	if totalLogs == 0 {
		return 100.0
	}
	score := float64(totalLogs-activeViolations) / float64(totalLogs) * 100
	if score < 0 {
		score = 0
	}
	return math.Round(score*10) / 10
}

// Trends returns per-day access counts for the trailing days calendar
// days, ordered oldest to newest.
func (s *Store) Trends(ctx context.Context, days int) ([]models.TrendPoint, error) {
	start := time.Now()
	trends, err := s.trends(ctx, days)
	observe("trends", collAccessLogs, time.Since(start), err)
	return trends, err
}

func (s *Store) trends(ctx context.Context, days int) ([]models.TrendPoint, error) {
	now := s.now()
	points := make([]models.TrendPoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		dayStart, dayEnd := dayWindow(now, i)

		total, err := s.logs.CountDocuments(ctx, bson.M{
			"access_time": bson.M{"$gte": dayStart, "$lt": dayEnd},
		})
		if err != nil {
			return nil, fmt.Errorf("count daily access: %w", err)
		}

		violations, err := s.logs.CountDocuments(ctx, bson.M{
			"access_time":  bson.M{"$gte": dayStart, "$lt": dayEnd},
			"is_violation": true,
		})
		if err != nil {
			return nil, fmt.Errorf("count daily violations: %w", err)
		}

		points = append(points, models.TrendPoint{
			Date:       dayStart.Format("2006-01-02"),
			Total:      total,
			Violations: violations,
		})
	}
	return points, nil
}

// TopViolationTypes ranks the most frequent violation types among
// flagged access logs.
func (s *Store) TopViolationTypes(ctx context.Context, limit int) ([]models.ViolationTypeCount, error) {
	start := time.Now()
	counts, err := s.topViolationTypes(ctx, limit)
	observe("top_violation_types", collAccessLogs, time.Since(start), err)
	return counts, err
}

func (s *Store) topViolationTypes(ctx context.Context, limit int) ([]models.ViolationTypeCount, error) {
	cur, err := s.logs.Aggregate(ctx, topViolationTypesPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("aggregate violation types: %w", err)
	}

	counts := []models.ViolationTypeCount{}
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode violation types: %w", err)
	}
	return counts, nil
}

// RiskDistribution buckets risk scores into the level bands.
func (s *Store) RiskDistribution(ctx context.Context) ([]models.RiskBucket, error) {
	start := time.Now()
	buckets, err := s.riskDistribution(ctx)
	observe("risk_distribution", collAccessLogs, time.Since(start), err)
	return buckets, err
}

func (s *Store) riskDistribution(ctx context.Context) ([]models.RiskBucket, error) {
	cur, err := s.logs.Aggregate(ctx, riskDistributionPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate risk distribution: %w", err)
	}

	var raw []struct {
		ID    any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode risk distribution: %w", err)
	}

	buckets := make([]models.RiskBucket, len(raw))
	for i, doc := range raw {
		buckets[i] = models.RiskBucket{
			Bucket: bucketLabel(doc.ID),
			Count:  doc.Count,
		}
	}
	return buckets, nil
}
