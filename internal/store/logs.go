// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/danakim/aegisboard/internal/models"
)

// ReplaceSampleData clears all three collections and inserts the
// freshly generated documents. A reset is complete: assessments
// derived from the old dataset go too.
func (s *Store) ReplaceSampleData(ctx context.Context, logs []models.AccessLog, violations []models.Violation) error {
	start := time.Now()
	err := s.replaceSampleData(ctx, logs, violations)
	observe("replace_sample_data", collAccessLogs, time.Since(start), err)
	return err
}

func (s *Store) replaceSampleData(ctx context.Context, logs []models.AccessLog, violations []models.Violation) error {
	if _, err := s.logs.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear access logs: %w", err)
	}
	if _, err := s.violations.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear violations: %w", err)
	}
	if _, err := s.assessments.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear risk assessments: %w", err)
	}

	if len(logs) > 0 {
		docs := make([]interface{}, len(logs))
		for i := range logs {
			docs[i] = logs[i]
		}
		if _, err := s.logs.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert access logs: %w", err)
		}
	}

	if len(violations) > 0 {
		docs := make([]interface{}, len(violations))
		for i := range violations {
			docs[i] = violations[i]
		}
		if _, err := s.violations.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert violations: %w", err)
		}
	}
	return nil
}

// CountLogs returns the total number of access log documents.
func (s *Store) CountLogs(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := s.logs.CountDocuments(ctx, bson.M{})
	observe("count", collAccessLogs, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("count access logs: %w", err)
	}
	return n, nil
}

// ListLogs returns access logs matching the filter, newest first.
func (s *Store) ListLogs(ctx context.Context, f LogFilter) ([]models.AccessLog, error) {
	start := time.Now()
	logs, err := s.listLogs(ctx, f)
	observe("list", collAccessLogs, time.Since(start), err)
	return logs, err
}

func (s *Store) listLogs(ctx context.Context, f LogFilter) ([]models.AccessLog, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLogLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "access_time", Value: -1}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)

	cur, err := s.logs.Find(ctx, logQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find access logs: %w", err)
	}

	logs := []models.AccessLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode access logs: %w", err)
	}
	return logs, nil
}

// UserLogsSince returns up to limit logs for one user at or after
// since, newest first.
func (s *Store) UserLogsSince(ctx context.Context, userID string, since time.Time, limit int64) ([]models.AccessLog, error) {
	start := time.Now()
	logs, err := s.userLogsSince(ctx, userID, since, limit)
	observe("user_logs_since", collAccessLogs, time.Since(start), err)
	return logs, err
}

func (s *Store) userLogsSince(ctx context.Context, userID string, since time.Time, limit int64) ([]models.AccessLog, error) {
	filter := bson.M{
		"user_id":     userID,
		"access_time": bson.M{"$gte": since},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "access_time", Value: -1}}).
		SetLimit(limit)

	cur, err := s.logs.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find user logs: %w", err)
	}

	logs := []models.AccessLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode user logs: %w", err)
	}
	return logs, nil
}
