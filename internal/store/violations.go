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

// ListViolations returns violations newest first. With activeOnly set,
// resolved violations are excluded.
func (s *Store) ListViolations(ctx context.Context, limit int64, activeOnly bool) ([]models.Violation, error) {
	start := time.Now()
	violations, err := s.listViolations(ctx, limit, activeOnly)
	observe("list", collViolations, time.Since(start), err)
	return violations, err
}

func (s *Store) listViolations(ctx context.Context, limit int64, activeOnly bool) ([]models.Violation, error) {
	if limit <= 0 {
		limit = DefaultViolationLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "detected_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.violations.Find(ctx, violationQuery(activeOnly), opts)
	if err != nil {
		return nil, fmt.Errorf("find violations: %w", err)
	}

	violations := []models.Violation{}
	if err := cur.All(ctx, &violations); err != nil {
		return nil, fmt.Errorf("decode violations: %w", err)
	}
	return violations, nil
}

// ResolveViolation marks a violation as resolved. Resolving an already
// resolved violation succeeds; an unknown ID returns ErrNotFound.
func (s *Store) ResolveViolation(ctx context.Context, id string) error {
	start := time.Now()
	err := s.resolveViolation(ctx, id)
	observe("resolve", collViolations, time.Since(start), err)
	return err
}

func (s *Store) resolveViolation(ctx context.Context, id string) error {
	res, err := s.violations.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"resolved": true}},
	)
	if err != nil {
		return fmt.Errorf("resolve violation: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
