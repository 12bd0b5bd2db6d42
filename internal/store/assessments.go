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

	"github.com/danakim/aegisboard/internal/models"
)

// InsertAssessment appends a completed risk assessment snapshot.
func (s *Store) InsertAssessment(ctx context.Context, a models.RiskAssessment) error {
	start := time.Now()
	_, err := s.assessments.InsertOne(ctx, a)
	observe("insert", collRiskAssessments, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// CountAssessments returns the total number of stored assessments.
func (s *Store) CountAssessments(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := s.assessments.CountDocuments(ctx, bson.M{})
	observe("count", collRiskAssessments, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}
