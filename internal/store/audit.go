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

// RunAuditQuery executes one of the predefined audit queries against
// the access logs. Unknown types return ErrUnknownQueryType.
func (s *Store) RunAuditQuery(ctx context.Context, queryType string) ([]models.AccessLog, error) {
	spec, err := auditSpecFor(queryType)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logs, err := s.runAuditQuery(ctx, spec)
	observe("audit_query_"+queryType, collAccessLogs, time.Since(start), err)
	return logs, err
}

func (s *Store) runAuditQuery(ctx context.Context, spec auditSpec) ([]models.AccessLog, error) {
	logs := []models.AccessLog{}

	if spec.pipeline != nil {
		cur, err := s.logs.Aggregate(ctx, spec.pipeline)
		if err != nil {
			return nil, fmt.Errorf("audit aggregate: %w", err)
		}
		if err := cur.All(ctx, &logs); err != nil {
			return nil, fmt.Errorf("decode audit results: %w", err)
		}
		return logs, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "access_time", Value: -1}}).
		SetLimit(spec.limit)

	cur, err := s.logs.Find(ctx, spec.filter, opts)
	if err != nil {
		return nil, fmt.Errorf("audit find: %w", err)
	}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode audit results: %w", err)
	}
	return logs, nil
}
