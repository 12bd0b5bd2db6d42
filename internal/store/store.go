// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package store implements MongoDB persistence for access logs,
// violations and risk assessments. All operations are instrumented
// with Prometheus metrics and respect the caller's context.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/danakim/aegisboard/internal/logging"
	"github.com/danakim/aegisboard/internal/metrics"
)

var (
	// ErrNotFound indicates the referenced document does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrUnknownQueryType indicates an unrecognized audit query type.
	ErrUnknownQueryType = errors.New("store: unknown query type")
)

const (
	collAccessLogs      = "access_logs"
	collViolations      = "violations"
	collRiskAssessments = "risk_assessments"
)

// Store wraps a MongoDB database holding the audit collections.
type Store struct {
	client      *mongo.Client
	logs        *mongo.Collection
	violations  *mongo.Collection
	assessments *mongo.Collection

	// now is swappable for tests of time-windowed queries.
	now func() time.Time
}

// New connects to MongoDB and returns a Store bound to database. The
// context bounds the initial connectivity check.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(database)
	logging.Ctx(ctx).Info().Str("database", database).Msg("connected to mongodb")

	return &Store{
		client:      client,
		logs:        db.Collection(collAccessLogs),
		violations:  db.Collection(collViolations),
		assessments: db.Collection(collRiskAssessments),
		now:         time.Now,
	}, nil
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Migrate creates the indexes the query paths rely on. Safe to run on
// every startup; Mongo treats existing identical indexes as a no-op.
func (s *Store) Migrate(ctx context.Context) error {
	start := time.Now()

	logIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "access_time", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "access_time", Value: -1}}},
		{Keys: bson.D{{Key: "risk_score", Value: 1}}},
		{Keys: bson.D{{Key: "is_violation", Value: 1}}},
		{Keys: bson.D{{Key: "access_result", Value: 1}, {Key: "access_time", Value: -1}}},
	}
	_, err := s.logs.Indexes().CreateMany(ctx, logIndexes)
	if err == nil {
		violationIndexes := []mongo.IndexModel{
			{Keys: bson.D{{Key: "detected_at", Value: -1}}},
			{Keys: bson.D{{Key: "resolved", Value: 1}}},
		}
		_, err = s.violations.Indexes().CreateMany(ctx, violationIndexes)
	}
	if err == nil {
		assessmentIndexes := []mongo.IndexModel{
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "assessment_date", Value: -1}}},
		}
		_, err = s.assessments.Indexes().CreateMany(ctx, assessmentIndexes)
	}

	metrics.RecordStoreQuery("create_indexes", collAccessLogs, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// observe records timing and error metrics for one store operation.
func observe(operation, collection string, elapsed time.Duration, err error) {
	metrics.RecordStoreQuery(operation, collection, elapsed, err)
}
