// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/danakim/aegisboard/internal/models"
)

func TestLogQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter LogFilter
		want   bson.M
	}{
		{
			name:   "empty",
			filter: LogFilter{},
			want:   bson.M{},
		},
		{
			name:   "violations only",
			filter: LogFilter{ViolationsOnly: true},
			want:   bson.M{"is_violation": true},
		},
		{
			name:   "critical band",
			filter: LogFilter{RiskLevel: models.RiskCritical},
			want:   bson.M{"risk_score": bson.M{"$gte": 0.8}},
		},
		{
			name:   "high band",
			filter: LogFilter{RiskLevel: models.RiskHigh},
			want:   bson.M{"risk_score": bson.M{"$gte": 0.6, "$lt": 0.8}},
		},
		{
			name:   "medium band",
			filter: LogFilter{RiskLevel: models.RiskMedium},
			want:   bson.M{"risk_score": bson.M{"$gte": 0.3, "$lt": 0.6}},
		},
		{
			name:   "low band",
			filter: LogFilter{RiskLevel: models.RiskLow},
			want:   bson.M{"risk_score": bson.M{"$lt": 0.3}},
		},
		{
			name:   "combined",
			filter: LogFilter{ViolationsOnly: true, RiskLevel: models.RiskHigh},
			want: bson.M{
				"is_violation": true,
				"risk_score":   bson.M{"$gte": 0.6, "$lt": 0.8},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := logQuery(tt.filter); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("logQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViolationQuery(t *testing.T) {
	t.Parallel()

	if got := violationQuery(true); !reflect.DeepEqual(got, bson.M{"resolved": false}) {
		t.Errorf("activeOnly query = %v", got)
	}
	if got := violationQuery(false); len(got) != 0 {
		t.Errorf("unfiltered query = %v, want empty", got)
	}
}

func TestAuditSpecFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		queryType    string
		wantLimit    int64
		wantPipeline bool
	}{
		{"unauthorized_access", 50, false},
		{"privilege_escalation", 50, false},
		{"segregation_conflicts", 50, false},
		{"failed_logins", 100, false},
		{"off_hours_access", 50, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.queryType, func(t *testing.T) {
			t.Parallel()

			spec, err := auditSpecFor(tt.queryType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if spec.limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", spec.limit, tt.wantLimit)
			}
			if gotPipeline := spec.pipeline != nil; gotPipeline != tt.wantPipeline {
				t.Errorf("pipeline set = %v, want %v", gotPipeline, tt.wantPipeline)
			}
			if !tt.wantPipeline && spec.filter == nil {
				t.Error("expected filter for find-based query")
			}
		})
	}
}

func TestAuditSpecForUnknown(t *testing.T) {
	t.Parallel()

	_, err := auditSpecFor("drop_tables")
	if !errors.Is(err, ErrUnknownQueryType) {
		t.Fatalf("err = %v, want ErrUnknownQueryType", err)
	}
}

func TestBucketLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{"high", "high"},
		{float64(0), "0"},
		{0.3, "0.3"},
		{0.6, "0.6"},
		{0.8, "0.8"},
		{int32(0), "0"},
		{int64(3), "3"},
		{nil, ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := bucketLabel(tt.in); got != tt.want {
			t.Errorf("bucketLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComplianceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		total  int64
		active int64
		want   float64
	}{
		{"empty system", 0, 0, 100.0},
		{"no violations", 1000, 0, 100.0},
		{"some violations", 1000, 75, 92.5},
		{"rounded", 3, 1, 66.7},
		{"floor at zero", 10, 25, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := complianceScore(tt.total, tt.active); got != tt.want {
				t.Errorf("complianceScore(%d, %d) = %v, want %v", tt.total, tt.active, got, tt.want)
			}
		})
	}
}

func TestDayWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	start, end := dayWindow(now, 0)
	if !start.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	start, _ = dayWindow(now, 6)
	if !start.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start six days ago = %v", start)
	}
}
