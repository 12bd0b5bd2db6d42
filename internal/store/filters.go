// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package store

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/danakim/aegisboard/internal/models"
)

// LogFilter narrows an access log listing.
type LogFilter struct {
	Limit          int64
	Skip           int64
	ViolationsOnly bool
	RiskLevel      models.RiskLevel
}

// DefaultLogLimit is used when a listing request carries no limit.
const DefaultLogLimit = 100

// DefaultViolationLimit is used when a violation listing carries no limit.
const DefaultViolationLimit = 50

// logQuery builds the Mongo filter for a log listing.
func logQuery(f LogFilter) bson.M {
	query := bson.M{}
	if f.ViolationsOnly {
		query["is_violation"] = true
	}
	if f.RiskLevel != "" {
		query["risk_score"] = riskBandFilter(f.RiskLevel)
	}
	return query
}

// riskBandFilter maps a risk level to its score band. The bands mirror
// the level thresholds: low <0.3, medium [0.3,0.6), high [0.6,0.8),
// critical >=0.8.
func riskBandFilter(level models.RiskLevel) bson.M {
	switch level {
	case models.RiskCritical:
		return bson.M{"$gte": 0.8}
	case models.RiskHigh:
		return bson.M{"$gte": 0.6, "$lt": 0.8}
	case models.RiskMedium:
		return bson.M{"$gte": 0.3, "$lt": 0.6}
	default:
		return bson.M{"$lt": 0.3}
	}
}

// violationQuery builds the Mongo filter for a violation listing.
func violationQuery(activeOnly bool) bson.M {
	if activeOnly {
		return bson.M{"resolved": false}
	}
	return bson.M{}
}

// auditSpec describes one predefined audit query. Exactly one of
// filter or pipeline is set.
type auditSpec struct {
	filter   bson.M
	pipeline mongo.Pipeline
	limit    int64
}

// auditSpecFor resolves a query type name to its Mongo query.
func auditSpecFor(queryType string) (auditSpec, error) {
	switch queryType {
	case "unauthorized_access":
		return auditSpec{
			filter: bson.M{"$or": bson.A{
				bson.M{"access_result": "failed", "failed_attempts": bson.M{"$gt": 3}},
				bson.M{"access_result": "suspicious"},
				bson.M{"is_violation": true, "violation_type": "unauthorized_access"},
			}},
			limit: 50,
		}, nil
	case "privilege_escalation":
		return auditSpec{
			filter: bson.M{"privilege_changes": bson.M{"$ne": bson.A{}}},
			limit:  50,
		}, nil
	case "segregation_conflicts":
		return auditSpec{
			filter: bson.M{"violation_type": "segregation_duty_conflict"},
			limit:  50,
		}, nil
	case "failed_logins":
		return auditSpec{
			filter: bson.M{"access_result": "failed"},
			limit:  100,
		}, nil
	case "off_hours_access":
		return auditSpec{
			pipeline: mongo.Pipeline{
				{{Key: "$addFields", Value: bson.M{"hour": bson.M{"$hour": "$access_time"}}}},
				{{Key: "$match", Value: bson.M{"$or": bson.A{
					bson.M{"hour": bson.M{"$lt": 7}},
					bson.M{"hour": bson.M{"$gt": 19}},
				}}}},
				{{Key: "$sort", Value: bson.D{{Key: "access_time", Value: -1}}}},
				{{Key: "$limit", Value: 50}},
			},
			limit: 50,
		}, nil
	default:
		return auditSpec{}, ErrUnknownQueryType
	}
}

// highRiskUsersPipeline counts distinct users with a risk score above
// the violation threshold.
func highRiskUsersPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"risk_score": bson.M{"$gt": 0.6}}}},
		{{Key: "$group", Value: bson.M{"_id": "$user_id"}}},
		{{Key: "$count", Value: "unique_users"}},
	}
}

// topViolationTypesPipeline ranks violation types by frequency.
func topViolationTypesPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_violation": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$violation_type", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// riskDistributionPipeline buckets risk scores into the level bands.
// Scores clamped to exactly 1.0 land in the overflow bucket.
func riskDistributionPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$bucket", Value: bson.M{
			"groupBy":    "$risk_score",
			"boundaries": bson.A{0.0, 0.3, 0.6, 0.8, 1.0},
			"default":    "high",
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}}},
	}
}

// bucketLabel converts a $bucket _id (a boundary value, or the
// overflow default string) to its wire representation.
func bucketLabel(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// dayWindow returns the UTC start and end of the calendar day that is
// daysAgo days before now.
func dayWindow(now time.Time, daysAgo int) (time.Time, time.Time) {
	day := now.UTC().AddDate(0, 0, -daysAgo)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
