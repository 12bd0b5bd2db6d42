// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package models

import "time"

// AccessLog represents a single user access event with its risk
// annotations. The score, violation flag and violation type are computed
// once at creation time; the document is immutable afterwards.
//
// ID is a UUID string stored as the Mongo _id.
type AccessLog struct {
	ID               string        `bson:"_id" json:"id"`
	UserID           string        `bson:"user_id" json:"user_id"`
	Username         string        `bson:"username" json:"username"`
	UserRole         UserRole      `bson:"user_role" json:"user_role"`
	AccessTime       time.Time     `bson:"access_time" json:"access_time"`
	IPAddress        string        `bson:"ip_address" json:"ip_address"`
	Location         string        `bson:"location" json:"location"`
	ResourceAccessed string        `bson:"resource_accessed" json:"resource_accessed"`
	AccessResult     AccessResult  `bson:"access_result" json:"access_result"`
	SessionDuration  *int          `bson:"session_duration_minutes,omitempty" json:"session_duration_minutes,omitempty"`
	FailedAttempts   int           `bson:"failed_attempts" json:"failed_attempts"`
	PrivilegeChanges []string      `bson:"privilege_changes" json:"privilege_changes"`
	IsViolation      bool          `bson:"is_violation" json:"is_violation"`
	ViolationType    ViolationType `bson:"violation_type,omitempty" json:"violation_type,omitempty"`
	RiskScore        float64       `bson:"risk_score" json:"risk_score"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
}

// Violation represents a detected security violation derived from a
// flagged access log. Resolved is the only mutable field; resolution is
// a one-way transition performed by the store.
type Violation struct {
	ID            string        `bson:"_id" json:"id"`
	LogID         string        `bson:"log_id" json:"log_id"`
	ViolationType ViolationType `bson:"violation_type" json:"violation_type"`
	Severity      RiskLevel     `bson:"severity" json:"severity"`
	Description   string        `bson:"description" json:"description"`
	DetectedAt    time.Time     `bson:"detected_at" json:"detected_at"`
	Resolved      bool          `bson:"resolved" json:"resolved"`
}

// RiskAssessment is an immutable snapshot of a user's risk posture at
// assessment time. A new document is appended on every evaluation.
type RiskAssessment struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	AssessedAt      time.Time `bson:"assessment_date" json:"assessment_date"`
	OverallScore    float64   `bson:"overall_risk_score" json:"overall_risk_score"`
	RiskLevel       RiskLevel `bson:"risk_level" json:"risk_level"`
	RiskFactors     []string  `bson:"risk_factors" json:"risk_factors"`
	Recommendations []string  `bson:"recommendations" json:"recommendations"`
	AIAnalysis      string    `bson:"ai_analysis" json:"ai_analysis"`
}
