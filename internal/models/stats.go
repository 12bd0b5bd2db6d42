// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package models

// DashboardStats represents the aggregate counters shown on the
// dashboard header. ComplianceScore is a percentage in [0,100] rounded
// to one decimal place; an empty system reports 100.0.
type DashboardStats struct {
	TotalAccessLogs      int64   `json:"total_access_logs"`
	ActiveViolations     int64   `json:"active_violations"`
	HighRiskUsers        int64   `json:"high_risk_users"`
	FailedLoginsToday    int64   `json:"failed_logins_today"`
	PrivilegeEscalations int64   `json:"privilege_escalations_week"`
	ComplianceScore      float64 `json:"compliance_score"`
}

// TrendPoint represents access activity for a single calendar day.
type TrendPoint struct {
	Date       string `json:"date"`
	Total      int64  `json:"total_access"`
	Violations int64  `json:"violations"`
}

// ViolationTypeCount represents the frequency of one violation type.
type ViolationTypeCount struct {
	Type  string `bson:"_id" json:"type"`
	Count int64  `bson:"count" json:"count"`
}

// RiskBucket represents one band of the risk score distribution.
type RiskBucket struct {
	Bucket string `bson:"_id" json:"bucket"`
	Count  int64  `bson:"count" json:"count"`
}

// AnalyticsTrends bundles the analytics endpoint payload.
type AnalyticsTrends struct {
	AccessTrends      []TrendPoint         `json:"access_trends"`
	TopViolationTypes []ViolationTypeCount `json:"top_violation_types"`
	RiskDistribution  []RiskBucket         `json:"risk_distribution"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime_seconds"`
}

// GenerateResult reports how many documents a sample data run produced.
type GenerateResult struct {
	Message             string `json:"message"`
	LogsGenerated       int    `json:"logs_generated"`
	ViolationsGenerated int    `json:"violations_generated"`
}

// AuditQueryResult is the response envelope for predefined audit
// queries.
type AuditQueryResult struct {
	QueryType    string      `json:"query_type"`
	ResultsCount int         `json:"results_count"`
	Results      []AccessLog `json:"results"`
}
