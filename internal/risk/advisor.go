// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package risk

import "github.com/danakim/aegisboard/internal/models"

// Advisory rule texts surfaced in risk assessments. The dashboard
// renders these verbatim.
const (
	FactorFailedLogins     = "Multiple failed login attempts"
	FactorPrivilegeChanges = "Recent privilege changes"
	FactorOffHours         = "Off-hours access detected"
	FactorViolations       = "Recent security violations"

	RecommendMFA        = "Implement additional authentication factors"
	RecommendReset      = "Review account security and reset password"
	RecommendTraining   = "Conduct security awareness training"
	RecommendMonitoring = "Continue monitoring user activity"
)

// Factors derives the list of risk factor labels present in a user's
// recent activity. Each label appears at most once, in fixed order.
func Factors(logs []models.AccessLog) []string {
	var (
		failed     bool
		privileges bool
		offHours   bool
		violations bool
	)

	for i := range logs {
		log := &logs[i]
		if log.FailedAttempts > maxTolerableFailures {
			failed = true
		}
		if len(log.PrivilegeChanges) > 0 {
			privileges = true
		}
		t := log.AccessTime.UTC()
		if t.Hour() < offHoursStart || t.Hour() > offHoursEnd {
			offHours = true
		}
		if log.IsViolation {
			violations = true
		}
	}

	factors := make([]string, 0, 4)
	if failed {
		factors = append(factors, FactorFailedLogins)
	}
	if privileges {
		factors = append(factors, FactorPrivilegeChanges)
	}
	if offHours {
		factors = append(factors, FactorOffHours)
	}
	if violations {
		factors = append(factors, FactorViolations)
	}
	return factors
}

// Recommendations derives remediation guidance from the average score,
// the raw activity and the number of factors found. The default
// monitoring recommendation applies only when no stronger rule fires.
func Recommendations(avgScore float64, logs []models.AccessLog, factorCount int) []string {
	recs := make([]string, 0, 3)

	if avgScore > violationScoreThreshold {
		recs = append(recs, RecommendMFA)
	}
	for i := range logs {
		if logs[i].FailedAttempts > 5 {
			recs = append(recs, RecommendReset)
			break
		}
	}
	if factorCount > 2 {
		recs = append(recs, RecommendTraining)
	}
	if len(recs) == 0 {
		recs = append(recs, RecommendMonitoring)
	}
	return recs
}

// MeanScore averages the risk scores of a set of access logs. Returns 0
// for an empty slice.
func MeanScore(logs []models.AccessLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	var sum float64
	for i := range logs {
		sum += logs[i].RiskScore
	}
	return sum / float64(len(logs))
}
