// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package risk

import (
	"fmt"
	"time"

	"github.com/danakim/aegisboard/internal/models"
)

// Scoring weights. The weighted sum is clamped to 1.0.
const (
	weightFailedAttempt   = 0.2 // per failed attempt
	weightPrivilegeChange = 0.3 // per privilege change entry
	weightFailedResult    = 0.5
	weightSuspicious      = 0.8
	weightOffHours        = 0.3
	weightWeekend         = 0.2
)

// Off-hours boundaries: hours outside [offHoursStart, offHoursEnd] are
// off-hours. Evaluated in UTC.
const (
	offHoursStart = 7
	offHoursEnd   = 19
)

// Band thresholds for LevelFor. Lower bound inclusive.
const (
	thresholdCritical = 0.8
	thresholdHigh     = 0.6
	thresholdMedium   = 0.3
)

// violationScoreThreshold: a score strictly above this flags a
// violation. Note the asymmetry with thresholdHigh: a score of exactly
// 0.6 maps to the high band but does not by itself flag a violation.
const violationScoreThreshold = 0.6

// maxTolerableFailures: more than this many failed attempts flags a
// violation regardless of score.
const maxTolerableFailures = 3

// Score computes the weighted risk score of a single access event,
// clamped to [0, 1].
func Score(log *models.AccessLog) float64 {
	score := float64(log.FailedAttempts) * weightFailedAttempt
	score += float64(len(log.PrivilegeChanges)) * weightPrivilegeChange

	switch log.AccessResult {
	case models.ResultFailed:
		score += weightFailedResult
	case models.ResultSuspicious:
		score += weightSuspicious
	}

	t := log.AccessTime.UTC()
	if hour := t.Hour(); hour < offHoursStart || hour > offHoursEnd {
		score += weightOffHours
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		score += weightWeekend
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// LevelFor maps a risk score into its band.
func LevelFor(score float64) models.RiskLevel {
	switch {
	case score >= thresholdCritical:
		return models.RiskCritical
	case score >= thresholdHigh:
		return models.RiskHigh
	case score >= thresholdMedium:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// IsViolation reports whether the event should be flagged. Any one
// condition suffices: score above the violation threshold, more failed
// attempts than tolerated, any privilege change, or a suspicious
// result.
func IsViolation(log *models.AccessLog) bool {
	return log.RiskScore > violationScoreThreshold ||
		log.FailedAttempts > maxTolerableFailures ||
		len(log.PrivilegeChanges) > 0 ||
		log.AccessResult == models.ResultSuspicious
}

// ViolationTypeFor categorizes a flagged event. Conditions are checked
// in fixed priority order and the first match wins, so an event with
// both privilege changes and failed attempts is always typed as
// privilege escalation.
func ViolationTypeFor(log *models.AccessLog) models.ViolationType {
	t := log.AccessTime.UTC()
	switch {
	case len(log.PrivilegeChanges) > 0:
		return models.ViolationPrivilegeEscalation
	case log.FailedAttempts > maxTolerableFailures:
		return models.ViolationFailedAuthentication
	case log.AccessResult == models.ResultSuspicious:
		return models.ViolationUnusualActivity
	case t.Hour() < offHoursStart || t.Hour() > offHoursEnd:
		return models.ViolationUnauthorizedAccess
	default:
		return models.ViolationSegregationOfDuty
	}
}

// Annotate computes and applies the risk annotations for a freshly
// created access log. Annotations are written once; stored logs are
// never re-scored.
func Annotate(log *models.AccessLog) {
	log.RiskScore = Score(log)
	log.IsViolation = IsViolation(log)
	if log.IsViolation {
		log.ViolationType = ViolationTypeFor(log)
	} else {
		log.ViolationType = ""
	}
}

// ViolationDescription renders the human-readable summary attached to a
// violation document.
func ViolationDescription(log *models.AccessLog) string {
	return fmt.Sprintf("Risk Score: %.2f, Failed Attempts: %d, Privilege Changes: %d, Access Result: %s",
		log.RiskScore, log.FailedAttempts, len(log.PrivilegeChanges), log.AccessResult)
}
