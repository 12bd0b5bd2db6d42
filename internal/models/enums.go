// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package models

// UserRole identifies the organizational role of the account that
// produced an access event.
type UserRole string

// User roles
const (
	RoleAdmin   UserRole = "admin"
	RoleUser    UserRole = "user"
	RoleManager UserRole = "manager"
	RoleAuditor UserRole = "auditor"
	RoleGuest   UserRole = "guest"
)

// Valid reports whether the role is a member of the closed role set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager, RoleAuditor, RoleGuest:
		return true
	}
	return false
}

// AccessResult is the outcome of an access attempt.
type AccessResult string

// Access results
const (
	ResultSuccess    AccessResult = "success"
	ResultFailed     AccessResult = "failed"
	ResultSuspicious AccessResult = "suspicious"
)

// Valid reports whether the result is a member of the closed result set.
func (r AccessResult) Valid() bool {
	switch r {
	case ResultSuccess, ResultFailed, ResultSuspicious:
		return true
	}
	return false
}

// RiskLevel is the ordinal band a risk score falls into.
type RiskLevel string

// Risk levels, ordered low to critical
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether the level is a member of the closed level set.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ViolationType categorizes a detected violation.
type ViolationType string

// Violation types
const (
	ViolationUnauthorizedAccess   ViolationType = "unauthorized_access"
	ViolationPrivilegeEscalation  ViolationType = "privilege_escalation"
	ViolationSegregationOfDuty    ViolationType = "segregation_duty_conflict"
	ViolationUnusualActivity      ViolationType = "unusual_activity"
	ViolationFailedAuthentication ViolationType = "failed_authentication"
)

// Valid reports whether the type is a member of the closed type set.
func (v ViolationType) Valid() bool {
	switch v {
	case ViolationUnauthorizedAccess, ViolationPrivilegeEscalation,
		ViolationSegregationOfDuty, ViolationUnusualActivity,
		ViolationFailedAuthentication:
		return true
	}
	return false
}
