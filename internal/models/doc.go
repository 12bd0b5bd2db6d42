// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

/*
Package models defines data structures for the Aegisboard application.

This package contains all data models used throughout the application:
database documents, API request/response structures, and internal data
transfer objects. It serves as the single source of truth for data
structure definitions.

Key Components:

  - AccessLog: Core document for user access events with risk annotations
  - Violation: Security violation derived from a flagged access log
  - RiskAssessment: Per-user risk evaluation snapshot
  - DashboardStats: Aggregate statistics for the dashboard header
  - TrendPoint / ViolationTypeCount / RiskBucket: Analytics result types

Model Categories:

1. Database Documents (access_logs, violations, risk_assessments):
  - AccessLog: Access event with computed risk score and violation flag
  - Violation: Detected violation with severity and resolution state
  - RiskAssessment: Immutable per-user assessment history record

2. Enumerations:
  - UserRole, AccessResult, RiskLevel, ViolationType
  - Closed string sets with Valid() helpers for boundary validation

3. Analytics Result Models:
  - DashboardStats, TrendPoint, ViolationTypeCount, RiskBucket

Document identifiers are UUID strings stored in Mongo's _id field, so
the same value serves as both the database key and the public API id.

JSON field names follow the wire contract consumed by the dashboard
frontend (snake_case, RFC3339 timestamps). BSON tags mirror them except
for the _id mapping.

Thread Safety:

All models are plain data structures. Access logs and assessments are
immutable after creation; violations mutate only through the resolve
operation in the store layer.

See Also:

  - internal/store: Mongo persistence for these documents
  - internal/risk: Scoring and classification over AccessLog
  - internal/api: HTTP handlers returning these models
*/
package models
