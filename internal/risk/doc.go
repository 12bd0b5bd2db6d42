// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

/*
Package risk implements the scoring and classification rules applied to
access events.

The package is pure computation: no I/O, no clocks, no configuration.
Every function is deterministic over its inputs, which keeps the rule
set unit-testable in isolation and reusable from both the ingest path
(annotating new logs) and the assessment path (summarizing a user's
recent activity).

Components:

  - Score: additive weighted score over an access log, clamped to 1.0
  - LevelFor: maps a score into the low/medium/high/critical bands
  - IsViolation / ViolationTypeFor: violation detection and typing
  - Annotate: applies score and violation annotations to a log in place
  - Factors / Recommendations: per-user advisory rules for assessments

Time-of-day and day-of-week checks read the event's AccessTime in UTC.
The stored timestamp is authoritative; the host timezone never
influences scoring.
*/
package risk
