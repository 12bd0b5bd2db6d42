// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package sample

import (
	"math/rand"
	"testing"
	"time"

	"github.com/danakim/aegisboard/internal/models"
	"github.com/danakim/aegisboard/internal/risk"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
}

func TestGenerateCountAndDefaults(t *testing.T) {
	t.Parallel()

	g := NewWithClock(rand.New(rand.NewSource(1)), fixedClock)

	logs, _ := g.Generate(0)
	if len(logs) != DefaultCount {
		t.Errorf("Generate(0) produced %d logs, want default %d", len(logs), DefaultCount)
	}

	logs, _ = g.Generate(50)
	if len(logs) != 50 {
		t.Errorf("Generate(50) produced %d logs", len(logs))
	}
}

func TestGenerateInvariants(t *testing.T) {
	t.Parallel()

	g := NewWithClock(rand.New(rand.NewSource(42)), fixedClock)
	logs, violations := g.Generate(600)

	flagged := make(map[string]bool, len(logs))

	for i := range logs {
		log := &logs[i]

		if log.ID == "" {
			t.Fatal("log without id")
		}
		if !log.UserRole.Valid() {
			t.Errorf("invalid role %q", log.UserRole)
		}
		if !log.AccessResult.Valid() {
			t.Errorf("invalid result %q", log.AccessResult)
		}
		if log.RiskScore < 0 || log.RiskScore > 1 {
			t.Errorf("score %v out of range", log.RiskScore)
		}
		if log.PrivilegeChanges == nil {
			t.Error("privilege changes must be an empty slice, not nil")
		}

		// Session duration only on success.
		if log.AccessResult == models.ResultSuccess {
			if log.SessionDuration == nil {
				t.Error("successful access without session duration")
			} else if *log.SessionDuration < 5 || *log.SessionDuration > 240 {
				t.Errorf("session duration %d out of range", *log.SessionDuration)
			}
		} else if log.SessionDuration != nil {
			t.Errorf("result %s should not carry a session duration", log.AccessResult)
		}

		// Failed attempts ranges per result.
		switch log.AccessResult {
		case models.ResultFailed:
			if log.FailedAttempts < 1 || log.FailedAttempts > 5 {
				t.Errorf("failed attempts %d out of range for failed result", log.FailedAttempts)
			}
		case models.ResultSuspicious:
			if log.FailedAttempts < 3 || log.FailedAttempts > 8 {
				t.Errorf("failed attempts %d out of range for suspicious result", log.FailedAttempts)
			}
		case models.ResultSuccess:
			if log.FailedAttempts != 0 {
				t.Errorf("successful access with %d failed attempts", log.FailedAttempts)
			}
		}

		// Annotations must agree with the rule set.
		if got := risk.Score(log); got != log.RiskScore {
			t.Errorf("stored score %v disagrees with rules %v", log.RiskScore, got)
		}
		if got := risk.IsViolation(log); got != log.IsViolation {
			t.Errorf("stored violation flag %v disagrees with rules %v", log.IsViolation, got)
		}
		if log.IsViolation {
			flagged[log.ID] = true
			if log.ViolationType == "" {
				t.Error("flagged log without violation type")
			}
		} else if log.ViolationType != "" {
			t.Errorf("clean log carries violation type %q", log.ViolationType)
		}
	}

	// One violation document per flagged log, linked by log id.
	if len(violations) != len(flagged) {
		t.Errorf("got %d violations for %d flagged logs", len(violations), len(flagged))
	}
	for i := range violations {
		v := &violations[i]
		if !flagged[v.LogID] {
			t.Errorf("violation %s references unflagged log %s", v.ID, v.LogID)
		}
		if v.Resolved {
			t.Error("new violations must start unresolved")
		}
		if !v.Severity.Valid() {
			t.Errorf("invalid severity %q", v.Severity)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a, _ := NewWithClock(rand.New(rand.NewSource(7)), fixedClock).Generate(100)
	b, _ := NewWithClock(rand.New(rand.NewSource(7)), fixedClock).Generate(100)

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		// IDs are random UUIDs; compare the generated attributes.
		if a[i].UserID != b[i].UserID ||
			a[i].AccessResult != b[i].AccessResult ||
			!a[i].AccessTime.Equal(b[i].AccessTime) ||
			a[i].RiskScore != b[i].RiskScore {
			t.Fatalf("log %d differs between seeded runs", i)
		}
	}
}

func TestGenerateTimeDistribution(t *testing.T) {
	t.Parallel()

	g := NewWithClock(rand.New(rand.NewSource(3)), fixedClock)
	logs, _ := g.Generate(1000)

	business := 0
	for i := range logs {
		h := logs[i].AccessTime.Hour()
		if h >= 8 && h <= 18 {
			business++
		}
	}

	// 70% of draws target the business window; allow sampling slack.
	if business < 600 || business > 800 {
		t.Errorf("business-hours share %d/1000 outside expected band", business)
	}
}
