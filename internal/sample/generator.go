// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package sample generates synthetic access log data for demos and
// integration testing. The fixture tables and distributions mirror the
// activity of a mid-sized IT estate: mostly successful business-hours
// access with a tail of failures, suspicious events and rare privilege
// changes.
package sample

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/danakim/aegisboard/internal/models"
	"github.com/danakim/aegisboard/internal/risk"
)

// DefaultCount is the number of access logs generated per run.
const DefaultCount = 1200

type fixtureUser struct {
	id       string
	username string
	role     models.UserRole
}

type fixtureOrigin struct {
	ip       string
	location string
}

var users = []fixtureUser{
	{"USR001", "john.doe", models.RoleAdmin},
	{"USR002", "jane.smith", models.RoleUser},
	{"USR003", "mike.johnson", models.RoleManager},
	{"USR004", "sarah.wilson", models.RoleAuditor},
	{"USR005", "david.brown", models.RoleUser},
	{"USR006", "emma.davis", models.RoleManager},
	{"USR007", "robert.clark", models.RoleUser},
	{"USR008", "lisa.white", models.RoleAdmin},
	{"USR009", "james.taylor", models.RoleUser},
	{"USR010", "maria.garcia", models.RoleAuditor},
}

var origins = []fixtureOrigin{
	{"192.168.1.100", "New York, NY"},
	{"192.168.1.101", "San Francisco, CA"},
	{"192.168.1.102", "Chicago, IL"},
	{"10.0.0.50", "London, UK"},
	{"10.0.0.51", "Tokyo, Japan"},
	{"172.16.0.10", "Berlin, Germany"},
	{"203.0.113.1", "Sydney, Australia"},
	{"198.51.100.1", "Toronto, Canada"},
}

var resources = []string{
	"Financial Database", "HR System", "Customer CRM",
	"Admin Panel", "Audit Logs", "Payroll System",
	"Document Management", "Email Server", "VPN Gateway",
	"Backup System", "Security Console", "Development Server",
}

var privilegeChangeLabels = []string{
	"elevated_to_admin", "access_granted_finance", "removed_hr_access",
}

// offHoursChoices are the hours picked for the 30% of events that fall
// outside the business day.
var offHoursChoices = []int{6, 7, 19, 20, 21, 22, 23, 0, 1, 2}

// Generator produces annotated access logs and their derived violation
// documents. Not safe for concurrent use; the embedded source is not
// synchronized.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator seeded from the given source. Pass a fixed
// seed for deterministic output.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// NewWithClock returns a generator with a fixed clock, for tests that
// need stable timestamps.
func NewWithClock(rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// Generate produces count access logs spread over the trailing 30 days,
// annotates each with its risk score and violation flag, and derives a
// violation document for every flagged log.
func (g *Generator) Generate(count int) ([]models.AccessLog, []models.Violation) {
	if count <= 0 {
		count = DefaultCount
	}

	now := g.now().UTC()
	logs := make([]models.AccessLog, 0, count)
	violations := make([]models.Violation, 0, count/4)

	for i := 0; i < count; i++ {
		user := users[g.rng.Intn(len(users))]
		origin := origins[g.rng.Intn(len(origins))]
		resource := resources[g.rng.Intn(len(resources))]

		log := models.AccessLog{
			ID:               uuid.NewString(),
			UserID:           user.id,
			Username:         user.username,
			UserRole:         user.role,
			AccessTime:       g.accessTime(now),
			IPAddress:        origin.ip,
			Location:         origin.location,
			ResourceAccessed: resource,
			AccessResult:     g.accessResult(),
			PrivilegeChanges: []string{},
			CreatedAt:        now,
		}

		switch log.AccessResult {
		case models.ResultFailed:
			log.FailedAttempts = 1 + g.rng.Intn(5)
		case models.ResultSuspicious:
			log.FailedAttempts = 3 + g.rng.Intn(6)
		case models.ResultSuccess:
			minutes := 5 + g.rng.Intn(236)
			log.SessionDuration = &minutes
		}

		// 5% of events carry one or two privilege changes.
		if g.rng.Float64() < 0.05 {
			log.PrivilegeChanges = g.privilegeChanges()
		}

		risk.Annotate(&log)

		if log.IsViolation {
			violations = append(violations, models.Violation{
				ID:            uuid.NewString(),
				LogID:         log.ID,
				ViolationType: log.ViolationType,
				Severity:      risk.LevelFor(log.RiskScore),
				Description:   risk.ViolationDescription(&log),
				DetectedAt:    now,
			})
		}

		logs = append(logs, log)
	}

	return logs, violations
}

// accessTime picks a timestamp within the trailing 30 days, biased 70%
// into the 08:00-18:00 business window.
func (g *Generator) accessTime(now time.Time) time.Time {
	day := now.AddDate(0, 0, -g.rng.Intn(31))

	var hour int
	if g.rng.Float64() < 0.7 {
		hour = 8 + g.rng.Intn(11)
	} else {
		hour = offHoursChoices[g.rng.Intn(len(offHoursChoices))]
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, g.rng.Intn(60), 0, 0, time.UTC)
}

// accessResult draws from the 85/12/3 success/failed/suspicious split.
func (g *Generator) accessResult() models.AccessResult {
	switch n := g.rng.Intn(100); {
	case n < 85:
		return models.ResultSuccess
	case n < 97:
		return models.ResultFailed
	default:
		return models.ResultSuspicious
	}
}

// privilegeChanges samples one or two distinct labels.
func (g *Generator) privilegeChanges() []string {
	n := 1 + g.rng.Intn(2)
	idx := g.rng.Perm(len(privilegeChangeLabels))[:n]
	changes := make([]string, 0, n)
	for _, i := range idx {
		changes = append(changes, privilegeChangeLabels[i])
	}
	return changes
}
