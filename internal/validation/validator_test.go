// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package validation

import (
	"strings"
	"testing"
)

type listRequest struct {
	Limit int    `validate:"min=1,max=1000"`
	Skip  int    `validate:"min=0"`
	Level string `validate:"omitempty,oneof=low medium high critical"`
}

func TestValidateStructValid(t *testing.T) {
	t.Parallel()

	req := listRequest{Limit: 100, Skip: 0, Level: "high"}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	t.Parallel()

	req := listRequest{Limit: 0, Skip: -1, Level: "extreme"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := len(err.Errors()); got != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", got, err)
	}

	first := err.Errors()[0]
	if first.Field() != "Limit" || first.Tag() != "min" || first.Param() != "1" {
		t.Errorf("unexpected first error: field=%s tag=%s param=%s",
			first.Field(), first.Tag(), first.Param())
	}
	if !strings.Contains(err.Error(), "Limit must be at least 1") {
		t.Errorf("combined message missing min translation: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Level must be one of: low medium high critical") {
		t.Errorf("combined message missing oneof translation: %q", err.Error())
	}
}

func TestValidateStructRequired(t *testing.T) {
	t.Parallel()

	type resolveRequest struct {
		ViolationID string `validate:"required,uuid"`
	}

	err := ValidateStruct(&resolveRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "ViolationID is required") {
		t.Errorf("unexpected message: %q", err.Error())
	}

	err = ValidateStruct(&resolveRequest{ViolationID: "not-a-uuid"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "ViolationID must be a valid UUID") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Fatal("expected same validator instance")
	}
}

func TestTranslateErrorFallback(t *testing.T) {
	t.Parallel()

	type ipRequest struct {
		Addr string `validate:"ip"`
	}

	err := ValidateStruct(&ipRequest{Addr: "not-an-ip"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Addr failed ip validation") {
		t.Errorf("expected fallback message, got %q", err.Error())
	}
}
