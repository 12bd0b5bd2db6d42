// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package testinfra provides test infrastructure for integration testing
// with containers.
//
// This package uses testcontainers-go to manage a MongoDB container for
// store integration tests:
//
//	func TestStoreRoundTrip(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    uri, cleanup := testinfra.StartMongo(t, ctx)
//	    defer cleanup()
//
//	    s, err := store.New(ctx, uri, "audit_test")
//	    // ...
//	}
//
// Tests are skipped gracefully when Docker is unavailable, so the unit
// test suite stays runnable on machines without a container runtime.
// First run may need to download the MongoDB image; subsequent runs use
// the cached image.
package testinfra
