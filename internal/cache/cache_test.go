// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Set("stats", 42)

	got, ok := c.Get("stats")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.(int) != 42 {
		t.Errorf("got %v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	if _, ok := c.Get("absent"); ok {
		t.Fatal("expected miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.SetWithTTL("stats", 1, -time.Second)

	if _, ok := c.Get("stats"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, len = %d", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("len = %d after clear", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after clear")
	}
}

func TestCacheDelete(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	c.Delete("never-existed")

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCacheHitRate(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	if rate := c.HitRate(); rate != 0.0 {
		t.Errorf("initial rate = %v", rate)
	}

	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")

	if rate := c.HitRate(); rate != 50.0 {
		t.Errorf("rate = %v, want 50", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				c.Set("key", j)
				c.Get("key")
			}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
