// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package llm

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/danakim/aegisboard/internal/logging"
	"github.com/danakim/aegisboard/internal/metrics"
)

const breakerName = "summarizer"

// Breaker wraps a Summarizer with circuit breaker protection so a
// failing upstream model does not stall every assessment request.
type Breaker struct {
	inner Summarizer
	cb    *gobreaker.CircuitBreaker[string]
}

// NewBreaker wraps s with a circuit breaker. The breaker opens after
// three consecutive failures and probes again after 30 seconds.
func NewBreaker(s Summarizer) *Breaker {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateGauge(to))
			logger := logging.Logger()
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	}

	return &Breaker{
		inner: s,
		cb:    gobreaker.NewCircuitBreaker[string](settings),
	}
}

// Summarize implements Summarizer. Calls rejected by an open breaker
// and upstream failures both surface as errors for the caller to
// replace with Fallback.
func (b *Breaker) Summarize(ctx context.Context, m Metrics) (string, error) {
	start := time.Now()

	out, err := b.cb.Execute(func() (string, error) {
		return b.inner.Summarize(ctx, m)
	})

	metrics.RecordSummarizerCall(callResult(err), time.Since(start))
	return out, err
}

func callResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	default:
		return "failure"
	}
}

func stateGauge(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
